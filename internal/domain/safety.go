package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentType tags rows in the shared per-user safety tables.
type ContentType string

const (
	ContentTypeSafetyAlert ContentType = "safety_alert"
)

func (c ContentType) String() string { return string(c) }

// SafetyAlert is a published safety notice.
// IsBookmarked and UserRating are per-user overlays and are only
// meaningful for the user the alert was loaded for.
type SafetyAlert struct {
	ID            uuid.UUID
	Title         string
	Summary       string
	Content       string
	Severity      string
	Category      string
	DatePublished time.Time
	ViewCount     int
	AverageRating *float64
	IsActive      bool

	IsBookmarked bool
	UserRating   *int
}

// SafetyRating is one user's rating of a piece of safety content.
type SafetyRating struct {
	UserID      uuid.UUID
	ContentType ContentType
	ContentID   uuid.UUID
	Rating      int
	Feedback    *string
	UpdatedAt   time.Time
}

// SafetyView is a telemetry record of someone opening safety content.
type SafetyView struct {
	ContentType ContentType
	ContentID   uuid.UUID
	UserID      *uuid.UUID
	SessionID   string
	UserAgent   string
	CreatedAt   time.Time
}

// Ratings run from 1 to 5 stars.
const (
	MinSafetyRating = 1
	MaxSafetyRating = 5
)
