package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeDiaryEntry    EntityType = "DIARY_ENTRY"
	EntityTypePortfolioItem EntityType = "PORTFOLIO_ITEM"
	EntityTypeSafetyAlert   EntityType = "SAFETY_ALERT"
)

func (e EntityType) String() string { return string(e) }

// AuditAction is the type of mutation recorded in an audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
