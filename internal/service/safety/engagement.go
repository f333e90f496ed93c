package safety

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

// MaxFeedbackLength caps free-text rating feedback.
const MaxFeedbackLength = 2000

// BookmarkResult is the outcome of ToggleBookmark.
// Optimistic is the value the toggle intended; Bookmarked is what the
// database holds afterwards and is the one to display.
type BookmarkResult struct {
	Optimistic bool
	Bookmarked bool
}

// RatingResult is the outcome of RateAlert.
type RatingResult struct {
	Rating        int
	AverageRating *float64
}

// RateInput holds the data to rate an alert.
type RateInput struct {
	AlertID  uuid.UUID
	Rating   int
	Feedback *string
}

// Validate checks the input.
func (i RateInput) Validate() error {
	var errs []domain.FieldError

	if i.AlertID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "alert_id", Message: "required"})
	}
	if i.Rating < domain.MinSafetyRating || i.Rating > domain.MaxSafetyRating {
		errs = append(errs, domain.FieldError{
			Field:   "rating",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinSafetyRating, domain.MaxSafetyRating),
		})
	}
	if i.Feedback != nil && len(*i.Feedback) > MaxFeedbackLength {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: fmt.Sprintf("max %d characters", MaxFeedbackLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToggleBookmark removes the user's bookmark if present and adds it otherwise,
// then reads the row back so the caller can reconcile.
func (s *Service) ToggleBookmark(ctx context.Context, alertID uuid.UUID) (*BookmarkResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.alerts.GetByID(ctx, alertID); err != nil {
		return nil, fmt.Errorf("get safety alert: %w", err)
	}

	var optimistic bool
	err := s.tx.RunSerializable(ctx, func(txCtx context.Context) error {
		exists, err := s.alerts.BookmarkExists(txCtx, userID, domain.ContentTypeSafetyAlert, alertID)
		if err != nil {
			return fmt.Errorf("check bookmark: %w", err)
		}

		if exists {
			optimistic = false
			if err := s.alerts.RemoveBookmark(txCtx, userID, domain.ContentTypeSafetyAlert, alertID); err != nil {
				return fmt.Errorf("remove bookmark: %w", err)
			}
			return nil
		}

		optimistic = true
		if err := s.alerts.AddBookmark(txCtx, userID, domain.ContentTypeSafetyAlert, alertID); err != nil {
			return fmt.Errorf("add bookmark: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	actual, err := s.alerts.BookmarkExists(ctx, userID, domain.ContentTypeSafetyAlert, alertID)
	if err != nil {
		return nil, fmt.Errorf("read back bookmark: %w", err)
	}
	if actual != optimistic {
		s.log.WarnContext(ctx, "bookmark reconciled",
			slog.String("user_id", userID.String()),
			slog.String("alert_id", alertID.String()),
			slog.Bool("optimistic", optimistic),
			slog.Bool("actual", actual),
		)
	}

	return &BookmarkResult{Optimistic: optimistic, Bookmarked: actual}, nil
}

// RateAlert stores the user's rating and returns the recomputed average.
func (s *Service) RateAlert(ctx context.Context, input RateInput) (*RatingResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.alerts.GetByID(ctx, input.AlertID); err != nil {
		return nil, fmt.Errorf("get safety alert: %w", err)
	}

	var feedback *string
	if input.Feedback != nil {
		if f := strings.TrimSpace(*input.Feedback); f != "" {
			feedback = &f
		}
	}

	var avg *float64
	err := s.tx.RunSerializable(ctx, func(txCtx context.Context) error {
		err := s.alerts.UpsertRating(txCtx, domain.SafetyRating{
			UserID:      userID,
			ContentType: domain.ContentTypeSafetyAlert,
			ContentID:   input.AlertID,
			Rating:      input.Rating,
			Feedback:    feedback,
		})
		if err != nil {
			return fmt.Errorf("upsert rating: %w", err)
		}

		avg, err = s.alerts.RecomputeAverage(txCtx, input.AlertID)
		if err != nil {
			return fmt.Errorf("recompute average: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "safety alert rated",
		slog.String("user_id", userID.String()),
		slog.String("alert_id", input.AlertID.String()),
		slog.Int("rating", input.Rating),
	)

	return &RatingResult{Rating: input.Rating, AverageRating: avg}, nil
}

// RecomputeRatings refreshes every alert's stored average rating.
func (s *Service) RecomputeRatings(ctx context.Context) (int64, error) {
	n, err := s.alerts.RecomputeAllAverages(ctx)
	if err != nil {
		return 0, fmt.Errorf("recompute ratings: %w", err)
	}
	s.log.InfoContext(ctx, "safety ratings recomputed", slog.Int64("alerts", n))
	return n, nil
}
