package safety

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

// Viewer describes who opened an alert, for view telemetry.
type Viewer struct {
	SessionID string
	UserAgent string
}

// AlertDetail is an alert with its content rendered for display.
type AlertDetail struct {
	Alert       *domain.SafetyAlert
	ContentHTML string
}

// ListAlerts returns the newest active alerts. Signed-in callers also get
// their bookmark and rating overlays; anonymous callers get none.
func (s *Service) ListAlerts(ctx context.Context) ([]*domain.SafetyAlert, error) {
	alerts, err := s.alerts.ListActive(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list safety alerts: %w", err)
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return alerts, nil
	}

	if err := s.applyOverlays(ctx, userID, alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// GetAlert returns one active alert with rendered content and records the
// view in the background.
func (s *Service) GetAlert(ctx context.Context, id uuid.UUID, viewer Viewer) (*AlertDetail, error) {
	alert, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get safety alert: %w", err)
	}

	userID, signedIn := ctxutil.UserIDFromCtx(ctx)
	if signedIn {
		if err := s.applyOverlays(ctx, userID, []*domain.SafetyAlert{alert}); err != nil {
			return nil, err
		}
	}

	html, err := s.renderer.Render(alert.Content)
	if err != nil {
		return nil, err
	}

	s.trackView(ctx, alert.ID, viewer)

	return &AlertDetail{Alert: alert, ContentHTML: html}, nil
}

// ListBookmarked returns the alerts the current user has bookmarked.
func (s *Service) ListBookmarked(ctx context.Context) ([]*domain.SafetyAlert, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	alerts, err := s.alerts.ListBookmarked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked alerts: %w", err)
	}
	if err := s.applyOverlays(ctx, userID, alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// applyOverlays fetches the user's bookmarks and ratings for the alerts
// concurrently and sets IsBookmarked and UserRating on each.
func (s *Service) applyOverlays(ctx context.Context, userID uuid.UUID, alerts []*domain.SafetyAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ID
	}

	var (
		bookmarked map[uuid.UUID]bool
		ratings    map[uuid.UUID]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookmarked, err = s.alerts.BookmarkedIDs(gctx, userID, domain.ContentTypeSafetyAlert, ids)
		if err != nil {
			return fmt.Errorf("load bookmarks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ratings, err = s.alerts.Ratings(gctx, userID, domain.ContentTypeSafetyAlert, ids)
		if err != nil {
			return fmt.Errorf("load ratings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range alerts {
		a.IsBookmarked = bookmarked[a.ID]
		a.UserRating = nil
		if r, ok := ratings[a.ID]; ok {
			a.UserRating = &r
		}
	}
	return nil
}

func (s *Service) trackView(ctx context.Context, alertID uuid.UUID, viewer Viewer) {
	v := domain.SafetyView{
		ContentType: domain.ContentTypeSafetyAlert,
		ContentID:   alertID,
		SessionID:   viewer.SessionID,
		UserAgent:   viewer.UserAgent,
	}
	if v.SessionID == "" {
		v.SessionID = uuid.NewString()
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		v.UserID = &userID
	}

	if !s.tracker.Track(v) {
		s.log.DebugContext(ctx, "view not queued", slog.String("alert_id", alertID.String()))
	}
}
