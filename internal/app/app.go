package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/elecmate/apprentice-backend/internal/adapter/llm"
	"github.com/elecmate/apprentice-backend/internal/adapter/postgres"
	analysisrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/analysis"
	auditrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/audit"
	diaryrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/diary"
	portfoliorepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/portfolio"
	qualificationrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/qualification"
	safetyrepo "github.com/elecmate/apprentice-backend/internal/adapter/postgres/safety"
	"github.com/elecmate/apprentice-backend/internal/auth"
	"github.com/elecmate/apprentice-backend/internal/config"
	"github.com/elecmate/apprentice-backend/internal/service/analysis"
	"github.com/elecmate/apprentice-backend/internal/service/diary"
	"github.com/elecmate/apprentice-backend/internal/service/portfolio"
	"github.com/elecmate/apprentice-backend/internal/service/qualification"
	"github.com/elecmate/apprentice-backend/internal/service/safety"
	"github.com/elecmate/apprentice-backend/internal/service/tracker"
	"github.com/elecmate/apprentice-backend/internal/transport/dataloader"
	"github.com/elecmate/apprentice-backend/internal/transport/middleware"
	"github.com/elecmate/apprentice-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled, then shuts
// down the server and drains the view tracker.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := NewServices(logger, cfg, Repos{
		Diary:         diaryrepo.New(pool),
		Portfolio:     portfoliorepo.New(pool),
		Analysis:      analysisrepo.New(pool),
		Qualification: qualificationrepo.New(pool),
		Safety:        safetyrepo.New(pool),
		Audit:         auditrepo.New(pool),
		Tx:            postgres.NewTxManager(pool),
	})

	if err := svc.Tracker.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("start view tracker: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.ClockSkew)

	handler := rest.NewRouter(rest.RouterDeps{
		Health:        rest.NewHealthHandler(pool, svc.Tracker, BuildVersion()),
		Diary:         rest.NewDiaryHandler(svc.Diary, svc.Analysis, svc.Portfolio, logger),
		Safety:        rest.NewSafetyHandler(svc.Safety, logger),
		Qualification: rest.NewQualificationHandler(svc.Qualification, logger),
		Auth:          middleware.Auth(jwt),
		RateLimit:     limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		Loaders: &dataloader.Repos{
			Portfolio: svc.repos.Portfolio,
			Analysis:  svc.repos.Analysis,
		},
		CORS:   cfg.CORS,
		Logger: logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := svc.Tracker.Stop(shutdownCtx); err != nil {
		logger.Warn("view tracker stopped before draining",
			slog.String("error", err.Error()),
			slog.Int64("dropped", svc.Tracker.Dropped()),
		)
	}

	logger.Info("stopped")
	return serveErr
}

// Repos is the concrete storage layer the services run on.
type Repos struct {
	Diary         *diaryrepo.Repo
	Portfolio     *portfoliorepo.Repo
	Analysis      *analysisrepo.Repo
	Qualification *qualificationrepo.Repo
	Safety        *safetyrepo.Repo
	Audit         *auditrepo.Repo
	Tx            *postgres.TxManager
}

// Services holds the wired service layer. The ops CLI builds the same set
// as the server.
type Services struct {
	Diary         *diary.Service
	Qualification *qualification.Service
	Analysis      *analysis.Service
	Portfolio     *portfolio.Service
	Safety        *safety.Service
	Tracker       *tracker.Tracker

	repos Repos
}

// NewServices wires every service from cfg. The tracker is created but not
// started.
func NewServices(logger *slog.Logger, cfg *config.Config, repos Repos) *Services {
	quals := qualification.NewService(logger, repos.Qualification)

	var llmClient *llm.Client
	if cfg.Analysis.Enabled() {
		llmClient = llm.NewClient(cfg.Analysis.APIKey, cfg.Analysis.Model, cfg.Analysis.MaxTokens,
			option.WithRequestTimeout(cfg.Analysis.Timeout),
		)
	} else {
		logger.Info("entry analysis disabled: no api key configured")
	}

	views := tracker.New(logger, repos.Safety, tracker.Config{
		QueueSize:    cfg.Safety.TrackerQueueSize,
		Workers:      cfg.Safety.TrackerWorkers,
		WriteTimeout: cfg.Safety.TrackerWriteLimit,
	})

	return &Services{
		Diary:         diary.NewService(logger, repos.Diary, repos.Audit, repos.Tx),
		Qualification: quals,
		Analysis: analysis.NewService(logger, repos.Diary, repos.Analysis, quals, analysisLLM(llmClient), analysis.Options{
			MinKeywordLen: cfg.Portfolio.MinKeywordLen,
			MaxKeywords:   cfg.Portfolio.MaxKeywords,
			SearchLimit:   cfg.Portfolio.SearchLimit,
		}),
		Portfolio: portfolio.NewService(logger, repos.Diary, repos.Portfolio, repos.Analysis, quals, repos.Audit, repos.Tx, portfolio.Options{
			MaxKeywords:     cfg.Portfolio.MaxKeywords,
			MinKeywordLen:   cfg.Portfolio.MinKeywordLen,
			SearchLimit:     cfg.Portfolio.SearchLimit,
			MinConfidence:   cfg.Portfolio.MinConfidence,
			FallbackSelects: cfg.Portfolio.FallbackSelects,
		}),
		Safety:  safety.NewService(logger, repos.Safety, views, repos.Tx, cfg.Safety.ListLimit),
		Tracker: views,
		repos:   repos,
	}
}

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// analysisLLM keeps a nil *llm.Client from becoming a non-nil interface.
func analysisLLM(c *llm.Client) completer {
	if c == nil {
		return nil
	}
	return c
}
