package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/nooros/backend/internal/api/http"
	"github.com/nooros/backend/internal/api/middleware"
	"github.com/nooros/backend/internal/api/ws"
	"github.com/nooros/backend/internal/domain/chat"
	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/domain/geometry"
	"github.com/nooros/backend/internal/infrastructure/config"
	"github.com/nooros/backend/internal/infrastructure/logging"
	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/infrastructure/storage"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	desktop *desktop.Controller
	store   storage.Backend
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewLogger builds the process logger from configuration
func NewLogger(cfg config.LogConfig) *logging.Logger {
	base := logging.DefaultConfig()
	if cfg.Development {
		base = logging.DevelopmentConfig()
	}
	if cfg.Level != "" {
		base.Level = cfg.Level
	}
	logger, err := logging.New(base)
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

// NewServer creates a new server instance and restores the persisted desktop
func NewServer(cfg *config.Config) (*Server, error) {
	logger := NewLogger(cfg.Logging)

	logger.Info("Initializing NoorOS server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("storage", cfg.Storage.Backend),
		zap.Bool("chat_online", cfg.Chat.APIKey != ""),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}

	ctrl := desktop.New(store, desktop.Options{
		Viewport: geometry.Viewport{
			Width:    cfg.Desktop.ViewportWidth,
			Height:   cfg.Desktop.ViewportHeight,
			TopStrip: cfg.Desktop.TopStrip,
		},
		MobileBreakpoint: cfg.Desktop.MobileBreakpoint,
		Logger:           logger.Component("desktop"),
		Metrics:          metrics,
	})
	ctrl.Boot(context.Background())

	chatService := chat.NewService(chat.Config{
		APIKey:       cfg.Chat.APIKey,
		Model:        cfg.Chat.Model,
		Endpoint:     cfg.Chat.Endpoint,
		Timeout:      cfg.Chat.Timeout,
		ContactEmail: cfg.Chat.ContactEmail,
		MaxRetries:   cfg.Chat.MaxRetries,
		RateLimit:    cfg.Chat.RateLimit,
	}, logger.Component("chat")).WithMetrics(metrics)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	access := logger.Component("http")
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(access))
	router.Use(middleware.Recovery(access))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins...)))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := httpapi.NewHandlers(ctrl, chatService, metrics)
	httpapi.Register(router, handlers)

	wsHandler := ws.NewHandler(ctrl, logger.Component("stream"), metrics, cfg.CORS.AllowedOrigins)
	router.GET("/stream", wsHandler.HandleConnection)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		desktop: ctrl,
		store:   store,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler { return s.router }

// Desktop returns the desktop controller
func (s *Server) Desktop() *desktop.Controller { return s.desktop }

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errChan
}

// Close releases storage and flushes logs
func (s *Server) Close() error {
	err := s.store.Close()
	if syncErr := s.logger.Sync(); syncErr != nil {
		err = errors.Join(err, syncErr)
	}
	return err
}
