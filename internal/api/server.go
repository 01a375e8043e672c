package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gowthamsai117/financial-app/internal/models"
)

// TransactionService is the record access layer the handlers dispatch to.
type TransactionService interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id int64) (models.Transaction, error)
	Create(ctx context.Context, in models.TransactionCreate) (models.Transaction, error)
	Update(ctx context.Context, id int64, patch models.TransactionUpdate) (models.Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Summary(ctx context.Context) (models.Summary, error)
	Ping(ctx context.Context) error
}

type Server struct {
	service        TransactionService
	router         *chi.Mux
	logger         *zap.Logger
	validate       *validator.Validate
	allowedOrigins []string
	httpServer     *http.Server
}

func NewServer(service TransactionService, logger *zap.Logger, allowedOrigins []string) *Server {
	s := &Server{
		service:        service,
		logger:         logger.With(zap.String("component", "api")),
		validate:       newValidator(),
		allowedOrigins: allowedOrigins,
	}
	s.router = s.RegisterRoutes()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ServeHTTP lets the server be mounted or exercised directly in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start blocks serving HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
