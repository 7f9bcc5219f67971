package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server управляет жизненным циклом HTTP-сервера
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer создаёт новый HTTP-сервер поверх готового роутера
func NewServer(addr string, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start запускает сервер в фоне
func (s *Server) Start() {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.srv.Addr))

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()
}

// Stop останавливает сервер, дожидаясь обработки текущих запросов
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.srv.Shutdown(ctx)
}
