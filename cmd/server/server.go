package main

import (
	"log/slog"
	"time"

	"github.com/reclaim-app/reclaim/internal/api"
	"github.com/reclaim-app/reclaim/internal/config"
	"github.com/reclaim-app/reclaim/internal/infrastructure"
	"github.com/reclaim-app/reclaim/internal/notifications"
	"github.com/reclaim-app/reclaim/internal/sweep"
)

type Server struct {
	cfg     *config.Config
	infra   *infrastructure.Infrastructure
	modules *Modules
	domain  *api.Domain
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, domain, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		cfg:     cfg,
		infra:   infra,
		modules: modules,
		domain:  domain,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Logger() *slog.Logger {
	return s.infra.Logger
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	subscriber := notifications.NewSubscriber(
		s.domain.Notifications,
		s.infra.Bus,
		s.infra.Logger,
	)
	if err := subscriber.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	if s.cfg.Matching.SweepEnabled {
		scheduler := sweep.NewScheduler(
			s.domain.Sweep,
			s.cfg.Matching.SweepIntervalDuration(),
			s.infra.Logger,
		)
		scheduler.Start(s.infra.Lifecycle)
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
