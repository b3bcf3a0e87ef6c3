package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-sync/internal/api/handler"
	"github.com/vfg2006/linkedin-ads-sync/internal/api/handler/router"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
	"github.com/vfg2006/linkedin-ads-sync/internal/scheduler"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-sync/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	conn *postgres.Connection,
	client linkedinclient.Client,
	syncService syncing.Syncer,
	snapshotRepo repository.SnapshotRepository,
	schedulerService *scheduler.LinkedInSyncService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn, client)...),
		router.WithRoutes(handler.Sync(syncService)...),
		router.WithRoutes(handler.SchedulerStatus(schedulerService)...),
		router.WithRoutes(handler.Audit(snapshotRepo)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
