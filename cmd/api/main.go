package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-sync/internal/api"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
	"github.com/vfg2006/linkedin-ads-sync/internal/scheduler"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/snapshotting"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	syncRunRepo := repository.NewSyncRunRepository(pgConn, time.Duration(cfg.Sync.FreshnessTTLMinutes)*time.Minute)

	tokenProvider := linkedinclient.NewConfigTokenProvider(cfg)
	linkedinClient := linkedinclient.New(cfg, tokenProvider)
	integrator := linkedin.New(cfg, linkedinClient)

	assembler := snapshotting.NewService()

	registry := syncing.NewRegistry(time.Duration(cfg.Sync.JobRetentionMinutes) * time.Minute)
	registry.StartJanitor(ctx, time.Minute)

	syncService := syncing.NewService(cfg, integrator, assembler, snapshotRepo, syncRunRepo, registry)

	schedulerService := scheduler.NewLinkedInSyncService(cfg, accountRepo, syncService)
	if err := schedulerService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização LinkedIn")
	} else {
		logrus.Info("Agendador de sincronização LinkedIn iniciado")
	}

	server, err := api.New(
		cfg,
		pgConn,
		linkedinClient,
		syncService,
		snapshotRepo,
		schedulerService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
