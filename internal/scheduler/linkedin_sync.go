package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing"
)

// TriggerScheduler identifica sincronizações disparadas pelo agendador
// na linha de auditoria
const TriggerScheduler = "scheduler"

// LinkedInSyncService agenda a sincronização periódica de todas as contas
// conhecidas. Cada conta passa pelo gate de frescor individualmente, então
// um ciclo do agendador só gasta chamadas de API com contas vencidas.
type LinkedInSyncService struct {
	scheduler   *gocron.Scheduler
	cfg         *config.Config
	accountRepo repository.AccountRepository
	syncer      syncing.Syncer

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLinkedInSyncService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	syncer syncing.Syncer,
) *LinkedInSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.Scheduler.CronSchedule,
		"enabled":       cfg.Scheduler.Enabled,
	}).Info("Configuração do agendador de sincronização LinkedIn carregada")

	return &LinkedInSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		cfg:         cfg,
		accountRepo: accountRepo,
		syncer:      syncer,
	}
}

// Start inicia o agendador; o contexto cancelado o encerra
func (s *LinkedInSyncService) Start(ctx context.Context) error {
	if !s.cfg.Scheduler.Enabled {
		logrus.Info("Agendador de sincronização LinkedIn desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.Scheduler.CronSchedule).Info("Iniciando agendador de sincronização LinkedIn")

	_, err := s.scheduler.Cron(s.cfg.Scheduler.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização LinkedIn: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização LinkedIn")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts dispara uma sincronização por conta conhecida. Contas
// frescas ou já em execução são puladas sem erro.
func (s *LinkedInSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	accountIDs, err := s.accountRepo.ListAccountIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas para o ciclo de sincronização")
		return
	}

	if len(accountIDs) == 0 {
		logrus.Info("Nenhuma conta conhecida para sincronizar")
		return
	}

	started, skipped := 0, 0
	jobs := make([]*syncing.Job, 0, len(accountIDs))

	for _, accountID := range accountIDs {
		job, err := s.syncer.StartSync(ctx, accountID, false, TriggerScheduler)
		if err != nil {
			if errors.Is(err, syncing.ErrAccountFresh) || errors.Is(err, syncing.ErrSyncAlreadyRunning) {
				skipped++
				logrus.WithError(err).WithField("account_id", accountID).Debug("Conta pulada no ciclo de sincronização")
				continue
			}
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao disparar sincronização da conta")
			continue
		}
		started++
		jobs = append(jobs, job)
	}

	// Espera os jobs disparados terminarem antes de fechar o ciclo
	for _, job := range jobs {
		select {
		case <-job.Done():
		case <-ctx.Done():
			return
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accountIDs),
		"started":  started,
		"skipped":  skipped,
	}).Info("Ciclo de sincronização LinkedIn concluído")
}

// GetStatus retorna o estado corrente do agendador para a API
func (s *LinkedInSyncService) GetStatus() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.cfg.Scheduler.Enabled,
		"cron_schedule": s.cfg.Scheduler.CronSchedule,
		"sync_running":  s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
