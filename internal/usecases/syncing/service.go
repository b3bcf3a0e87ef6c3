package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/snapshotting"
	"github.com/vfg2006/linkedin-ads-sync/pkg/log"
	"github.com/vfg2006/linkedin-ads-sync/pkg/utils"
)

var (
	// ErrSyncAlreadyRunning indica que a conta já tem uma execução ativa
	ErrSyncAlreadyRunning = errors.New("sincronização já em andamento para esta conta")

	// ErrAccountFresh indica que os dados da conta ainda estão dentro do
	// TTL de frescor; o erro carrega a razão legível
	ErrAccountFresh = errors.New("dados da conta ainda recentes")
)

// Syncer dispara e consulta execuções do pipeline de sincronização
type Syncer interface {
	StartSync(ctx context.Context, accountID int64, force bool, trigger string) (*Job, error)
	JobStatus(id string) (*Job, bool)
	ListJobs() []JobStatus
}

type Service struct {
	cfg          *config.Config
	fetcher      Fetcher
	assembler    snapshotting.Assembler
	snapshotRepo repository.SnapshotRepository
	syncRunRepo  repository.SyncRunRepository
	registry     *Registry

	// exportJSON é substituível em teste; por padrão grava o snapshot em
	// disco via snapshotting.SaveSnapshotJSON
	exportJSON func(snap *domain.Snapshot, dir string) (string, error)
}

func NewService(
	cfg *config.Config,
	fetcher Fetcher,
	assembler snapshotting.Assembler,
	snapshotRepo repository.SnapshotRepository,
	syncRunRepo repository.SyncRunRepository,
	registry *Registry,
) *Service {
	return &Service{
		cfg:          cfg,
		fetcher:      fetcher,
		assembler:    assembler,
		snapshotRepo: snapshotRepo,
		syncRunRepo:  syncRunRepo,
		registry:     registry,
		exportJSON:   snapshotting.SaveSnapshotJSON,
	}
}

// StartSync valida o gate de frescor e a exclusividade por conta, registra
// a execução e dispara o pipeline em background. Retorna o job já em
// andamento; o chamador acompanha pelo canal de eventos.
func (s *Service) StartSync(ctx context.Context, accountID int64, force bool, trigger string) (*Job, error) {
	should, reason, err := s.syncRunRepo.ShouldSync(ctx, accountID, force)
	if err != nil {
		return nil, errors.Wrap(err, "consultando o gate de frescor")
	}
	if !should {
		return nil, fmt.Errorf("%w: %s", ErrAccountFresh, reason)
	}

	jobID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "gerando id do job")
	}

	job := NewJob(jobID, accountID)
	if err := s.registry.Add(job); err != nil {
		return nil, err
	}

	runID, err := s.syncRunRepo.StartRun(ctx, accountID, trigger)
	if err != nil {
		s.registry.Release(job)
		return nil, errors.Wrap(err, "registrando início da sincronização")
	}
	job.RunID = runID

	job.startHeartbeat(time.Duration(s.cfg.Sync.HeartbeatSeconds) * time.Second)

	// O pipeline sobrevive ao request que o disparou
	bgCtx, _ := log.WithCorrelationID(context.Background())
	go s.runPipeline(bgCtx, job)

	logrus.WithFields(logrus.Fields{
		"job_id":     job.ID,
		"run_id":     runID,
		"account_id": accountID,
		"trigger":    trigger,
		"reason":     reason,
	}).Info("Sincronização iniciada")

	return job, nil
}

func (s *Service) JobStatus(id string) (*Job, bool) {
	return s.registry.Get(id)
}

func (s *Service) ListJobs() []JobStatus {
	return s.registry.List()
}

// runPipeline percorre as etapas do pipeline. O finalizador em defer
// também captura panics e fecha a execução exatamente uma vez: linha de
// auditoria, evento terminal e liberação do slot da conta.
func (s *Service) runPipeline(ctx context.Context, job *Job) {
	callsBefore := s.fetcher.CallCount()

	var (
		stats  domain.SyncRunStats
		runErr error
	)

	defer func() {
		if r := recover(); r != nil {
			runErr = fmt.Errorf("panic no pipeline: %v", r)
		}
		s.finalize(ctx, job, &stats, callsBefore, runErr)
	}()

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	// Entidades (sequencial)
	job.Emit(StepFetchingEntities, "buscando contas, campanhas e criativos")

	account, err := s.fetchAccount(ctx, job.AccountID)
	if err != nil {
		runErr = err
		return
	}

	rawCampaigns, err := s.fetcher.FetchCampaigns(ctx, job.AccountID, nil)
	if err != nil {
		runErr = errors.Wrap(err, "buscando campanhas")
		return
	}
	campaigns := linkedin.ValidateCampaigns(rawCampaigns)
	stats.CampaignsFetched = len(campaigns)

	campaignIDs := campaignIDsOf(campaigns)

	rawCreatives, err := s.fetcher.FetchCreatives(ctx, job.AccountID, campaignIDs)
	if err != nil {
		runErr = errors.Wrap(err, "buscando criativos")
		return
	}
	creatives := linkedin.ValidateCreatives(rawCreatives)
	stats.CreativesFetched = len(creatives)

	// Métricas e demografia (três grupos independentes em paralelo; uma
	// falha não cancela os demais, apenas impede as etapas seguintes)
	job.Emit(StepFetchingMetrics, fmt.Sprintf("buscando métricas de %d campanhas", len(campaignIDs)))

	var (
		wg            sync.WaitGroup
		campaignRows  []map[string]interface{}
		creativeRows  []map[string]interface{}
		demographics  map[string][]map[string]interface{}
		resolvedNames map[string]string
		fetchErrs     = make([]error, 3)
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rows, err := s.fetcher.FetchCampaignMetrics(ctx, campaignIDs, start, end, linkedin.GranularityDaily)
		if err != nil {
			fetchErrs[0] = errors.Wrap(err, "métricas de campanha")
			return
		}
		campaignRows = linkedin.ValidateMetricRows(rows)
	}()
	go func() {
		defer wg.Done()
		rows, err := s.fetcher.FetchCreativeMetrics(ctx, campaignIDs, start, end, linkedin.GranularityDaily)
		if err != nil {
			fetchErrs[1] = errors.Wrap(err, "métricas de criativo")
			return
		}
		creativeRows = linkedin.ValidateMetricRows(rows)
	}()
	go func() {
		defer wg.Done()
		demo, err := s.fetcher.FetchDemographics(ctx, campaignIDs, start, end)
		if err != nil {
			fetchErrs[2] = errors.Wrap(err, "demografia de audiência")
			return
		}
		demographics = linkedin.ValidateDemographics(demo)
		resolvedNames = s.fetcher.ResolveSegmentNames(ctx, segmentURNsOf(demographics))
	}()
	wg.Wait()

	for _, err := range fetchErrs {
		if err != nil {
			runErr = err
			return
		}
	}

	// Montagem
	job.Emit(StepAssembling, "montando o snapshot")

	snap := s.assembler.Assemble([]snapshotting.AccountInput{{
		Account:       account,
		Campaigns:     campaigns,
		Creatives:     creatives,
		CampaignRows:  campaignRows,
		CreativeRows:  creativeRows,
		Demographics:  demographics,
		ResolvedNames: resolvedNames,
	}}, start, end)

	// Persistência
	job.Emit(StepPersisting, "gravando snapshot no banco")

	if err := s.snapshotRepo.PersistSnapshot(ctx, snap); err != nil {
		runErr = errors.Wrap(err, "persistindo snapshot")
		return
	}

	if s.cfg.Snapshot.Dir != "" {
		if _, err := s.exportJSON(snap, s.cfg.Snapshot.Dir); err != nil {
			// A exportação em disco é conveniência; o banco é a fonte da verdade
			logrus.WithError(err).Warn("Falha ao exportar snapshot em JSON")
		}
	}
}

// fetchAccount busca as contas acessíveis e isola a conta pedida
func (s *Service) fetchAccount(ctx context.Context, accountID int64) (map[string]interface{}, error) {
	rawAccounts, err := s.fetcher.FetchAccounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "buscando contas")
	}

	for _, acct := range linkedin.ValidateAccounts(rawAccounts) {
		if accountIDOf(acct) == accountID {
			return acct, nil
		}
	}

	return nil, fmt.Errorf("conta %d não encontrada entre as contas acessíveis", accountID)
}

func (s *Service) finalize(ctx context.Context, job *Job, stats *domain.SyncRunStats, callsBefore int64, runErr error) {
	stats.APICallsMade = int(s.fetcher.CallCount() - callsBefore)

	status := domain.SyncRunStatusSuccess
	if runErr != nil {
		status = domain.SyncRunStatusFailed
		msg := runErr.Error()
		stats.Errors = &msg
	}

	if err := s.syncRunRepo.FinishRun(ctx, job.RunID, status, *stats); err != nil {
		logrus.WithError(err).WithField("run_id", job.RunID).Error("Erro ao finalizar a linha de auditoria")
	}

	s.registry.Release(job)

	if runErr != nil {
		logrus.WithError(runErr).WithFields(logrus.Fields{
			"job_id":     job.ID,
			"account_id": job.AccountID,
		}).Error("Sincronização falhou")
		job.Emit(StepError, runErr.Error())
		return
	}

	logrus.WithFields(logrus.Fields{
		"job_id":     job.ID,
		"account_id": job.AccountID,
		"campaigns":  stats.CampaignsFetched,
		"creatives":  stats.CreativesFetched,
		"api_calls":  stats.APICallsMade,
	}).Info("Sincronização concluída")
	job.Emit(StepDone, "")
}

func campaignIDsOf(campaigns []map[string]interface{}) []int64 {
	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		switch v := c["id"].(type) {
		case int64:
			ids = append(ids, v)
		case float64:
			ids = append(ids, int64(v))
		}
	}
	return ids
}

func accountIDOf(acct map[string]interface{}) int64 {
	switch v := acct["id"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// segmentURNsOf coleta as URNs de segmento únicas de todos os pivots
func segmentURNsOf(demographics map[string][]map[string]interface{}) []string {
	seen := make(map[string]struct{})
	urns := []string{}

	for _, rows := range demographics {
		for _, row := range rows {
			values, _ := row["pivotValues"].([]interface{})
			for _, v := range values {
				urn, ok := v.(string)
				if !ok {
					continue
				}
				if _, dup := seen[urn]; dup {
					continue
				}
				seen[urn] = struct{}{}
				urns = append(urns, urn)
			}
		}
	}
	return urns
}
