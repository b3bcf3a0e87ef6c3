package syncing_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/linkedin-ads-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/snapshotting"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing/mocks"
)

const accountID = int64(512345678)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{
			LookbackDays:     30,
			HeartbeatSeconds: 0,
		},
	}
}

func waitDone(t *testing.T, job *syncing.Job) {
	t.Helper()
	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("pipeline não terminou no tempo esperado")
	}
}

func validAccount() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": float64(accountID), "name": "Conta Principal", "status": "ACTIVE"},
	}
}

func validCampaigns() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": float64(987654), "name": "Campanha", "status": "ACTIVE"},
	}
}

func TestStartSync_PipelineCompletoComSucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	syncRunRepo := repomocks.NewMockSyncRunRepository(ctrl)
	registry := syncing.NewRegistry(time.Hour)

	syncRunRepo.EXPECT().ShouldSync(gomock.Any(), accountID, false).Return(true, "dados vencidos", nil)
	syncRunRepo.EXPECT().StartRun(gomock.Any(), accountID, "api").Return(int64(77), nil)

	before := fetcher.EXPECT().CallCount().Return(int64(10))
	fetcher.EXPECT().CallCount().Return(int64(25)).After(before)

	fetcher.EXPECT().FetchAccounts(gomock.Any()).Return(validAccount(), nil)
	fetcher.EXPECT().FetchCampaigns(gomock.Any(), accountID, gomock.Nil()).Return(validCampaigns(), nil)
	fetcher.EXPECT().FetchCreatives(gomock.Any(), accountID, []int64{987654}).Return([]map[string]interface{}{
		{"id": "urn:li:sponsoredCreative:111", "campaign": "urn:li:sponsoredCampaign:987654"},
	}, nil)
	fetcher.EXPECT().FetchCampaignMetrics(gomock.Any(), []int64{987654}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]map[string]interface{}{
			{"pivotValues": []interface{}{"urn:li:sponsoredCampaign:987654"}, "impressions": float64(1000), "clicks": float64(50)},
		}, nil)
	fetcher.EXPECT().FetchCreativeMetrics(gomock.Any(), []int64{987654}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]map[string]interface{}{}, nil)
	fetcher.EXPECT().FetchDemographics(gomock.Any(), []int64{987654}, gomock.Any(), gomock.Any()).
		Return(map[string][]map[string]interface{}{
			"MEMBER_SENIORITY": {
				{"pivotValues": []interface{}{"urn:li:seniority:4"}, "impressions": float64(500), "clicks": float64(25)},
			},
		}, nil)
	fetcher.EXPECT().ResolveSegmentNames(gomock.Any(), []string{"urn:li:seniority:4"}).
		Return(map[string]string{"urn:li:seniority:4": "Sênior"})

	var persisted *domain.Snapshot
	snapshotRepo.EXPECT().PersistSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *domain.Snapshot) error {
			persisted = snap
			return nil
		})

	var finishedStats domain.SyncRunStats
	syncRunRepo.EXPECT().FinishRun(gomock.Any(), int64(77), domain.SyncRunStatusSuccess, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, stats domain.SyncRunStats) error {
			finishedStats = stats
			return nil
		})

	svc := syncing.NewService(testConfig(), fetcher, snapshotting.NewService(), snapshotRepo, syncRunRepo, registry)

	job, err := svc.StartSync(context.Background(), accountID, false, "api")
	require.NoError(t, err)
	assert.Equal(t, int64(77), job.RunID)

	waitDone(t, job)

	status := job.Status()
	assert.Equal(t, syncing.StepDone, status.Step)
	require.NotNil(t, status.FinishedAt)

	require.NotNil(t, persisted)
	require.Len(t, persisted.Accounts, 1)
	assert.Equal(t, accountID, persisted.Accounts[0].ID)
	require.Len(t, persisted.Accounts[0].Campaigns, 1)
	assert.Equal(t, int64(1000), persisted.Accounts[0].Campaigns[0].MetricsSummary.Impressions)
	assert.Equal(t, "Sênior", persisted.Accounts[0].AudienceDemographics["seniority"][0].Name)

	assert.Equal(t, 1, finishedStats.CampaignsFetched)
	assert.Equal(t, 1, finishedStats.CreativesFetched)
	assert.Equal(t, 15, finishedStats.APICallsMade)
	assert.Nil(t, finishedStats.Errors)

	// slot da conta liberado após o término
	_, running := registry.Running(accountID)
	assert.False(t, running)
}

func TestStartSync_FalhaNaBuscaFinalizaComErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	syncRunRepo := repomocks.NewMockSyncRunRepository(ctrl)
	registry := syncing.NewRegistry(time.Hour)

	syncRunRepo.EXPECT().ShouldSync(gomock.Any(), accountID, false).Return(true, "dados vencidos", nil)
	syncRunRepo.EXPECT().StartRun(gomock.Any(), accountID, "api").Return(int64(78), nil)

	before := fetcher.EXPECT().CallCount().Return(int64(0))
	fetcher.EXPECT().CallCount().Return(int64(2)).After(before)
	fetcher.EXPECT().FetchAccounts(gomock.Any()).Return(nil, errors.New("limite de requisições excedido"))

	var finishedStatus string
	var finishedStats domain.SyncRunStats
	syncRunRepo.EXPECT().FinishRun(gomock.Any(), int64(78), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, status string, stats domain.SyncRunStats) error {
			finishedStatus = status
			finishedStats = stats
			return nil
		})

	svc := syncing.NewService(testConfig(), fetcher, snapshotting.NewService(), snapshotRepo, syncRunRepo, registry)

	job, err := svc.StartSync(context.Background(), accountID, false, "api")
	require.NoError(t, err)

	waitDone(t, job)

	status := job.Status()
	assert.Equal(t, syncing.StepError, status.Step)
	assert.Contains(t, status.Detail, "limite de requisições")

	assert.Equal(t, domain.SyncRunStatusFailed, finishedStatus)
	require.NotNil(t, finishedStats.Errors)
	assert.Contains(t, *finishedStats.Errors, "limite de requisições")

	_, running := registry.Running(accountID)
	assert.False(t, running)
}

func TestStartSync_ContaRecenteRetornaErrAccountFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	syncRunRepo := repomocks.NewMockSyncRunRepository(ctrl)
	registry := syncing.NewRegistry(time.Hour)

	syncRunRepo.EXPECT().ShouldSync(gomock.Any(), accountID, false).
		Return(false, "dados recentes: última sincronização há 100 minutos (TTL 240 minutos)", nil)

	svc := syncing.NewService(testConfig(), fetcher, snapshotting.NewService(),
		repomocks.NewMockSnapshotRepository(ctrl), syncRunRepo, registry)

	job, err := svc.StartSync(context.Background(), accountID, false, "api")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, syncing.ErrAccountFresh)
	assert.Contains(t, err.Error(), "100 minutos")
}

func TestStartSync_ForceIgnoraOGateDeFrescor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	syncRunRepo := repomocks.NewMockSyncRunRepository(ctrl)
	registry := syncing.NewRegistry(time.Hour)

	syncRunRepo.EXPECT().ShouldSync(gomock.Any(), accountID, true).Return(true, "sincronização forçada", nil)
	syncRunRepo.EXPECT().StartRun(gomock.Any(), accountID, "api").Return(int64(79), nil)

	before := fetcher.EXPECT().CallCount().Return(int64(0))
	fetcher.EXPECT().CallCount().Return(int64(1)).After(before)
	fetcher.EXPECT().FetchAccounts(gomock.Any()).Return(nil, errors.New("qualquer falha encerra o teste"))
	syncRunRepo.EXPECT().FinishRun(gomock.Any(), int64(79), domain.SyncRunStatusFailed, gomock.Any()).Return(nil)

	svc := syncing.NewService(testConfig(), fetcher, snapshotting.NewService(),
		repomocks.NewMockSnapshotRepository(ctrl), syncRunRepo, registry)

	job, err := svc.StartSync(context.Background(), accountID, true, "api")
	require.NoError(t, err)

	waitDone(t, job)
}

func TestStartSync_ContaComExecucaoAtivaRetornaConflito(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	syncRunRepo := repomocks.NewMockSyncRunRepository(ctrl)
	registry := syncing.NewRegistry(time.Hour)

	// ocupa o slot da conta com um job ainda ativo
	require.NoError(t, registry.Add(syncing.NewJob("em-andamento", accountID)))

	syncRunRepo.EXPECT().ShouldSync(gomock.Any(), accountID, false).Return(true, "dados vencidos", nil)

	svc := syncing.NewService(testConfig(), fetcher, snapshotting.NewService(),
		repomocks.NewMockSnapshotRepository(ctrl), syncRunRepo, registry)

	job, err := svc.StartSync(context.Background(), accountID, false, "api")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, syncing.ErrSyncAlreadyRunning)
}

func TestStartSync_FalhaAoRegistrarRunLiberaOSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	syncRunRepo := repomocks.NewMockSyncRunRepository(ctrl)
	registry := syncing.NewRegistry(time.Hour)

	syncRunRepo.EXPECT().ShouldSync(gomock.Any(), accountID, false).Return(true, "dados vencidos", nil)
	syncRunRepo.EXPECT().StartRun(gomock.Any(), accountID, "api").Return(int64(0), errors.New("banco indisponível"))

	svc := syncing.NewService(testConfig(), fetcher, snapshotting.NewService(),
		repomocks.NewMockSnapshotRepository(ctrl), syncRunRepo, registry)

	job, err := svc.StartSync(context.Background(), accountID, false, "api")

	assert.Nil(t, job)
	assert.Error(t, err)

	// o slot fica livre para a próxima tentativa
	_, running := registry.Running(accountID)
	assert.False(t, running)
}
