package domain

import "time"

// Status possíveis de uma execução de sincronização
const (
	SyncRunStatusRunning = "running"
	SyncRunStatusSuccess = "success"
	SyncRunStatusFailed  = "failed"
)

// SyncRun é a linha de auditoria append-only de uma execução do pipeline.
// Criada no início (running) e finalizada exatamente uma vez.
type SyncRun struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	Status      string     `json:"status"`
	TriggeredBy string     `json:"triggered_by,omitempty"`

	CampaignsFetched int     `json:"campaigns_fetched"`
	CreativesFetched int     `json:"creatives_fetched"`
	APICallsMade     int     `json:"api_calls_made"`
	Errors           *string `json:"errors,omitempty"`
}

// SyncRunStats carrega os contadores registrados ao finalizar uma execução
type SyncRunStats struct {
	CampaignsFetched int
	CreativesFetched int
	APICallsMade     int
	Errors           *string
}
