package syncing

import (
	"sync"
	"time"
)

// Etapas reportadas por um job de sincronização. O consumidor trata
// qualquer etapa não terminal como "em andamento".
const (
	StepPending          = "pending"
	StepFetchingEntities = "fetching_entities"
	StepFetchingMetrics  = "fetching_metrics"
	StepAssembling       = "assembling"
	StepPersisting       = "persisting"
	StepHeartbeat        = "heartbeat"
	StepDone             = "done"
	StepError            = "error"
)

// ProgressEvent é uma transição de etapa emitida no canal do job
type ProgressEvent struct {
	Step   string    `json:"step"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// JobStatus é a visão imutável do estado de um job, segura para
// serializar na API
type JobStatus struct {
	ID         string     `json:"id"`
	AccountID  int64      `json:"account_id"`
	RunID      int64      `json:"run_id"`
	Step       string     `json:"step"`
	Detail     string     `json:"detail,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Job acompanha uma execução do pipeline. Eventos de progresso saem em um
// canal bufferizado; um consumidor lento nunca bloqueia o pipeline (o
// evento é descartado, o estado corrente fica sempre disponível em Status).
type Job struct {
	ID        string
	AccountID int64
	RunID     int64

	mu         sync.RWMutex
	step       string
	detail     string
	startedAt  time.Time
	finishedAt *time.Time
	lastEmit   time.Time
	closed     bool

	events chan ProgressEvent
	done   chan struct{}
}

func NewJob(id string, accountID int64) *Job {
	now := time.Now().UTC()
	j := &Job{
		ID:        id,
		AccountID: accountID,
		step:      StepPending,
		startedAt: now,
		lastEmit:  now,
		events:    make(chan ProgressEvent, 64),
		done:      make(chan struct{}),
	}
	return j
}

// Emit registra a transição de etapa e publica o evento. Nas etapas
// terminais (done, error) o canal de eventos é fechado e emissões
// posteriores viram no-op.
func (j *Job) Emit(step, detail string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return
	}

	now := time.Now().UTC()
	j.lastEmit = now
	if step != StepHeartbeat {
		j.step = step
		j.detail = detail
	}

	ev := ProgressEvent{Step: step, Detail: detail, At: now}
	select {
	case j.events <- ev:
	default:
	}

	if step == StepDone || step == StepError {
		j.finishedAt = &now
		j.closed = true
		close(j.events)
		close(j.done)
	}
}

// Events expõe o canal de progresso para consumo (API SSE). O canal é
// fechado quando o job termina.
func (j *Job) Events() <-chan ProgressEvent {
	return j.events
}

// Done é fechado quando o job atinge uma etapa terminal
func (j *Job) Done() <-chan struct{} {
	return j.done
}

func (j *Job) Status() JobStatus {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return JobStatus{
		ID:         j.ID,
		AccountID:  j.AccountID,
		RunID:      j.RunID,
		Step:       j.step,
		Detail:     j.detail,
		StartedAt:  j.startedAt,
		FinishedAt: j.finishedAt,
	}
}

func (j *Job) Finished() bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.finishedAt != nil
}

func (j *Job) finishedBefore(cutoff time.Time) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.finishedAt != nil && j.finishedAt.Before(cutoff)
}

// startHeartbeat emite um batimento quando o pipeline fica o intervalo
// inteiro sem publicar nada, para o consumidor distinguir etapa longa de
// conexão morta
func (j *Job) startHeartbeat(interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-j.done:
				return
			case <-ticker.C:
				j.mu.RLock()
				idle := time.Since(j.lastEmit) >= interval
				j.mu.RUnlock()

				if idle {
					j.Emit(StepHeartbeat, "")
				}
			}
		}
	}()
}
