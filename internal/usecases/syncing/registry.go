package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Registry guarda os jobs em andamento e os recém-terminados. Um índice
// por conta garante no máximo uma sincronização simultânea por conta; o
// zelador remove jobs terminais após o período de retenção.
type Registry struct {
	mu               sync.RWMutex
	jobs             map[string]*Job
	runningByAccount map[int64]*Job
	retention        time.Duration
}

func NewRegistry(retention time.Duration) *Registry {
	return &Registry{
		jobs:             make(map[string]*Job),
		runningByAccount: make(map[int64]*Job),
		retention:        retention,
	}
}

// Add registra o job e o marca como a execução corrente da conta.
// Retorna ErrSyncAlreadyRunning se a conta já tem uma execução ativa.
func (r *Registry) Add(job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.runningByAccount[job.AccountID]; ok && !current.Finished() {
		return ErrSyncAlreadyRunning
	}

	r.jobs[job.ID] = job
	r.runningByAccount[job.AccountID] = job
	return nil
}

// Release libera o slot de execução da conta. O job continua consultável
// em Get até o zelador removê-lo.
func (r *Registry) Release(job *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.runningByAccount[job.AccountID]; ok && current.ID == job.ID {
		delete(r.runningByAccount, job.AccountID)
	}
}

func (r *Registry) Get(id string) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	return job, ok
}

// Running retorna o job ativo da conta, se houver
func (r *Registry) Running(accountID int64) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.runningByAccount[accountID]
	if !ok || job.Finished() {
		return nil, false
	}
	return job, true
}

// List retorna o status de todos os jobs conhecidos
func (r *Registry) List() []JobStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make([]JobStatus, 0, len(r.jobs))
	for _, job := range r.jobs {
		statuses = append(statuses, job.Status())
	}
	return statuses
}

// StartJanitor varre periodicamente os jobs terminais vencidos e os
// remove do registro. Para quando o contexto é cancelado.
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.evictExpired()
			}
		}
	}()
}

func (r *Registry) evictExpired() {
	cutoff := time.Now().UTC().Add(-r.retention)

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, job := range r.jobs {
		if job.finishedBefore(cutoff) {
			delete(r.jobs, id)
			logrus.WithFields(logrus.Fields{
				"job_id":     id,
				"account_id": job.AccountID,
			}).Debug("Job terminal removido do registro")
		}
	}
}
