package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-sync/pkg/apiErrors"
)

// TriggerAPI identifica sincronizações disparadas manualmente pela API
const TriggerAPI = "api"

// StartSync dispara a sincronização de uma conta. Com force=true o gate
// de frescor é ignorado. Responde 202 com o status inicial do job.
func StartSync(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		accountID, err := strconv.ParseInt(params.ByName("accountID"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "id de conta inválido", nil)
			return
		}

		force := r.URL.Query().Get("force") == "true"

		job, err := service.StartSync(r.Context(), accountID, force, TriggerAPI)
		if err != nil {
			switch {
			case errors.Is(err, syncing.ErrSyncAlreadyRunning):
				apiErrors.WriteError(w, apiErrors.ErrSyncConflict, err.Error(), nil)
			case errors.Is(err, syncing.ErrAccountFresh):
				apiErrors.WriteError(w, apiErrors.ErrAccountFresh, err.Error(), nil)
			default:
				logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao iniciar sincronização")
				apiErrors.WriteError(w, apiErrors.ErrSyncStartError, "Erro ao iniciar a sincronização", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(job.Status()); err != nil {
			logrus.WithError(err).Warn("Erro ao codificar resposta do job")
		}
	})
}

// GetSyncJob retorna o status corrente de um job
func GetSyncJob(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		job, ok := service.JobStatus(params.ByName("id"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "job de sincronização não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(job.Status()); err != nil {
			logrus.WithError(err).Warn("Erro ao codificar resposta do job")
		}
	})
}

// StreamSyncEvents transmite o progresso de um job como Server-Sent
// Events. A conexão fecha quando o job termina ou o cliente desiste.
func StreamSyncEvents(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		job, ok := service.JobStatus(params.ByName("id"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "job de sincronização não encontrado", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		// O estado corrente abre o stream; quem conecta tarde não fica
		// esperando o próximo evento
		writeSSE(w, job.Status())
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case ev, open := <-job.Events():
				if !open {
					return
				}
				writeSSE(w, ev)
				flusher.Flush()
			}
		}
	})
}

func writeSSE(w http.ResponseWriter, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao serializar evento SSE")
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

// ListSyncJobs retorna todos os jobs conhecidos pelo registro
func ListSyncJobs(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.ListJobs()); err != nil {
			logrus.WithError(err).Warn("Erro ao codificar lista de jobs")
		}
	})
}
