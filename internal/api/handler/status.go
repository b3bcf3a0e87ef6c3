package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-sync/internal/scheduler"
	"github.com/vfg2006/linkedin-ads-sync/pkg/apiErrors"
)

// GetSchedulerStatus expõe o estado do agendador de sincronização
func GetSchedulerStatus(service *scheduler.LinkedInSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logrus.WithError(err).Warn("Erro ao codificar status do agendador")
		}
	})
}

// GetAudit lista campanhas ativas com configurações suspeitas e as
// contagens das tabelas do pipeline
func GetAudit(repo repository.SnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audits, err := repo.ActiveCampaignAudit(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar auditoria de campanhas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar auditoria de campanhas", nil)
			return
		}

		counts, err := repo.TableCounts(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao contar tabelas do pipeline")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contagens das tabelas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]interface{}{
			"active_campaigns": audits,
			"table_counts":     counts,
		})
		if err != nil {
			logrus.WithError(err).Warn("Erro ao codificar resposta de auditoria")
		}
	})
}
