package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/linkedinclient"
)

// HealthcheckHandler verifica o banco e a credencial LinkedIn. A falha da
// introspecção não derruba o healthcheck: a API continua útil para
// consultar dados já sincronizados.
func HealthcheckHandler(conn *postgres.Connection, client linkedinclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}
		httpStatus := http.StatusOK

		if err := conn.Ping(ctx); err != nil {
			logrus.WithError(err).Error("Healthcheck: banco indisponível")
			status["status"] = "degraded"
			status["database"] = "unavailable"
			httpStatus = http.StatusServiceUnavailable
		} else {
			status["database"] = "ok"
		}

		if err := client.Introspect(ctx); err != nil {
			logrus.WithError(err).Warn("Healthcheck: credencial LinkedIn inválida ou vencida")
			status["linkedin_token"] = "invalid"
		} else {
			status["linkedin_token"] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpStatus)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
