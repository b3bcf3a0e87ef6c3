package handler

import (
	"net/http"

	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-sync/internal/api/handler/router"
	"github.com/vfg2006/linkedin-ads-sync/internal/scheduler"
	"github.com/vfg2006/linkedin-ads-sync/internal/usecases/syncing"
)

func Healthcheck(conn *postgres.Connection, client linkedinclient.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn, client),
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/:accountID",
			Method:  http.MethodPost,
			Handler: StartSync(service),
		},
		{
			Path:    "/v1/sync/jobs",
			Method:  http.MethodGet,
			Handler: ListSyncJobs(service),
		},
		{
			Path:    "/v1/sync/jobs/:id",
			Method:  http.MethodGet,
			Handler: GetSyncJob(service),
		},
		{
			Path:    "/v1/sync/jobs/:id/events",
			Method:  http.MethodGet,
			Handler: StreamSyncEvents(service),
		},
	}
}

func SchedulerStatus(service *scheduler.LinkedInSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSchedulerStatus(service),
		},
	}
}

func Audit(repo repository.SnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audit",
			Method:  http.MethodGet,
			Handler: GetAudit(repo),
		},
	}
}
