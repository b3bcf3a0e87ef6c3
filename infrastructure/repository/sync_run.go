package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
)

const syncRunsTable = "sync_runs"

type SyncRunRepository interface {
	// ShouldSync aplica a regra de frescor: retorna se a conta deve ser
	// sincronizada e uma razão legível para a decisão
	ShouldSync(ctx context.Context, accountID int64, force bool) (bool, string, error)
	StartRun(ctx context.Context, accountID int64, trigger string) (int64, error)
	FinishRun(ctx context.Context, runID int64, status string, stats domain.SyncRunStats) error
	LastSuccessfulRun(ctx context.Context, accountID int64) (*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn *postgres.Connection
	ttl  time.Duration
}

func NewSyncRunRepository(conn *postgres.Connection, freshnessTTL time.Duration) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
		ttl:  freshnessTTL,
	}
}

func (r *syncRunRepository) ShouldSync(ctx context.Context, accountID int64, force bool) (bool, string, error) {
	last, err := r.LastSuccessfulRun(ctx, accountID)
	if err != nil {
		return false, "", err
	}

	var lastFinished *time.Time
	if last != nil {
		lastFinished = last.FinishedAt
	}

	should, reason := freshnessDecision(lastFinished, r.ttl, force, time.Now().UTC())
	return should, reason, nil
}

// freshnessDecision é a regra de frescor isolada em função pura: sem
// relógio nem banco, apenas o término da última execução bem-sucedida,
// o TTL e o instante atual.
func freshnessDecision(lastFinished *time.Time, ttl time.Duration, force bool, now time.Time) (bool, string) {
	if force {
		return true, "sincronização forçada"
	}

	if lastFinished == nil {
		return true, "nenhuma sincronização bem-sucedida anterior"
	}

	age := now.Sub(*lastFinished)
	if age < ttl {
		return false, fmt.Sprintf("dados recentes: última sincronização há %d minutos (TTL %d minutos)",
			int(age.Minutes()), int(ttl.Minutes()))
	}

	return true, fmt.Sprintf("dados vencidos: última sincronização há %d minutos (TTL %d minutos)",
		int(age.Minutes()), int(ttl.Minutes()))
}

func (r *syncRunRepository) StartRun(ctx context.Context, accountID int64, trigger string) (int64, error) {
	query, args, err := squirrel.
		Insert(syncRunsTable).
		Columns("account_id", "started_at", "status", "triggered_by").
		Values(accountID, time.Now().UTC(), domain.SyncRunStatusRunning, trigger).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var runID int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&runID); err != nil {
		return 0, fmt.Errorf("erro ao registrar início da sincronização: %w", err)
	}

	return runID, nil
}

func (r *syncRunRepository) FinishRun(ctx context.Context, runID int64, status string, stats domain.SyncRunStats) error {
	query, args, err := squirrel.
		Update(syncRunsTable).
		Set("finished_at", time.Now().UTC()).
		Set("status", status).
		Set("campaigns_fetched", stats.CampaignsFetched).
		Set("creatives_fetched", stats.CreativesFetched).
		Set("api_calls_made", stats.APICallsMade).
		Set("errors", stats.Errors).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao finalizar a sincronização %d: %w", runID, err)
	}

	return nil
}

func (r *syncRunRepository) LastSuccessfulRun(ctx context.Context, accountID int64) (*domain.SyncRun, error) {
	query, args, err := squirrel.
		Select("id", "account_id", "started_at", "finished_at", "status", "triggered_by",
			"campaigns_fetched", "creatives_fetched", "api_calls_made", "errors").
		From(syncRunsTable).
		Where(squirrel.Eq{"account_id": accountID, "status": domain.SyncRunStatusSuccess}).
		OrderBy("finished_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(ctx, query, args...)

	run := &domain.SyncRun{}
	var triggeredBy sql.NullString
	err = row.Scan(
		&run.ID,
		&run.AccountID,
		&run.StartedAt,
		&run.FinishedAt,
		&run.Status,
		&triggeredBy,
		&run.CampaignsFetched,
		&run.CreativesFetched,
		&run.APICallsMade,
		&run.Errors,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	run.TriggeredBy = triggeredBy.String
	return run, nil
}
