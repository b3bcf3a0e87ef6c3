package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
)

// Tabelas alimentadas por uma persistência de snapshot
var snapshotTables = []string{
	"ad_accounts",
	"campaigns",
	"creatives",
	"campaign_daily_metrics",
	"creative_daily_metrics",
	"audience_demographics",
}

type SnapshotRepository interface {
	PersistSnapshot(ctx context.Context, snap *domain.Snapshot) error
	TableCounts(ctx context.Context) (map[string]int64, error)
	ActiveCampaignAudit(ctx context.Context) ([]*domain.CampaignAudit, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// PersistSnapshot grava o snapshot inteiro em uma única transação.
// Os upserts são idempotentes: repetir a mesma persistência deixa o
// banco no mesmo estado. Qualquer erro desfaz tudo.
func (r *snapshotRepository) PersistSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	fetchedAt := time.Now().UTC()

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, acct := range snap.Accounts {
			if err := upsertAccount(ctx, tx, acct, fetchedAt); err != nil {
				return wrapDBError(err, "conta", acct.ID)
			}

			for _, camp := range acct.Campaigns {
				if err := upsertCampaign(ctx, tx, acct.ID, camp, fetchedAt); err != nil {
					return wrapDBError(err, "campanha", camp.ID)
				}

				for _, day := range camp.DailyMetrics {
					if err := upsertCampaignDaily(ctx, tx, camp.ID, day, fetchedAt); err != nil {
						return wrapDBError(err, "métrica diária de campanha", camp.ID)
					}
				}

				for _, cr := range camp.Creatives {
					if err := upsertCreative(ctx, tx, acct.ID, cr, fetchedAt); err != nil {
						return fmt.Errorf("criativo %s: %w", cr.ID, err)
					}

					for _, day := range cr.DailyMetrics {
						if err := upsertCreativeDaily(ctx, tx, cr.ID, day, fetchedAt); err != nil {
							return fmt.Errorf("métrica diária de criativo %s: %w", cr.ID, err)
						}
					}
				}
			}

			for pivot, segments := range acct.AudienceDemographics {
				for _, seg := range segments {
					if err := upsertDemographic(ctx, tx, acct.ID, pivot, seg, snap.DateRange, fetchedAt); err != nil {
						return wrapDBError(err, "demografia", acct.ID)
					}
				}
			}
		}

		logrus.WithField("accounts", len(snap.Accounts)).Info("Snapshot persistido no banco")
		return nil
	})
}

func upsertAccount(ctx context.Context, tx *sql.Tx, acct *domain.AccountSnapshot, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Insert("ad_accounts").
		Columns("id", "name", "status", "currency", "type", "is_test", "fetched_at").
		Values(acct.ID, acct.Name, acct.Status, acct.Currency, acct.Type, acct.Test, fetchedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				currency = EXCLUDED.currency,
				type = EXCLUDED.type,
				is_test = EXCLUDED.is_test,
				fetched_at = EXCLUDED.fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func upsertCampaign(ctx context.Context, tx *sql.Tx, accountID int64, camp *domain.CampaignSnapshot, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns(
			"id", "account_id", "name", "status", "type",
			"daily_budget", "daily_budget_currency", "total_budget",
			"cost_type", "unit_cost", "bid_strategy", "creative_selection",
			"offsite_delivery_enabled", "audience_expansion_enabled",
			"campaign_group", "fetched_at",
		).
		Values(
			camp.ID, accountID, camp.Name, camp.Status, camp.Type,
			parseBudget(camp.Settings.DailyBudget), camp.Settings.DailyBudgetCurrency, parseBudget(camp.Settings.TotalBudget),
			camp.Settings.CostType, parseBudget(camp.Settings.UnitCost), camp.Settings.BidStrategy, camp.Settings.CreativeSelection,
			camp.Settings.OffsiteDeliveryEnabled, camp.Settings.AudienceExpansionEnabled,
			camp.Settings.CampaignGroup, fetchedAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				type = EXCLUDED.type,
				daily_budget = EXCLUDED.daily_budget,
				daily_budget_currency = EXCLUDED.daily_budget_currency,
				total_budget = EXCLUDED.total_budget,
				cost_type = EXCLUDED.cost_type,
				unit_cost = EXCLUDED.unit_cost,
				bid_strategy = EXCLUDED.bid_strategy,
				creative_selection = EXCLUDED.creative_selection,
				offsite_delivery_enabled = EXCLUDED.offsite_delivery_enabled,
				audience_expansion_enabled = EXCLUDED.audience_expansion_enabled,
				campaign_group = EXCLUDED.campaign_group,
				fetched_at = EXCLUDED.fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// upsertCreative preserva created_at em re-sincronizações: a lista de
// atualização do conflito não inclui a coluna de propósito.
func upsertCreative(ctx context.Context, tx *sql.Tx, accountID int64, cr *domain.CreativeSnapshot, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Insert("creatives").
		Columns(
			"id", "campaign_id", "account_id", "intended_status", "is_serving",
			"content_reference", "serving_hold_reasons", "created_at", "last_modified_at", "fetched_at",
		).
		Values(
			cr.ID, cr.CampaignID, accountID, cr.IntendedStatus, cr.IsServing,
			cr.ContentReference, strings.Join(cr.ServingHoldReasons, ","), cr.CreatedAt, cr.LastModifiedAt, fetchedAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				account_id = EXCLUDED.account_id,
				intended_status = EXCLUDED.intended_status,
				is_serving = EXCLUDED.is_serving,
				content_reference = EXCLUDED.content_reference,
				serving_hold_reasons = EXCLUDED.serving_hold_reasons,
				last_modified_at = EXCLUDED.last_modified_at,
				fetched_at = EXCLUDED.fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func upsertCampaignDaily(ctx context.Context, tx *sql.Tx, campaignID int64, day *domain.DailyMetric, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Insert("campaign_daily_metrics").
		Columns(dailyMetricColumns("campaign_id")...).
		Values(dailyMetricValues(campaignID, day, fetchedAt)...).
		Suffix(dailyMetricConflict("campaign_id")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func upsertCreativeDaily(ctx context.Context, tx *sql.Tx, creativeID string, day *domain.DailyMetric, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Insert("creative_daily_metrics").
		Columns(dailyMetricColumns("creative_id")...).
		Values(dailyMetricValues(creativeID, day, fetchedAt)...).
		Suffix(dailyMetricConflict("creative_id")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func upsertDemographic(ctx context.Context, tx *sql.Tx, accountID int64, pivot string, seg *domain.DemographicSegment, dr domain.DateRange, fetchedAt time.Time) error {
	query, args, err := squirrel.
		Insert("audience_demographics").
		Columns(
			"account_id", "pivot_type", "segment", "segment_name",
			"impressions", "clicks", "ctr", "share_pct",
			"date_start", "date_end", "fetched_at",
		).
		Values(
			accountID, pivot, seg.Segment, seg.Name,
			seg.Impressions, seg.Clicks, seg.CTR, seg.ShareOfImpressions,
			dr.Start, dr.End, fetchedAt,
		).
		Suffix(`
			ON CONFLICT (account_id, pivot_type, segment, date_start) DO UPDATE SET
				segment_name = EXCLUDED.segment_name,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				share_pct = EXCLUDED.share_pct,
				date_end = EXCLUDED.date_end,
				fetched_at = EXCLUDED.fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func dailyMetricColumns(idColumn string) []string {
	return []string{
		idColumn, "date",
		"impressions", "clicks", "spend", "landing_page_clicks", "conversions",
		"likes", "comments", "shares", "follows", "leads", "opens", "sends",
		"ctr", "cpc", "fetched_at",
	}
}

func dailyMetricValues(id interface{}, day *domain.DailyMetric, fetchedAt time.Time) []interface{} {
	return []interface{}{
		id, day.Date,
		day.Impressions, day.Clicks, day.Spend, day.LandingPageClicks, day.Conversions,
		day.Likes, day.Comments, day.Shares, day.Follows, day.Leads, day.Opens, day.Sends,
		day.CTR, day.CPC, fetchedAt,
	}
}

func dailyMetricConflict(idColumn string) string {
	return fmt.Sprintf(`
		ON CONFLICT (%s, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			spend = EXCLUDED.spend,
			landing_page_clicks = EXCLUDED.landing_page_clicks,
			conversions = EXCLUDED.conversions,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			shares = EXCLUDED.shares,
			follows = EXCLUDED.follows,
			leads = EXCLUDED.leads,
			opens = EXCLUDED.opens,
			sends = EXCLUDED.sends,
			ctr = EXCLUDED.ctr,
			cpc = EXCLUDED.cpc,
			fetched_at = EXCLUDED.fetched_at
	`, idColumn)
}

// TableCounts conta as linhas de cada tabela alimentada pelo pipeline.
// Leitura de diagnóstico usada pela rota de auditoria.
func (r *snapshotRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(snapshotTables))

	for _, table := range snapshotTables {
		query, _, err := squirrel.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, err
		}

		var n int64
		if err := r.conn.QueryRow(ctx, query).Scan(&n); err != nil {
			return nil, fmt.Errorf("erro ao contar %s: %w", table, err)
		}
		counts[table] = n
	}

	return counts, nil
}

// ActiveCampaignAudit lista campanhas ativas com configurações que
// costumam inflar custo: LAN habilitada, expansão de audiência ligada e
// tipo de custo CPM (entrega máxima).
func (r *snapshotRepository) ActiveCampaignAudit(ctx context.Context) ([]*domain.CampaignAudit, error) {
	query, args, err := squirrel.
		Select("name", "offsite_delivery_enabled", "audience_expansion_enabled", "cost_type").
		From("campaigns").
		Where(squirrel.Eq{"status": "ACTIVE"}).
		OrderBy("name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	audits := []*domain.CampaignAudit{}
	for rows.Next() {
		var (
			name              string
			offsiteDelivery   bool
			audienceExpansion bool
			costType          sql.NullString
		)
		if err := rows.Scan(&name, &offsiteDelivery, &audienceExpansion, &costType); err != nil {
			return nil, err
		}

		audit := &domain.CampaignAudit{Name: name, Issues: []string{}}
		if offsiteDelivery {
			audit.Issues = append(audit.Issues, "LAN enabled")
		}
		if audienceExpansion {
			audit.Issues = append(audit.Issues, "Audience Expansion ON")
		}
		if costType.String == "CPM" {
			audit.Issues = append(audit.Issues, "Maximum Delivery (CPM)")
		}
		audits = append(audits, audit)
	}

	return audits, rows.Err()
}

// parseBudget converte os valores monetários que a API devolve como
// string; vazio ou inválido vira zero
func parseBudget(amount string) float64 {
	if amount == "" {
		return 0
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}
	return v
}

func wrapDBError(err error, entity string, id int64) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco ao gravar %s %d: %w (código: %s)", entity, id, pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao gravar %s %d: %w", entity, id, err)
}
