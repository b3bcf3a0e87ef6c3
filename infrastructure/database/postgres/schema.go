package postgres

import "context"

// Schema das sete tabelas do pipeline. As chaves primárias compostas das
// tabelas de métricas garantem que uma re-sincronização substitua a linha
// do dia em vez de duplicá-la.
const schema = `
CREATE TABLE IF NOT EXISTS ad_accounts (
    id          BIGINT PRIMARY KEY,
    name        TEXT,
    status      TEXT,
    currency    TEXT,
    type        TEXT,
    is_test     BOOLEAN NOT NULL DEFAULT FALSE,
    fetched_at  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS campaigns (
    id                          BIGINT PRIMARY KEY,
    account_id                  BIGINT REFERENCES ad_accounts(id),
    name                        TEXT,
    status                      TEXT,
    type                        TEXT,
    daily_budget                DOUBLE PRECISION NOT NULL DEFAULT 0,
    daily_budget_currency       TEXT,
    total_budget                DOUBLE PRECISION NOT NULL DEFAULT 0,
    cost_type                   TEXT,
    unit_cost                   DOUBLE PRECISION NOT NULL DEFAULT 0,
    bid_strategy                TEXT,
    creative_selection          TEXT,
    offsite_delivery_enabled    BOOLEAN NOT NULL DEFAULT FALSE,
    audience_expansion_enabled  BOOLEAN NOT NULL DEFAULT FALSE,
    campaign_group              TEXT,
    fetched_at                  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS creatives (
    id                   TEXT PRIMARY KEY,
    campaign_id          BIGINT REFERENCES campaigns(id),
    account_id           BIGINT REFERENCES ad_accounts(id),
    intended_status      TEXT,
    is_serving           BOOLEAN NOT NULL DEFAULT FALSE,
    content_reference    TEXT,
    serving_hold_reasons TEXT,
    created_at           BIGINT,
    last_modified_at     BIGINT,
    fetched_at           TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS campaign_daily_metrics (
    campaign_id         BIGINT REFERENCES campaigns(id),
    date                DATE,
    impressions         BIGINT NOT NULL DEFAULT 0,
    clicks              BIGINT NOT NULL DEFAULT 0,
    spend               DOUBLE PRECISION NOT NULL DEFAULT 0,
    landing_page_clicks BIGINT NOT NULL DEFAULT 0,
    conversions         BIGINT NOT NULL DEFAULT 0,
    likes               BIGINT NOT NULL DEFAULT 0,
    comments            BIGINT NOT NULL DEFAULT 0,
    shares              BIGINT NOT NULL DEFAULT 0,
    follows             BIGINT NOT NULL DEFAULT 0,
    leads               BIGINT NOT NULL DEFAULT 0,
    opens               BIGINT NOT NULL DEFAULT 0,
    sends               BIGINT NOT NULL DEFAULT 0,
    ctr                 DOUBLE PRECISION NOT NULL DEFAULT 0,
    cpc                 DOUBLE PRECISION NOT NULL DEFAULT 0,
    fetched_at          TIMESTAMPTZ,
    PRIMARY KEY (campaign_id, date)
);

CREATE TABLE IF NOT EXISTS creative_daily_metrics (
    creative_id         TEXT REFERENCES creatives(id),
    date                DATE,
    impressions         BIGINT NOT NULL DEFAULT 0,
    clicks              BIGINT NOT NULL DEFAULT 0,
    spend               DOUBLE PRECISION NOT NULL DEFAULT 0,
    landing_page_clicks BIGINT NOT NULL DEFAULT 0,
    conversions         BIGINT NOT NULL DEFAULT 0,
    likes               BIGINT NOT NULL DEFAULT 0,
    comments            BIGINT NOT NULL DEFAULT 0,
    shares              BIGINT NOT NULL DEFAULT 0,
    follows             BIGINT NOT NULL DEFAULT 0,
    leads               BIGINT NOT NULL DEFAULT 0,
    opens               BIGINT NOT NULL DEFAULT 0,
    sends               BIGINT NOT NULL DEFAULT 0,
    ctr                 DOUBLE PRECISION NOT NULL DEFAULT 0,
    cpc                 DOUBLE PRECISION NOT NULL DEFAULT 0,
    fetched_at          TIMESTAMPTZ,
    PRIMARY KEY (creative_id, date)
);

CREATE TABLE IF NOT EXISTS audience_demographics (
    account_id   BIGINT REFERENCES ad_accounts(id),
    pivot_type   TEXT,
    segment      TEXT,
    segment_name TEXT,
    impressions  BIGINT NOT NULL DEFAULT 0,
    clicks       BIGINT NOT NULL DEFAULT 0,
    ctr          DOUBLE PRECISION NOT NULL DEFAULT 0,
    share_pct    DOUBLE PRECISION NOT NULL DEFAULT 0,
    date_start   DATE,
    date_end     DATE,
    fetched_at   TIMESTAMPTZ,
    PRIMARY KEY (account_id, pivot_type, segment, date_start)
);

CREATE TABLE IF NOT EXISTS sync_runs (
    id                BIGSERIAL PRIMARY KEY,
    account_id        BIGINT,
    started_at        TIMESTAMPTZ,
    finished_at       TIMESTAMPTZ,
    status            TEXT NOT NULL DEFAULT 'running',
    triggered_by      TEXT,
    campaigns_fetched INT NOT NULL DEFAULT 0,
    creatives_fetched INT NOT NULL DEFAULT 0,
    api_calls_made    INT NOT NULL DEFAULT 0,
    errors            TEXT
);
`

// ApplySchema cria as tabelas do pipeline caso ainda não existam
func (c *Connection) ApplySchema(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, schema)
	return err
}
