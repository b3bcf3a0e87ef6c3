package domain

// Snapshot é o documento autossuficiente produzido por uma execução do
// assembler: entidades, métricas agregadas e demografia resolvida. Sua
// forma é o contrato para ferramentas de análise; mudanças devem ser
// apenas aditivas.
type Snapshot struct {
	GeneratedAt string             `json:"generated_at"`
	DateRange   DateRange          `json:"date_range"`
	Accounts    []*AccountSnapshot `json:"accounts"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type AccountSnapshot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Currency string `json:"currency,omitempty"`
	Type     string `json:"type,omitempty"`
	Test     bool   `json:"test"`

	Campaigns            []*CampaignSnapshot              `json:"campaigns"`
	AudienceDemographics map[string][]*DemographicSegment `json:"audience_demographics"`
}

type CampaignSnapshot struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Type   string `json:"type,omitempty"`

	Settings CampaignSettings `json:"settings"`

	MetricsSummary *MetricsSummary     `json:"metrics_summary"`
	DailyMetrics   []*DailyMetric      `json:"daily_metrics"`
	Creatives      []*CreativeSnapshot `json:"creatives"`
}

// CampaignSettings mantém os valores de orçamento como strings seguras para
// decimais, exatamente como a API retorna; a conversão para float acontece
// só na fronteira de persistência.
type CampaignSettings struct {
	DailyBudget              string `json:"daily_budget,omitempty"`
	DailyBudgetCurrency      string `json:"daily_budget_currency,omitempty"`
	TotalBudget              string `json:"total_budget,omitempty"`
	CostType                 string `json:"cost_type,omitempty"`
	UnitCost                 string `json:"unit_cost,omitempty"`
	BidStrategy              string `json:"bid_strategy,omitempty"`
	CreativeSelection        string `json:"creative_selection,omitempty"`
	OffsiteDeliveryEnabled   bool   `json:"offsite_delivery_enabled"`
	AudienceExpansionEnabled bool   `json:"audience_expansion_enabled"`
	CampaignGroup            string `json:"campaign_group,omitempty"`
}

type CreativeSnapshot struct {
	ID                 string   `json:"id"`
	CampaignID         int64    `json:"campaign_id"`
	IntendedStatus     string   `json:"intended_status,omitempty"`
	IsServing          bool     `json:"is_serving"`
	ServingHoldReasons []string `json:"serving_hold_reasons,omitempty"`
	ContentReference   string   `json:"content_reference,omitempty"`
	CreatedAt          int64    `json:"created_at,omitempty"`
	LastModifiedAt     int64    `json:"last_modified_at,omitempty"`

	MetricsSummary *MetricsSummary `json:"metrics_summary"`
	DailyMetrics   []*DailyMetric  `json:"daily_metrics"`
}

// MetricsSummary agrega os contadores brutos de um conjunto de linhas de
// métrica. Os campos derivados são sempre recalculados a partir das somas,
// nunca atualizados incrementalmente.
type MetricsSummary struct {
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	Spend             float64 `json:"spend"`
	LandingPageClicks int64   `json:"landing_page_clicks"`
	Conversions       int64   `json:"conversions"`
	Likes             int64   `json:"likes"`
	Comments          int64   `json:"comments"`
	Shares            int64   `json:"shares"`
	Follows           int64   `json:"follows"`
	Leads             int64   `json:"leads"`
	Opens             int64   `json:"opens"`
	Sends             int64   `json:"sends"`

	CTR float64 `json:"ctr"`
	CPC float64 `json:"cpc"`
	CPM float64 `json:"cpm"`
	CPL float64 `json:"cpl"`
}

type DailyMetric struct {
	Date              string  `json:"date"`
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	Spend             float64 `json:"spend"`
	LandingPageClicks int64   `json:"landing_page_clicks"`
	Conversions       int64   `json:"conversions"`
	Likes             int64   `json:"likes"`
	Comments          int64   `json:"comments"`
	Shares            int64   `json:"shares"`
	Follows           int64   `json:"follows"`
	Leads             int64   `json:"leads"`
	Opens             int64   `json:"opens"`
	Sends             int64   `json:"sends"`

	CTR float64 `json:"ctr"`
	CPC float64 `json:"cpc"`
}

// DemographicSegment é uma linha demográfica ranqueada. Segment guarda a
// URN bruta e Name o nome resolvido; o leitor do snapshot nunca precisa
// dos identificadores originais.
type DemographicSegment struct {
	Segment            string  `json:"segment"`
	Name               string  `json:"name"`
	Impressions        int64   `json:"impressions"`
	Clicks             int64   `json:"clicks"`
	CTR                float64 `json:"ctr"`
	ShareOfImpressions float64 `json:"share_of_impressions"`
}
