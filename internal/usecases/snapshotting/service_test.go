package snapshotting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaignRow(date string, campaignURN string, impressions, clicks int64, spend string) map[string]interface{} {
	row := metricRow(date, impressions, clicks, spend)
	row["pivotValues"] = []interface{}{campaignURN}
	return row
}

func creativeRow(date string, creativeURN string, impressions, clicks int64, spend string) map[string]interface{} {
	row := metricRow(date, impressions, clicks, spend)
	row["pivotValues"] = []interface{}{creativeURN}
	return row
}

func TestAssemble(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	input := AccountInput{
		Account: map[string]interface{}{
			"id":       float64(512345678),
			"name":     "Conta Principal",
			"status":   "ACTIVE",
			"currency": "USD",
			"type":     "BUSINESS",
			"test":     false,
		},
		Campaigns: []map[string]interface{}{
			{
				"id":     float64(987654),
				"name":   "Campanha de Leads",
				"status": "ACTIVE",
				"type":   "SPONSORED_UPDATES",
				"dailyBudget": map[string]interface{}{
					"amount":       "50.00",
					"currencyCode": "USD",
				},
				"costType":                 "CPM",
				"optimizationTargetType":   "MAX_LEAD",
				"offsiteDeliveryEnabled":   true,
				"audienceExpansionEnabled": false,
			},
		},
		Creatives: []map[string]interface{}{
			{
				"id":             "urn:li:sponsoredCreative:111",
				"campaign":       "urn:li:sponsoredCampaign:987654",
				"intendedStatus": "ACTIVE",
				"isServing":      true,
				"content": map[string]interface{}{
					"reference": "urn:li:share:222",
				},
			},
		},
		CampaignRows: []map[string]interface{}{
			campaignRow("2026-01-02", "urn:li:sponsoredCampaign:987654", 2000, 100, "50.00"),
			campaignRow("2026-01-01", "urn:li:sponsoredCampaign:987654", 1000, 50, "25.00"),
		},
		CreativeRows: []map[string]interface{}{
			creativeRow("2026-01-01", "urn:li:sponsoredCreative:111", 800, 40, "20.00"),
		},
		Demographics: map[string][]map[string]interface{}{
			"MEMBER_SENIORITY": {
				demographicRow("urn:li:seniority:4", 900, 45),
				demographicRow("urn:li:seniority:3", 100, 5),
			},
		},
		ResolvedNames: map[string]string{},
	}

	snap := NewService().Assemble([]AccountInput{input}, start, end)

	assert.Equal(t, "2026-01-01", snap.DateRange.Start)
	assert.Equal(t, "2026-01-31", snap.DateRange.End)
	assert.Equal(t, 30, snap.DateRange.Days)
	assert.NotEmpty(t, snap.GeneratedAt)
	require.Len(t, snap.Accounts, 1)

	acct := snap.Accounts[0]
	assert.Equal(t, int64(512345678), acct.ID)
	assert.Equal(t, "Conta Principal", acct.Name)
	assert.Equal(t, "USD", acct.Currency)
	require.Len(t, acct.Campaigns, 1)

	camp := acct.Campaigns[0]
	assert.Equal(t, int64(987654), camp.ID)
	assert.Equal(t, "Campanha de Leads", camp.Name)
	assert.Equal(t, "50.00", camp.Settings.DailyBudget)
	assert.Equal(t, "USD", camp.Settings.DailyBudgetCurrency)
	assert.Equal(t, "CPM", camp.Settings.CostType)
	assert.Equal(t, "MAX_LEAD", camp.Settings.BidStrategy)
	assert.True(t, camp.Settings.OffsiteDeliveryEnabled)
	assert.False(t, camp.Settings.AudienceExpansionEnabled)

	// resumo do período: 3000 impressões, 150 cliques, 75 de gasto
	assert.Equal(t, int64(3000), camp.MetricsSummary.Impressions)
	assert.Equal(t, int64(150), camp.MetricsSummary.Clicks)
	assert.Equal(t, 75.0, camp.MetricsSummary.Spend)
	assert.Equal(t, 5.0, camp.MetricsSummary.CTR)
	assert.Equal(t, 0.5, camp.MetricsSummary.CPC)

	// série diária ordenada mesmo com linhas fora de ordem
	require.Len(t, camp.DailyMetrics, 2)
	assert.Equal(t, "2026-01-01", camp.DailyMetrics[0].Date)
	assert.Equal(t, int64(1000), camp.DailyMetrics[0].Impressions)
	assert.Equal(t, "2026-01-02", camp.DailyMetrics[1].Date)
	assert.Equal(t, int64(2000), camp.DailyMetrics[1].Impressions)

	require.Len(t, camp.Creatives, 1)
	cr := camp.Creatives[0]
	assert.Equal(t, "urn:li:sponsoredCreative:111", cr.ID)
	assert.Equal(t, int64(987654), cr.CampaignID)
	assert.Equal(t, "urn:li:share:222", cr.ContentReference)
	assert.Equal(t, int64(800), cr.MetricsSummary.Impressions)
	require.Len(t, cr.DailyMetrics, 1)

	// pivot normalizado para minúsculas sem o prefixo MEMBER_
	require.Contains(t, acct.AudienceDemographics, "seniority")
	segs := acct.AudienceDemographics["seniority"]
	require.Len(t, segs, 2)
	assert.Equal(t, "Senior", segs[0].Name)
	assert.Equal(t, 90.0, segs[0].ShareOfImpressions)
}

func TestAssemble_CampanhaSemMetricasFicaZerada(t *testing.T) {
	input := AccountInput{
		Account: map[string]interface{}{
			"id":   float64(1),
			"name": "Conta",
		},
		Campaigns: []map[string]interface{}{
			{"id": float64(10), "name": "Sem tráfego", "status": "PAUSED"},
		},
	}

	snap := NewService().Assemble([]AccountInput{input},
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))

	require.Len(t, snap.Accounts, 1)
	require.Len(t, snap.Accounts[0].Campaigns, 1)
	camp := snap.Accounts[0].Campaigns[0]
	assert.Equal(t, int64(0), camp.MetricsSummary.Impressions)
	assert.Equal(t, 0.0, camp.MetricsSummary.CTR)
	assert.Empty(t, camp.DailyMetrics)
	assert.Empty(t, camp.Creatives)
}

func TestAssemble_SemContas(t *testing.T) {
	snap := NewService().Assemble(nil,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.Empty(t, snap.Accounts)
	assert.Equal(t, 1, snap.DateRange.Days)
}
