package snapshotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func metricRow(date string, impressions, clicks int64, spend interface{}) map[string]interface{} {
	row := map[string]interface{}{
		"impressions":         float64(impressions),
		"clicks":              float64(clicks),
		"costInLocalCurrency": spend,
	}
	if date != "" {
		row["dateRange"] = map[string]interface{}{
			"start": map[string]interface{}{
				"year":  float64(2026),
				"month": float64(1),
				"day":   float64(parseDay(date)),
			},
		}
	}
	return row
}

func parseDay(date string) int {
	// datas dos testes são sempre 2026-01-DD
	return int(date[8]-'0')*10 + int(date[9]-'0')
}

func TestAggregateRows(t *testing.T) {
	rows := []map[string]interface{}{
		metricRow("2026-01-01", 1000, 50, "25.00"),
		metricRow("2026-01-02", 2000, 100, float64(50)),
	}
	rows[0]["externalWebsiteConversions"] = float64(3)
	rows[1]["externalWebsiteConversions"] = float64(2)
	rows[0]["likes"] = float64(4)
	rows[1]["oneClickLeads"] = float64(6)

	summary := aggregateRows(rows)

	assert.Equal(t, int64(3000), summary.Impressions)
	assert.Equal(t, int64(150), summary.Clicks)
	assert.Equal(t, 75.0, summary.Spend)
	assert.Equal(t, int64(5), summary.Conversions)
	assert.Equal(t, int64(4), summary.Likes)
	assert.Equal(t, int64(6), summary.Leads)
	assert.Equal(t, 5.0, summary.CTR)
	assert.Equal(t, 0.5, summary.CPC)
	assert.Equal(t, 25.0, summary.CPM)
	assert.Equal(t, 15.0, summary.CPL)
}

func TestAggregateRows_SemLinhasNaoGeraNaN(t *testing.T) {
	summary := aggregateRows(nil)

	assert.Equal(t, int64(0), summary.Impressions)
	assert.Equal(t, int64(0), summary.Clicks)
	assert.Equal(t, 0.0, summary.Spend)
	assert.Equal(t, 0.0, summary.CTR)
	assert.Equal(t, 0.0, summary.CPC)
	assert.Equal(t, 0.0, summary.CPM)
	assert.Equal(t, 0.0, summary.CPL)
}

func TestAggregateRows_ArredondamentoDasDerivadas(t *testing.T) {
	rows := []map[string]interface{}{
		metricRow("2026-01-01", 3, 1, "1.00"),
	}

	summary := aggregateRows(rows)

	// 1/3*100 = 33.3333...
	assert.Equal(t, 33.3333, summary.CTR)
	assert.Equal(t, 1.0, summary.CPC)
	// 1/3*1000 = 333.333...
	assert.Equal(t, 333.33, summary.CPM)
}

func TestDailyTimeSeries_OrdenaPorData(t *testing.T) {
	rows := []map[string]interface{}{
		metricRow("2026-01-15", 200, 20, "10.00"),
		metricRow("2026-01-03", 100, 10, "5.00"),
		metricRow("2026-01-15", 50, 5, "2.50"),
	}

	series := dailyTimeSeries(rows)

	assert.Len(t, series, 2)
	assert.Equal(t, "2026-01-03", series[0].Date)
	assert.Equal(t, "2026-01-15", series[1].Date)
	assert.Equal(t, int64(100), series[0].Impressions)
	assert.Equal(t, int64(250), series[1].Impressions)
	assert.Equal(t, int64(25), series[1].Clicks)
	assert.Equal(t, 12.5, series[1].Spend)
}

func TestDailyTimeSeries_DescartaLinhaSemData(t *testing.T) {
	rows := []map[string]interface{}{
		metricRow("", 100, 10, "5.00"),
		metricRow("2026-01-03", 200, 20, "10.00"),
	}

	series := dailyTimeSeries(rows)

	assert.Len(t, series, 1)
	assert.Equal(t, "2026-01-03", series[0].Date)
}

func TestRowDate(t *testing.T) {
	row := map[string]interface{}{
		"dateRange": map[string]interface{}{
			"start": map[string]interface{}{
				"year":  float64(2026),
				"month": float64(3),
				"day":   float64(7),
			},
		},
	}

	assert.Equal(t, "2026-03-07", rowDate(row))
	assert.Equal(t, "", rowDate(map[string]interface{}{}))
}

func demographicRow(urn string, impressions, clicks int64) map[string]interface{} {
	return map[string]interface{}{
		"pivotValues": []interface{}{urn},
		"impressions": float64(impressions),
		"clicks":      float64(clicks),
	}
}

func TestTopDemographics(t *testing.T) {
	rows := []map[string]interface{}{
		demographicRow("urn:li:seniority:4", 600, 30),
		demographicRow("urn:li:seniority:4", 400, 10),
		demographicRow("urn:li:seniority:5", 300, 15),
		demographicRow("urn:li:seniority:6", 700, 7),
	}

	segments := topDemographics(rows, nil)

	assert.Len(t, segments, 3)
	// ordenado por impressões desc
	assert.Equal(t, "urn:li:seniority:4", segments[0].Segment)
	assert.Equal(t, int64(1000), segments[0].Impressions)
	assert.Equal(t, int64(40), segments[0].Clicks)
	assert.Equal(t, "Senior", segments[0].Name)
	assert.Equal(t, 4.0, segments[0].CTR)
	// participação sobre o total do pivot (2000 impressões)
	assert.Equal(t, 50.0, segments[0].ShareOfImpressions)
	assert.Equal(t, "urn:li:seniority:6", segments[1].Segment)
	assert.Equal(t, 35.0, segments[1].ShareOfImpressions)
	assert.Equal(t, 15.0, segments[2].ShareOfImpressions)
}

func TestTopDemographics_CortaNoTop10ComShareDoTotal(t *testing.T) {
	rows := make([]map[string]interface{}, 0, 12)
	var total int64
	for i := 0; i < 12; i++ {
		imp := int64((12 - i) * 100)
		total += imp
		rows = append(rows, demographicRow(
			"urn:li:organization:"+string(rune('a'+i)), imp, 1))
	}

	segments := topDemographics(rows, nil)

	assert.Len(t, segments, 10)
	// o share do líder usa o total incluindo os segmentos cortados
	expected := float64(1200) / float64(total) * 100
	assert.InDelta(t, expected, segments[0].ShareOfImpressions, 0.05)
}

func TestTopDemographics_EmpateDesempataPorSegmento(t *testing.T) {
	rows := []map[string]interface{}{
		demographicRow("urn:li:geo:200", 100, 1),
		demographicRow("urn:li:geo:100", 100, 1),
	}

	segments := topDemographics(rows, nil)

	assert.Equal(t, "urn:li:geo:100", segments[0].Segment)
	assert.Equal(t, "urn:li:geo:200", segments[1].Segment)
}
