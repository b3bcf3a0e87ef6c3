package snapshotting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
	"github.com/vfg2006/linkedin-ads-sync/pkg/utils"
)

// Agregação de linhas de analytics em resumos e séries diárias. As somas
// são sempre recomputadas do zero a partir das linhas brutas; os campos
// derivados (CTR, CPC, CPM, CPL) nunca são atualizados incrementalmente.

type counters struct {
	impressions       int64
	clicks            int64
	spend             float64
	landingPageClicks int64
	conversions       int64
	likes             int64
	comments          int64
	shares            int64
	follows           int64
	leads             int64
	opens             int64
	sends             int64
}

func (c *counters) add(row map[string]interface{}) {
	c.impressions += rawInt64(row, "impressions")
	c.clicks += rawInt64(row, "clicks")
	c.spend += linkedin.CoerceCost(row["costInLocalCurrency"])
	c.landingPageClicks += rawInt64(row, "landingPageClicks")
	c.conversions += rawInt64(row, "externalWebsiteConversions")
	c.likes += rawInt64(row, "likes")
	c.comments += rawInt64(row, "comments")
	c.shares += rawInt64(row, "shares")
	c.follows += rawInt64(row, "follows")
	c.leads += rawInt64(row, "oneClickLeads")
	c.opens += rawInt64(row, "opens")
	c.sends += rawInt64(row, "sends")
}

// aggregateRows soma todas as linhas e deriva as métricas de custo. Com
// denominadores zerados as derivadas ficam em zero, nunca em NaN ou Inf.
func aggregateRows(rows []map[string]interface{}) *domain.MetricsSummary {
	var c counters
	for _, row := range rows {
		c.add(row)
	}

	impressions := float64(c.impressions)
	clicks := float64(c.clicks)
	conversions := float64(c.conversions)

	return &domain.MetricsSummary{
		Impressions:       c.impressions,
		Clicks:            c.clicks,
		Spend:             utils.RoundWithTwoDecimalPlace(c.spend),
		LandingPageClicks: c.landingPageClicks,
		Conversions:       c.conversions,
		Likes:             c.likes,
		Comments:          c.comments,
		Shares:            c.shares,
		Follows:           c.follows,
		Leads:             c.leads,
		Opens:             c.opens,
		Sends:             c.sends,
		CTR:               utils.RoundWithFourDecimalPlace(utils.SafeDivide(clicks, impressions) * 100),
		CPC:               utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.spend, clicks)),
		CPM:               utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.spend, impressions) * 1000),
		CPL:               utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.spend, conversions)),
	}
}

// rowDate extrai a data de início do dateRange da linha em YYYY-MM-DD;
// retorna vazio quando a linha não tem dateRange utilizável
func rowDate(row map[string]interface{}) string {
	dr := rawMap(row, "dateRange")
	if dr == nil {
		return ""
	}
	start := rawMap(dr, "start")
	if start == nil {
		return ""
	}

	year := rawInt64(start, "year")
	month := rawInt64(start, "month")
	day := rawInt64(start, "day")
	if year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// dailyTimeSeries agrupa as linhas por data de início e devolve a série
// ordenada cronologicamente. Linhas sem data são descartadas.
func dailyTimeSeries(rows []map[string]interface{}) []*domain.DailyMetric {
	byDate := make(map[string]*counters)
	for _, row := range rows {
		date := rowDate(row)
		if date == "" {
			continue
		}
		c, ok := byDate[date]
		if !ok {
			c = &counters{}
			byDate[date] = c
		}
		c.add(row)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]*domain.DailyMetric, 0, len(dates))
	for _, date := range dates {
		c := byDate[date]
		series = append(series, &domain.DailyMetric{
			Date:              date,
			Impressions:       c.impressions,
			Clicks:            c.clicks,
			Spend:             utils.RoundWithTwoDecimalPlace(c.spend),
			LandingPageClicks: c.landingPageClicks,
			Conversions:       c.conversions,
			Likes:             c.likes,
			Comments:          c.comments,
			Shares:            c.shares,
			Follows:           c.follows,
			Leads:             c.leads,
			Opens:             c.opens,
			Sends:             c.sends,
			CTR:               utils.RoundWithFourDecimalPlace(utils.SafeDivide(float64(c.clicks), float64(c.impressions)) * 100),
			CPC:               utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.spend, float64(c.clicks))),
		})
	}
	return series
}

const topSegmentsPerPivot = 10

// topDemographics agrega as linhas de um pivot por URN de segmento e
// devolve os 10 segmentos com mais impressões. A participação de cada
// segmento é calculada sobre o total de impressões do pivot inteiro,
// antes do corte do ranking.
func topDemographics(rows []map[string]interface{}, resolvedNames map[string]string) []*domain.DemographicSegment {
	type segTotals struct {
		impressions int64
		clicks      int64
	}

	bySegment := make(map[string]*segTotals)
	var totalImpressions int64

	for _, row := range rows {
		values := pivotValues(row)
		if len(values) == 0 {
			continue
		}
		urn := values[0]

		t, ok := bySegment[urn]
		if !ok {
			t = &segTotals{}
			bySegment[urn] = t
		}
		t.impressions += rawInt64(row, "impressions")
		t.clicks += rawInt64(row, "clicks")
		totalImpressions += rawInt64(row, "impressions")
	}

	segments := make([]*domain.DemographicSegment, 0, len(bySegment))
	for urn, t := range bySegment {
		segments = append(segments, &domain.DemographicSegment{
			Segment:     urn,
			Name:        ResolveSegmentName(urn, resolvedNames),
			Impressions: t.impressions,
			Clicks:      t.clicks,
			CTR:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.clicks), float64(t.impressions)) * 100),
		})
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Impressions != segments[j].Impressions {
			return segments[i].Impressions > segments[j].Impressions
		}
		return segments[i].Segment < segments[j].Segment
	})

	if len(segments) > topSegmentsPerPivot {
		segments = segments[:topSegmentsPerPivot]
	}

	for _, seg := range segments {
		share := utils.SafeDivide(float64(seg.Impressions), float64(totalImpressions)) * 100
		seg.ShareOfImpressions = utils.RoundWithOneDecimalPlace(share)
	}
	return segments
}
