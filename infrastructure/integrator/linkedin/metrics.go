package linkedin

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/pkg/log"
)

// Métricas pedidas em toda chamada de analytics
var coreMetrics = []string{
	"impressions",
	"clicks",
	"costInLocalCurrency",
	"landingPageClicks",
	"externalWebsiteConversions",
	"likes",
	"comments",
	"shares",
	"follows",
	"oneClickLeads",
	"opens",
	"sends",
}

// DemographicPivots são as dimensões de audiência sincronizadas
var DemographicPivots = []string{
	"MEMBER_JOB_TITLE",
	"MEMBER_JOB_FUNCTION",
	"MEMBER_INDUSTRY",
	"MEMBER_SENIORITY",
	"MEMBER_COMPANY_SIZE",
	"MEMBER_COUNTRY_V2",
}

const demoFields = "impressions,clicks,costInLocalCurrency,pivotValues"

// Granularidades aceitas pelo endpoint de analytics
const (
	GranularityDaily = "DAILY"
	GranularityAll   = "ALL"
)

// FetchCampaignMetrics busca métricas de performance pivotadas por CAMPAIGN.
// As campanhas são divididas em lotes (limite de tamanho de URL) buscados
// concorrentemente sob o fan-out configurado.
func (s *Integrator) FetchCampaignMetrics(
	ctx context.Context,
	campaignIDs []int64,
	start, end time.Time,
	granularity string,
) ([]map[string]interface{}, error) {
	return s.fetchAnalyticsBatched(ctx, "CAMPAIGN", campaignIDs, start, end, granularity)
}

// FetchCreativeMetrics busca métricas de performance pivotadas por CREATIVE
func (s *Integrator) FetchCreativeMetrics(
	ctx context.Context,
	campaignIDs []int64,
	start, end time.Time,
	granularity string,
) ([]map[string]interface{}, error) {
	return s.fetchAnalyticsBatched(ctx, "CREATIVE", campaignIDs, start, end, granularity)
}

func (s *Integrator) fetchAnalyticsBatched(
	ctx context.Context,
	pivot string,
	campaignIDs []int64,
	start, end time.Time,
	granularity string,
) ([]map[string]interface{}, error) {
	if len(campaignIDs) == 0 {
		return []map[string]interface{}{}, nil
	}

	fieldsParam := strings.Join(append(append([]string{}, coreMetrics...), "dateRange", "pivotValues"), ",")
	batches := ChunkIDs(campaignIDs, s.cfg.Sync.MetricsBatchSize)

	type batchResult struct {
		rows []map[string]interface{}
		err  error
	}

	results := make([]batchResult, len(batches))

	// Semáforo limitando o fan-out: nem serial, nem ilimitado, para não
	// sobrecarregar o rate limiter da API.
	semaphore := make(chan struct{}, s.cfg.Sync.MetricsConcurrency)
	var wg sync.WaitGroup

	for i, batch := range batches {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, ids []int64) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			params := fmt.Sprintf(
				"q=analytics&pivot=%s&timeGranularity=%s&dateRange=%s&campaigns=List(%s)&fields=%s",
				pivot, granularity, dateRangeParam(start, end), campaignURNs(ids), fieldsParam,
			)

			data, err := s.Client.Get(ctx, "/adAnalytics", params)
			if err != nil {
				results[idx] = batchResult{err: err}
				return
			}

			results[idx] = batchResult{rows: rowsOf(data)}
		}(i, batch)
	}

	wg.Wait()

	allRows := make([]map[string]interface{}, 0)
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		allRows = append(allRows, r.rows...)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"pivot":   pivot,
		"batches": len(batches),
		"rows":    len(allRows),
	}).Debug("Métricas de analytics buscadas")

	return allRows, nil
}

// FetchDemographics busca a quebra demográfica da audiência (agregada, não
// diária) para cada pivot. Os pivots são independentes e buscados em
// paralelo; a falha de um degrada para resultado vazio apenas daquele pivot.
func (s *Integrator) FetchDemographics(
	ctx context.Context,
	campaignIDs []int64,
	start, end time.Time,
) (map[string][]map[string]interface{}, error) {
	demographics := make(map[string][]map[string]interface{}, len(DemographicPivots))
	if len(campaignIDs) == 0 {
		return demographics, nil
	}

	urns := campaignURNs(campaignIDs)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, pivot := range DemographicPivots {
		wg.Add(1)

		go func(pivot string) {
			defer wg.Done()

			params := fmt.Sprintf(
				"q=analytics&pivot=%s&timeGranularity=%s&dateRange=%s&campaigns=List(%s)&fields=%s",
				pivot, GranularityAll, dateRangeParam(start, end), urns, demoFields,
			)

			rows := []map[string]interface{}{}
			data, err := s.Client.Get(ctx, "/adAnalytics", params)
			if err != nil {
				logrus.WithError(err).WithField("pivot", pivot).Warn("Falha ao buscar pivot demográfico, seguindo com resultado vazio")
			} else {
				rows = rowsOf(data)
			}

			mu.Lock()
			demographics[pivot] = rows
			mu.Unlock()
		}(pivot)
	}

	wg.Wait()

	return demographics, nil
}

// ResolveSegmentNames tenta resolver URNs de segmento em nomes legíveis via
// o endpoint de targeting. Qualquer falha degrada para um mapa vazio: o
// assembler ainda tem as tabelas estáticas como fallback.
func (s *Integrator) ResolveSegmentNames(ctx context.Context, urns []string) map[string]string {
	names := make(map[string]string)
	if len(urns) == 0 {
		return names
	}

	encoded := make([]string, 0, len(urns))
	for _, u := range urns {
		encoded = append(encoded, strings.ReplaceAll(u, ":", "%3A"))
	}

	params := fmt.Sprintf("q=urns&urns=List(%s)", strings.Join(encoded, ","))

	data, err := s.Client.Get(ctx, "/adTargetingEntities", params)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao resolver nomes de segmento, usando tabelas estáticas")
		return names
	}

	for _, row := range rowsOf(data) {
		urn, _ := row["urn"].(string)
		name, _ := row["name"].(string)
		if urn != "" && name != "" {
			names[urn] = name
		}
	}

	return names
}

// ChunkIDs divide ids em lotes de no máximo size elementos
func ChunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = 20
	}

	batches := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}

// dateRangeParam monta o valor de dateRange na sintaxe do LinkedIn
func dateRangeParam(start, end time.Time) string {
	return fmt.Sprintf(
		"(start:(year:%d,month:%d,day:%d),end:(year:%d,month:%d,day:%d))",
		start.Year(), int(start.Month()), start.Day(),
		end.Year(), int(end.Month()), end.Day(),
	)
}

func rowsOf(data map[string]interface{}) []map[string]interface{} {
	raw, ok := data["elements"].([]interface{})
	if !ok {
		return []map[string]interface{}{}
	}

	rows := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]interface{}); ok {
			rows = append(rows, m)
		}
	}
	return rows
}
