package snapshotting

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/internal/domain"
)

// AccountInput agrupa tudo que foi buscado e validado para uma conta:
// entidades, linhas de métrica e demografia com os nomes já resolvidos
// no fetch.
type AccountInput struct {
	Account       map[string]interface{}
	Campaigns     []map[string]interface{}
	Creatives     []map[string]interface{}
	CampaignRows  []map[string]interface{}
	CreativeRows  []map[string]interface{}
	Demographics  map[string][]map[string]interface{}
	ResolvedNames map[string]string
}

// Assembler monta o documento de snapshot a partir dos dados validados
type Assembler interface {
	Assemble(inputs []AccountInput, start, end time.Time) *domain.Snapshot
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Assemble constrói o snapshot completo do período: hierarquia conta >
// campanha > criativo, resumos agregados, séries diárias e demografia
// ranqueada. Função pura, sem chamadas de rede ou persistência.
func (s *Service) Assemble(inputs []AccountInput, start, end time.Time) *domain.Snapshot {
	snap := &domain.Snapshot{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		DateRange: domain.DateRange{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
			Days:  int(end.Sub(start).Hours() / 24),
		},
		Accounts: make([]*domain.AccountSnapshot, 0, len(inputs)),
	}

	for i := range inputs {
		snap.Accounts = append(snap.Accounts, s.assembleAccount(&inputs[i]))
	}

	return snap
}

func (s *Service) assembleAccount(in *AccountInput) *domain.AccountSnapshot {
	campaignRowsByID := indexCampaignRows(in.CampaignRows)
	creativeRowsByURN := indexCreativeRows(in.CreativeRows)
	creativesByCampaignURN := indexCreativesByCampaign(in.Creatives)

	acct := &domain.AccountSnapshot{
		ID:                   rawInt64(in.Account, "id"),
		Name:                 rawString(in.Account, "name"),
		Status:               rawString(in.Account, "status"),
		Currency:             rawString(in.Account, "currency"),
		Type:                 rawString(in.Account, "type"),
		Test:                 rawBool(in.Account, "test"),
		Campaigns:            make([]*domain.CampaignSnapshot, 0, len(in.Campaigns)),
		AudienceDemographics: make(map[string][]*domain.DemographicSegment, len(in.Demographics)),
	}

	for _, camp := range in.Campaigns {
		acct.Campaigns = append(acct.Campaigns, s.assembleCampaign(camp, campaignRowsByID, creativeRowsByURN, creativesByCampaignURN))
	}

	for pivot, rows := range in.Demographics {
		key := strings.ToLower(strings.TrimPrefix(pivot, "MEMBER_"))
		acct.AudienceDemographics[key] = topDemographics(rows, in.ResolvedNames)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acct.ID,
		"campaigns":  len(acct.Campaigns),
		"pivots":     len(acct.AudienceDemographics),
	}).Debug("Conta montada no snapshot")

	return acct
}

func (s *Service) assembleCampaign(
	camp map[string]interface{},
	campaignRowsByID map[string][]map[string]interface{},
	creativeRowsByURN map[string][]map[string]interface{},
	creativesByCampaignURN map[string][]map[string]interface{},
) *domain.CampaignSnapshot {
	campID := rawInt64(camp, "id")
	campIDStr := strconv.FormatInt(campID, 10)
	campURN := "urn:li:sponsoredCampaign:" + campIDStr

	dailyBudget, dailyCurrency := nestedAmount(camp, "dailyBudget")
	totalBudget, _ := nestedAmount(camp, "totalBudget")
	unitCost, _ := nestedAmount(camp, "unitCost")

	cs := &domain.CampaignSnapshot{
		ID:     campID,
		Name:   rawString(camp, "name"),
		Status: rawString(camp, "status"),
		Type:   rawString(camp, "type"),
		Settings: domain.CampaignSettings{
			DailyBudget:              dailyBudget,
			DailyBudgetCurrency:      dailyCurrency,
			TotalBudget:              totalBudget,
			CostType:                 rawString(camp, "costType"),
			UnitCost:                 unitCost,
			BidStrategy:              rawString(camp, "optimizationTargetType"),
			CreativeSelection:        rawString(camp, "creativeSelection"),
			OffsiteDeliveryEnabled:   rawBool(camp, "offsiteDeliveryEnabled"),
			AudienceExpansionEnabled: rawBool(camp, "audienceExpansionEnabled"),
			CampaignGroup:            rawString(camp, "campaignGroup"),
		},
		MetricsSummary: &domain.MetricsSummary{},
		DailyMetrics:   []*domain.DailyMetric{},
		Creatives:      []*domain.CreativeSnapshot{},
	}

	if rows := campaignRowsByID[campIDStr]; len(rows) > 0 {
		cs.MetricsSummary = aggregateRows(rows)
		cs.DailyMetrics = dailyTimeSeries(rows)
	}

	for _, cr := range creativesByCampaignURN[campURN] {
		crID := rawString(cr, "id")
		crSnap := &domain.CreativeSnapshot{
			ID:                 crID,
			CampaignID:         campID,
			IntendedStatus:     rawString(cr, "intendedStatus"),
			IsServing:          rawBool(cr, "isServing"),
			ServingHoldReasons: rawStringSlice(cr, "servingHoldReasons"),
			ContentReference:   rawString(rawMap(cr, "content"), "reference"),
			CreatedAt:          rawInt64(cr, "createdAt"),
			LastModifiedAt:     rawInt64(cr, "lastModifiedAt"),
			MetricsSummary:     &domain.MetricsSummary{},
			DailyMetrics:       []*domain.DailyMetric{},
		}

		if rows := creativeRowsByURN[crID]; len(rows) > 0 {
			crSnap.MetricsSummary = aggregateRows(rows)
			crSnap.DailyMetrics = dailyTimeSeries(rows)
		}

		cs.Creatives = append(cs.Creatives, crSnap)
	}

	return cs
}

// indexCampaignRows agrupa as linhas de analytics pelo id numérico no
// final da URN de campanha
func indexCampaignRows(rows []map[string]interface{}) map[string][]map[string]interface{} {
	byID := make(map[string][]map[string]interface{})
	for _, row := range rows {
		for _, pv := range pivotValues(row) {
			id := ExtractIDFromURN(pv)
			byID[id] = append(byID[id], row)
		}
	}
	return byID
}

// indexCreativeRows agrupa as linhas pela URN de criativo completa, que
// é o id da entidade; pivots de outro tipo são ignorados
func indexCreativeRows(rows []map[string]interface{}) map[string][]map[string]interface{} {
	byURN := make(map[string][]map[string]interface{})
	for _, row := range rows {
		for _, pv := range pivotValues(row) {
			if !strings.Contains(pv, "sponsoredCreative") {
				continue
			}
			byURN[pv] = append(byURN[pv], row)
		}
	}
	return byURN
}

func indexCreativesByCampaign(creatives []map[string]interface{}) map[string][]map[string]interface{} {
	byURN := make(map[string][]map[string]interface{})
	for _, cr := range creatives {
		campURN := rawString(cr, "campaign")
		byURN[campURN] = append(byURN[campURN], cr)
	}
	return byURN
}
