package linkedin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
)

// Statuses de campanha buscados por padrão; ARCHIVED e CANCELED ficam de
// fora para manter o conjunto relevante.
var DefaultCampaignStatuses = []string{"ACTIVE", "PAUSED", "DRAFT"}

// AccountIDKey é a tag interna adicionada a cada campanha durante o fetch
// para vinculá-la à conta (não vem da API).
const AccountIDKey = "_account_id"

// Integrator traduz consultas de domínio em chamadas paginadas ao client.
// Nenhuma transformação ou persistência acontece aqui.
type Integrator struct {
	cfg    *config.Config
	Client linkedinclient.Client
}

func New(cfg *config.Config, client linkedinclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAccounts retorna todas as contas de anúncio acessíveis pelo membro
// autenticado. Endpoint: GET /adAccounts?q=search
func (s *Integrator) FetchAccounts(ctx context.Context) ([]map[string]interface{}, error) {
	accounts, err := s.Client.GetAllPages(ctx, "/adAccounts", "q=search", "elements", s.cfg.LinkedIn.PageSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas de anúncio")
		return nil, err
	}

	return accounts, nil
}

// FetchCampaigns retorna as campanhas de uma conta, filtradas por status.
// Endpoint: GET /adAccounts/{id}/adCampaigns?q=search
// Cada campanha retornada é marcada com a tag _account_id.
func (s *Integrator) FetchCampaigns(ctx context.Context, accountID int64, statuses []string) ([]map[string]interface{}, error) {
	if len(statuses) == 0 {
		statuses = DefaultCampaignStatuses
	}

	// Sintaxe Restli: search=(status:(values:List(A,B,C)))
	params := fmt.Sprintf("q=search&search=(status:(values:List(%s)))", strings.Join(statuses, ","))
	path := fmt.Sprintf("/adAccounts/%d/adCampaigns", accountID)

	campaigns, err := s.Client.GetAllPages(ctx, path, params, "elements", s.cfg.LinkedIn.PageSize)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar campanhas da conta")
		return nil, err
	}

	for _, c := range campaigns {
		c[AccountIDKey] = accountID
	}

	return campaigns, nil
}

// FetchCreatives retorna os criativos de uma conta, opcionalmente filtrados
// por campanhas. Endpoint: GET /adAccounts/{id}/creatives?q=criteria
func (s *Integrator) FetchCreatives(ctx context.Context, accountID int64, campaignIDs []int64) ([]map[string]interface{}, error) {
	params := "q=criteria&sortOrder=ASCENDING"
	if len(campaignIDs) > 0 {
		params += fmt.Sprintf("&campaigns=List(%s)", campaignURNs(campaignIDs))
	}

	path := fmt.Sprintf("/adAccounts/%d/creatives", accountID)

	creatives, err := s.Client.GetAllPages(ctx, path, params, "elements", s.cfg.LinkedIn.PageSize)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar criativos da conta")
		return nil, err
	}

	return creatives, nil
}

// CallCount expõe o total acumulado de chamadas HTTP do client,
// usado na contabilidade de auditoria das sincronizações
func (s *Integrator) CallCount() int64 {
	return s.Client.CallCount()
}

// campaignURNs monta a lista de URNs de campanha já codificadas para URL
func campaignURNs(campaignIDs []int64) string {
	urns := make([]string, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		urns = append(urns, fmt.Sprintf("urn%%3Ali%%3AsponsoredCampaign%%3A%d", id))
	}
	return strings.Join(urns, ",")
}
