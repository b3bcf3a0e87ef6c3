package domain

// CampaignAudit lista os pontos de atenção de configuração de uma
// campanha ativa (LAN habilitada, expansão de audiência, custo CPM)
type CampaignAudit struct {
	Name   string   `json:"name"`
	Issues []string `json:"issues"`
}
