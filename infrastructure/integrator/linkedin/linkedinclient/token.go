package linkedinclient

import (
	lidomain "github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
)

// TokenProvider é o colaborador externo responsável pelo ciclo de vida do
// token OAuth. O client pede uma credencial fresca a cada requisição, pois
// o provider pode rotacioná-la de forma transparente.
type TokenProvider interface {
	GetValidAccessToken() (string, error)
}

// ConfigTokenProvider lê o token estático da configuração. Serve para uso
// local e testes; em produção o provider real renova o token sozinho.
type ConfigTokenProvider struct {
	cfg *config.Config
}

func NewConfigTokenProvider(cfg *config.Config) *ConfigTokenProvider {
	return &ConfigTokenProvider{cfg: cfg}
}

func (p *ConfigTokenProvider) GetValidAccessToken() (string, error) {
	if p.cfg.LinkedIn.AccessToken == "" {
		return "", &lidomain.AuthError{Reason: "LINKEDIN_ACCESS_TOKEN não configurado"}
	}
	return p.cfg.LinkedIn.AccessToken, nil
}
