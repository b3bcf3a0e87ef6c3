package lidomain

import (
	"errors"
	"fmt"
)

// AuthError indica credencial ausente ou inválida. Fatal para a execução,
// nunca re-tentado por este componente.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("falha de autenticação na API do LinkedIn: %s", e.Reason)
}

// RateLimitError representa uma resposta HTTP 429. RetryAfter carrega o
// valor do header Retry-After em segundos, quando presente; a decisão de
// re-tentar é do chamador.
type RateLimitError struct {
	Endpoint   string
	RetryAfter *int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("limite de requisições excedido em %s (retry-after: %ds)", e.Endpoint, *e.RetryAfter)
	}
	return fmt.Sprintf("limite de requisições excedido em %s", e.Endpoint)
}

// APIError representa qualquer outra resposta não-2xx da API
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("requisição à API falhou: HTTP %d em %s", e.StatusCode, e.Endpoint)
}

// IsRateLimit verifica se err (ou sua cadeia) é um erro de rate limit
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// IsAuthError verifica se err (ou sua cadeia) é uma falha de autenticação
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
