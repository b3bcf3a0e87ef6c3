package linkedinclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	lidomain "github.com/vfg2006/linkedin-ads-sync/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-sync/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const restliProtocolVersion = "2.0.0"

// Tamanho máximo do corpo de erro mantido para diagnóstico
const maxErrorBodyBytes = 500

type Client interface {
	// Get faz GET {base}{path}?{rawQuery} e decodifica o JSON da resposta.
	// rawQuery já vem formatada na sintaxe Restli do LinkedIn (List(),
	// URNs codificadas) e é repassada sem alteração.
	Get(ctx context.Context, path string, rawQuery string) (map[string]interface{}, error)

	// GetAllPages percorre todas as páginas de um endpoint, detectando o
	// estilo de paginação (offset start/count ou cursor pageToken) pela
	// forma da resposta.
	GetAllPages(ctx context.Context, path string, rawQuery string, itemsKey string, pageSize int) ([]map[string]interface{}, error)

	// Introspect valida a credencial atual contra o endpoint de introspecção
	Introspect(ctx context.Context) error

	// CallCount retorna o total de chamadas HTTP feitas por este client
	CallCount() int64
}

type LinkedInClient struct {
	cfg        *config.Config
	tokens     TokenProvider
	httpClient *http.Client
	calls      atomic.Int64
}

func New(cfg *config.Config, tokens TokenProvider) *LinkedInClient {
	return &LinkedInClient{
		cfg:    cfg,
		tokens: tokens,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.LinkedIn.TimeoutSeconds) * time.Second,
		},
	}
}

// headers monta os cabeçalhos de toda requisição. O token é obtido fresco
// a cada chamada: o provider pode tê-lo rotacionado entre requisições.
func (c *LinkedInClient) headers() (http.Header, error) {
	token, err := c.tokens.GetValidAccessToken()
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	h.Set("LinkedIn-Version", c.cfg.LinkedIn.Version)
	h.Set("X-Restli-Protocol-Version", restliProtocolVersion)
	return h, nil
}

func (c *LinkedInClient) Get(ctx context.Context, path string, rawQuery string) (map[string]interface{}, error) {
	url := c.cfg.LinkedIn.BaseURL + path
	if rawQuery != "" {
		url = url + "?" + rawQuery
	}

	headers, err := c.headers()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header = headers

	c.calls.Add(1)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao fazer a requisição para %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitError(path, resp.Header.Get("Retry-After"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"endpoint": path,
		}).Error("Resposta não-2xx da API do LinkedIn")

		return nil, &lidomain.APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       truncate(string(body), maxErrorBodyBytes),
		}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar JSON de %s", path)
	}

	return decoded, nil
}

func (c *LinkedInClient) GetAllPages(
	ctx context.Context,
	path string,
	rawQuery string,
	itemsKey string,
	pageSize int,
) ([]map[string]interface{}, error) {
	allItems := make([]map[string]interface{}, 0)
	pageToken := ""
	start := 0

	for {
		sep := ""
		if rawQuery != "" {
			sep = "&"
		}

		var paged string
		if pageToken != "" {
			paged = fmt.Sprintf("%s%spageToken=%s&count=%d", rawQuery, sep, pageToken, pageSize)
		} else {
			paged = fmt.Sprintf("%s%sstart=%d&count=%d", rawQuery, sep, start, pageSize)
		}

		data, err := c.Get(ctx, path, paged)
		if err != nil {
			return nil, err
		}

		items := elementsOf(data, itemsKey)
		allItems = append(allItems, items...)

		// Decide a próxima página pela forma da resposta: um nextPageToken
		// muda para paginação por cursor; uma página cheia avança o offset;
		// uma página curta sem token encerra.
		nextToken := nextPageToken(data)
		switch {
		case nextToken != "":
			pageToken = nextToken
		case len(items) == pageSize:
			start += pageSize
		default:
			return allItems, nil
		}
	}
}

func (c *LinkedInClient) Introspect(ctx context.Context) error {
	token, err := c.tokens.GetValidAccessToken()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.LinkedIn.IntrospectURL, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de introspecção")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.calls.Add(1)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao chamar o endpoint de introspecção")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &lidomain.AuthError{Reason: fmt.Sprintf("introspecção retornou HTTP %d", resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &lidomain.APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   c.cfg.LinkedIn.IntrospectURL,
		}
	}

	return nil
}

func (c *LinkedInClient) CallCount() int64 {
	return c.calls.Load()
}

// elementsOf extrai a lista de itens da resposta sob itemsKey
func elementsOf(data map[string]interface{}, itemsKey string) []map[string]interface{} {
	raw, ok := data[itemsKey].([]interface{})
	if !ok {
		return nil
	}

	items := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items
}

func nextPageToken(data map[string]interface{}) string {
	metadata, ok := data["metadata"].(map[string]interface{})
	if !ok {
		return ""
	}

	token, _ := metadata["nextPageToken"].(string)
	return token
}

func rateLimitError(path string, retryAfterHeader string) *lidomain.RateLimitError {
	rlErr := &lidomain.RateLimitError{Endpoint: path}
	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			rlErr.RetryAfter = &seconds
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":    path,
		"retry_after": retryAfterHeader,
	}).Warn("Rate limit atingido na API do LinkedIn")

	return rlErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
