// Package cep resolves Brazilian postal codes (CEP) into addresses.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/davi814/projeto-pi-definitivo/config"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// ErrNotFound covers every unresolved lookup: malformed input, unknown CEP,
// upstream failure and an open breaker.
var ErrNotFound = errors.New("cep not found")

type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type Resolver interface {
	Resolve(ctx context.Context, cep string) (*Address, error)
}

type viaCEPResponse struct {
	CEP        string      `json:"cep"`
	Logradouro string      `json:"logradouro"`
	Bairro     string      `json:"bairro"`
	Localidade string      `json:"localidade"`
	UF         string      `json:"uf"`
	Erro       interface{} `json:"erro"`
}

// ViaCEPClient queries https://viacep.com.br behind a circuit breaker.
type ViaCEPClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *logrus.Logger
}

func NewViaCEPClient(cfg config.CEPConfig, log *logrus.Logger) *ViaCEPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "viacep",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &ViaCEPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		log:        log,
	}
}

func (c *ViaCEPClient) Resolve(ctx context.Context, raw string) (*Address, error) {
	digits, ok := validator.NormalizeCEP(raw)
	if !ok {
		return nil, ErrNotFound
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, digits)
	})
	if err != nil {
		c.log.Warnf("Failed to resolve CEP %s: %+v", digits, err)
		return nil, ErrNotFound
	}

	address, _ := result.(*Address)
	if address == nil {
		return nil, ErrNotFound
	}
	return address, nil
}

// fetch returns (nil, nil) for a CEP ViaCEP does not know, so that
// well-formed but unknown codes do not count as breaker failures.
func (c *ViaCEPClient) fetch(ctx context.Context, digits string) (*Address, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call viacep: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode viacep response: %w", err)
	}
	if isErrorFlag(body.Erro) {
		return nil, nil
	}

	return &Address{
		CEP:          digits,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}

// isErrorFlag accepts both {"erro": true} and {"erro": "true"}.
func isErrorFlag(v interface{}) bool {
	switch flag := v.(type) {
	case bool:
		return flag
	case string:
		return flag == "true"
	default:
		return false
	}
}
