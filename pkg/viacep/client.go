package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"talent-portal-backend/internal/domain"
)

const DefaultBaseURL = "https://viacep.com.br"

// Client resolves Brazilian postal codes against the ViaCEP web service.
// It implements domain.AddressLookup.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type viaCEPResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

// Lookup fetches the address for an 8-digit CEP. Unknown codes return
// domain.ErrCEPNotFound; slow upstream responses return domain.ErrCEPTimeout.
func (c *Client) Lookup(ctx context.Context, cep string) (*domain.Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.ErrCEPTimeout
		}
		return nil, fmt.Errorf("viacep request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("viacep response decode failed: %w", err)
	}

	// ViaCEP signals an unknown code with an "erro" field instead of a
	// non-200 status.
	if len(payload.Erro) > 0 {
		return nil, domain.ErrCEPNotFound
	}

	return &domain.Address{
		CEP:          strings.ReplaceAll(payload.CEP, "-", ""),
		Address:      payload.Logradouro,
		City:         payload.Localidade,
		State:        payload.UF,
		Neighborhood: payload.Bairro,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
