package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talent-portal-backend/internal/domain"
)

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	addr, err := client.Lookup(context.Background(), "01310100")
	assert.NoError(t, err)
	assert.Equal(t, "01310100", addr.CEP)
	assert.Equal(t, "Avenida Paulista", addr.Address)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
	assert.Equal(t, "Bela Vista", addr.Neighborhood)
}

func TestClient_LookupUnknownCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, domain.ErrCEPNotFound)
}

func TestClient_LookupTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)

	_, err := client.Lookup(context.Background(), "01310100")
	assert.ErrorIs(t, err, domain.ErrCEPTimeout)
}
