package domain

import (
	"context"
	"errors"
)

// Address lookup failures, mapped to HTTP codes by the profile usecase.
var (
	ErrCEPNotFound = errors.New("postal code not found")
	ErrCEPTimeout  = errors.New("postal code lookup timed out")
	ErrCEPInvalid  = errors.New("postal code must contain exactly 8 digits")
)

// Address is the normalized result of a postal code lookup.
type Address struct {
	CEP          string `json:"cep"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Neighborhood string `json:"neighborhood"`
}

// AddressLookup resolves an 8-digit CEP against an external directory.
type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (*Address, error)
}
