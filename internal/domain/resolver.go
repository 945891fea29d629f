package domain

import (
	"context"
	"errors"
)

// ErrUnknownCountry is returned by a CodeResolver that has no code for a name.
var ErrUnknownCountry = errors.New("unknown country")

// CodeResolver maps a country name to its ISO 3166-1 alpha-3 code.
type CodeResolver interface {
	ResolveISO3(ctx context.Context, country string) (string, error)
}
