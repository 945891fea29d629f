package countrycode

import (
	"context"
	"fmt"
	"strings"

	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Resolver implements domain.CodeResolver from an offline ISO 3166-1 table.
// Lookups are case-insensitive and accept common football names ("USA",
// "South Korea") alongside the ISO short names.
type Resolver struct {
	index map[string]language.Region
}

// NewResolver creates a Resolver over the built-in country table.
func NewResolver() *Resolver {
	return &Resolver{index: defaultIndex}
}

var defaultIndex = mustBuildIndex(shortNames, commonNames)

var folder = cases.Fold()

func key(name string) string {
	return folder.String(norm.NFC.String(strings.TrimSpace(name)))
}

func mustBuildIndex(tables ...map[string]string) map[string]language.Region {
	idx, err := buildIndex(tables...)
	if err != nil {
		panic(err)
	}
	return idx
}

func buildIndex(tables ...map[string]string) (map[string]language.Region, error) {
	idx := make(map[string]language.Region)
	for _, table := range tables {
		for name, alpha2 := range table {
			region, err := language.ParseRegion(alpha2)
			if err != nil {
				return nil, fmt.Errorf("country %q: parse region %q: %w", name, alpha2, err)
			}
			if !region.IsCountry() {
				return nil, fmt.Errorf("country %q: region %q is not a country", name, alpha2)
			}
			idx[key(name)] = region
		}
	}
	return idx, nil
}

// ResolveISO3 returns the alpha-3 code for a country name, or an error
// wrapping domain.ErrUnknownCountry.
func (r *Resolver) ResolveISO3(_ context.Context, country string) (string, error) {
	region, ok := r.index[key(country)]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCountry, country)
	}
	return region.ISO3(), nil
}
