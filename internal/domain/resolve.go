package domain

import (
	"context"
	"fmt"
	"log/slog"
)

// fallbackCodes covers names the generic lookup is known to miss.
var fallbackCodes = map[string]string{
	countryUnitedKingdom: "GBR",
}

// ResolveCodes attaches an ISO3 code to each win count. Countries the resolver
// cannot map (and that have no fallback) are left out of kept and returned in
// dropped with the reason, each logged at warn level. Order of kept follows wins.
func ResolveCodes(ctx context.Context, wins []WinCount, resolver CodeResolver, logger *slog.Logger) (kept []WinCount, dropped []CodeResolution) {
	kept = make([]WinCount, 0, len(wins))
	for _, w := range wins {
		res := resolveOne(ctx, w.Country, resolver)
		if !res.Resolved {
			logger.Warn("country code resolution failed, dropping country",
				"country", w.Country,
				"wins", w.Wins,
				"reason", res.Reason,
			)
			dropped = append(dropped, res)
			continue
		}
		w.ISO = res.ISO
		kept = append(kept, w)
	}
	return kept, dropped
}

func resolveOne(ctx context.Context, country string, resolver CodeResolver) CodeResolution {
	res := CodeResolution{Country: country}

	var reason string
	if resolver == nil {
		reason = "no resolver configured"
	} else {
		code, err := resolver.ResolveISO3(ctx, country)
		switch {
		case err != nil:
			reason = err.Error()
		case !IsISO3(code):
			reason = fmt.Sprintf("resolver returned invalid code %q", code)
		default:
			res.ISO = code
			res.Resolved = true
			return res
		}
	}

	if code, ok := fallbackCodes[country]; ok {
		res.ISO = code
		res.Resolved = true
		return res
	}
	res.Reason = reason
	return res
}

// IsISO3 reports whether s looks like an ISO 3166-1 alpha-3 code.
func IsISO3(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
