package domain

const (
	countryGermany       = "Germany"
	countryWestGermany   = "West Germany"
	countryEngland       = "England"
	countryUnitedKingdom = "United Kingdom"
)

// NormalizeWinner canonicalizes a Winners value. West Germany and Germany
// collapse to "Germany", and England becomes "United Kingdom" so it can be
// keyed on the map.
func NormalizeWinner(name string) string {
	name = mergeGermany(name)
	if name == countryEngland {
		return countryUnitedKingdom
	}
	return name
}

// NormalizeRunnerUp canonicalizes a Runners-up value. Only the Germany merge
// applies; England keeps its name in this column.
func NormalizeRunnerUp(name string) string {
	return mergeGermany(name)
}

func mergeGermany(name string) string {
	switch name {
	case countryWestGermany, countryGermany:
		return countryGermany
	default:
		return name
	}
}

// NormalizeRecords returns a copy of records with both country columns
// normalized. The input slice is not modified.
func NormalizeRecords(records []MatchRecord) []MatchRecord {
	out := make([]MatchRecord, len(records))
	for i, rec := range records {
		rec.Winners = NormalizeWinner(rec.Winners)
		rec.RunnersUp = NormalizeRunnerUp(rec.RunnersUp)
		out[i] = rec
	}
	return out
}
