package domain

import "sort"

// CountWins tallies finals won per Winners value. The result is ordered by
// descending count; countries with equal counts keep the order in which they
// first won. Records are expected to be normalized already.
func CountWins(records []MatchRecord) []WinCount {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if _, seen := counts[rec.Winners]; !seen {
			order = append(order, rec.Winners)
		}
		counts[rec.Winners]++
	}

	wins := make([]WinCount, 0, len(order))
	for _, country := range order {
		wins = append(wins, WinCount{Country: country, Wins: counts[country]})
	}
	sort.SliceStable(wins, func(i, j int) bool { return wins[i].Wins > wins[j].Wins })
	return wins
}
