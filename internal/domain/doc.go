// Package domain models the FIFA World Cup finals table and the per-country
// win counts derived from it.
//
// # Data Source
//
// Finals come from the "List of FIFA World Cup finals" article on English
// Wikipedia. The page carries several tables; the finals list is the first one
// whose header row has a "Year" column. Each row is one final:
//
//	Year | Winners | Score | Runners-up | Venue | Location | Attendance | Ref.
//
// Only Year, Winners and Runners-up are interpreted. Every other column is kept
// verbatim in [MatchRecord.Extra].
//
// # Country Names
//
// Wikipedia labels teams by the name they played under, so the same football
// association can appear under several names over time. Before counting:
//
//	"West Germany", "Germany"  →  "Germany"          (Winners and Runners-up)
//	"England"                  →  "United Kingdom"   (Winners only)
//
// The England rename exists so the map can key the country to GBR. It is
// applied to the Winners column alone; see [NormalizeRunnerUp].
//
// # Win Counts
//
// [CountWins] tallies normalized winners ordered by descending count, ties in
// first-appearance order. [ResolveCodes] then attaches an ISO 3166-1 alpha-3
// code to every country through a [CodeResolver]. Countries without a code are
// dropped from the published set and reported as [CodeResolution] entries so
// nothing disappears silently.
//
// # Dataset
//
// [Dataset] is the immutable result of one load. It is built once at startup
// and shared read-only by every HTTP handler.
package domain
