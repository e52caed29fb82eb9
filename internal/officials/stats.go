package officials

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/club-officials-api/internal/models"
)

// ComputeStats counts confirmed shifts per player name across games. Both slots of the
// same game count separately. Proposed and guardian-pending slots count zero.
func ComputeStats(games []models.Game) map[string]int {
	counts := make(map[string]int)
	for _, game := range games {
		for _, slot := range models.Slots {
			a := game.Officials.Get(slot)
			if !a.Confirmed() {
				continue
			}
			counts[a.PlayerName]++
		}
	}
	return counts
}

// Rank orders counts for display: most shifts first, ties by name in Finnish alphabetical order.
func Rank(counts map[string]int) []models.PlayerStat {
	out := make([]models.PlayerStat, 0, len(counts))
	for name, count := range counts {
		out = append(out, models.PlayerStat{Name: name, Count: count})
	}
	// a Collator keeps internal buffers, so each call gets its own
	col := collate.New(language.Finnish)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if c := col.CompareString(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Leaderboard is ComputeStats followed by Rank.
func Leaderboard(games []models.Game) []models.PlayerStat {
	return Rank(ComputeStats(games))
}
