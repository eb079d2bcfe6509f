package routing

import "github.com/cycleroute-microservice/internal/domain"

// AverageScores returns, per way, the mean of all rated reports covering it.
// This is the aggregate the cost model consumes. Unrated reports are ignored.
func AverageScores(reports []*domain.CyclabilityScore) map[int64]float64 {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)

	for _, r := range reports {
		if r == nil || !r.IsRated() {
			continue
		}
		for _, wayID := range uniqueIDs(r.WayIDs) {
			sums[wayID] += r.Score
			counts[wayID]++
		}
	}

	avg := make(map[int64]float64, len(sums))
	for wayID, sum := range sums {
		avg[wayID] = sum / float64(counts[wayID])
	}
	return avg
}

// LatestScores returns, per way, the most recent report covering it.
// This is the authoritative score for display and may be unrated.
// On equal timestamps the report with the higher id wins.
func LatestScores(reports []*domain.CyclabilityScore) map[int64]*domain.CyclabilityScore {
	latest := make(map[int64]*domain.CyclabilityScore)

	for _, r := range reports {
		if r == nil {
			continue
		}
		for _, wayID := range r.WayIDs {
			cur, ok := latest[wayID]
			if !ok || newer(r, cur) {
				latest[wayID] = r
			}
		}
	}
	return latest
}

func newer(a, b *domain.CyclabilityScore) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
