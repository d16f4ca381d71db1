package match

import (
	"sort"

	"github.com/rooshmintted/menu-annotate/internal/menu"
	"github.com/rooshmintted/menu-annotate/internal/ocr"
)

// Threshold is the minimum score a region must strictly exceed to be matched
// to a dish.
const Threshold = 0.6

// Match pairs a dish with the detected text region believed to be its
// on-image label. Each dish appears at most once in a match list; a dish with
// no qualifying region simply produces no Match.
type Match struct {
	Dish   menu.DishRecord `json:"dish"`
	Region ocr.Region      `json:"region"`
	Score  float64         `json:"score"`
}

// Best returns the highest-scoring region for a dish, scanning regions in
// order. Ties keep the first region encountered (the comparison is strictly
// greater). The boolean is false when no region's score exceeds Threshold.
func Best(dish menu.DishRecord, regions []ocr.Region) (ocr.Region, float64, bool) {
	var best ocr.Region
	bestScore := 0.0
	for _, region := range regions {
		if s := Score(dish.Name, region.Text); s > bestScore {
			best = region
			bestScore = s
		}
	}
	if bestScore <= Threshold {
		return ocr.Region{}, 0, false
	}
	return best, bestScore, true
}

// All matches every dish against the detected regions independently and
// returns the matches in the same order as the input dish list, omitting
// unmatched dishes.
//
// Matching is per-dish, not a bipartite assignment: a single region may be
// claimed by more than one dish when both score above the threshold. Callers
// that need one-to-one pairing should use Exclusive instead.
func All(dishes []menu.DishRecord, regions []ocr.Region) []Match {
	matches := make([]Match, 0, len(dishes))
	for _, dish := range dishes {
		if region, score, ok := Best(dish, regions); ok {
			matches = append(matches, Match{Dish: dish, Region: region, Score: score})
		}
	}
	return matches
}

// Exclusive matches dishes to regions one-to-one: candidate pairs above the
// threshold are taken greedily in descending score order, and a region
// claimed by one dish is unavailable to the rest. Ties break toward the
// earlier dish, then the earlier region in scan order, so the result is
// deterministic.
//
// Output order follows the input dish list, same as All.
func Exclusive(dishes []menu.DishRecord, regions []ocr.Region) []Match {
	type candidate struct {
		dishIdx   int
		regionIdx int
		score     float64
	}

	var candidates []candidate
	for di, dish := range dishes {
		for ri, region := range regions {
			if s := Score(dish.Name, region.Text); s > Threshold {
				candidates = append(candidates, candidate{dishIdx: di, regionIdx: ri, score: s})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].dishIdx != candidates[j].dishIdx {
			return candidates[i].dishIdx < candidates[j].dishIdx
		}
		return candidates[i].regionIdx < candidates[j].regionIdx
	})

	chosen := make(map[int]Match, len(dishes)) // dish index -> match
	claimedRegions := make(map[int]bool, len(regions))
	for _, c := range candidates {
		if _, done := chosen[c.dishIdx]; done {
			continue
		}
		if claimedRegions[c.regionIdx] {
			continue
		}
		chosen[c.dishIdx] = Match{Dish: dishes[c.dishIdx], Region: regions[c.regionIdx], Score: c.score}
		claimedRegions[c.regionIdx] = true
	}

	matches := make([]Match, 0, len(chosen))
	for di := range dishes {
		if m, ok := chosen[di]; ok {
			matches = append(matches, m)
		}
	}
	return matches
}
