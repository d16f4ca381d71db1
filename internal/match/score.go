package match

import "strings"

// Scoring constants for the similarity ladder.
const (
	exactScore       = 1.0
	containmentScore = 0.9

	wordOverlapBase   = 0.7
	wordOverlapWeight = 0.2
	wordOverlapFloor  = 0.5
	minOverlapWordLen = 3

	jaccardWeight = 0.6
	jaccardFloor  = 0.6
)

// Score computes how well a detected text string matches a dish name,
// returning a value in [0,1]. Comparison is case-insensitive.
//
// Strategies are evaluated in order and the first qualifying strategy's score
// is returned:
//
//  1. Exact match after normalization: 1.0.
//  2. Substring containment in either direction: 0.9.
//  3. Word overlap: each dish word of length >= 3 is checked for substring
//     containment against every detected word (either direction); if
//     matchedWords/totalDishWords exceeds 0.5 the score is
//     0.7 + ratio*0.2 (range 0.7-0.9).
//  4. Character-set Jaccard similarity: if |intersection|/|union| of the two
//     strings' character sets exceeds 0.6 the score is similarity*0.6
//     (range 0.36-0.6).
//  5. Otherwise 0.0.
//
// The ordering is a deliberate precedence: a structural match always outranks
// a looser character-overlap match even when the latter's raw similarity
// number would be higher, so Score returns at the first qualifying rung
// instead of taking a max over all four.
func Score(dishName, detectedText string) float64 {
	dish := normalize(dishName)
	detected := normalize(detectedText)
	if dish == "" || detected == "" {
		return 0
	}

	if dish == detected {
		return exactScore
	}

	if strings.Contains(dish, detected) || strings.Contains(detected, dish) {
		return containmentScore
	}

	if ratio := wordOverlapRatio(dish, detected); ratio > wordOverlapFloor {
		return wordOverlapBase + ratio*wordOverlapWeight
	}

	if sim := charSetJaccard(dish, detected); sim > jaccardFloor {
		return sim * jaccardWeight
	}

	return 0
}

// normalize lowercases, trims, and collapses internal whitespace so that
// spacing quirks in OCR output do not defeat exact and containment matching.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// wordOverlapRatio returns matchedWords/totalDishWords, where a dish word is
// matched when it appears as a substring of any detected word or vice versa.
// Dish words shorter than minOverlapWordLen are never counted as matched
// ("the", "&", "of" would otherwise match nearly anything) but still count in
// the denominator.
func wordOverlapRatio(dish, detected string) float64 {
	dishWords := strings.Fields(dish)
	detectedWords := strings.Fields(detected)
	if len(dishWords) == 0 || len(detectedWords) == 0 {
		return 0
	}

	matched := 0
	for _, dw := range dishWords {
		if len(dw) < minOverlapWordLen {
			continue
		}
		for _, tw := range detectedWords {
			if strings.Contains(tw, dw) || strings.Contains(dw, tw) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(dishWords))
}

// charSetJaccard computes Jaccard similarity over the sets of characters
// appearing in each string.
func charSetJaccard(a, b string) float64 {
	setA := make(map[rune]struct{})
	for _, r := range a {
		setA[r] = struct{}{}
	}
	setB := make(map[rune]struct{})
	for _, r := range b {
		setB[r] = struct{}{}
	}

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
