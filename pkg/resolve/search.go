package resolve

import "strings"

// searchCandidate pairs a generated text with its score.
type searchCandidate struct {
	content string
	score   candidateScore
}

// candidateScore is the tuple scoring compares lexicographically:
// retaining every added token outranks raw overlap, which outranks a
// shorter result.
type candidateScore struct {
	retainsAllAdded int // 1 if true, 0 if false
	tokenOverlap    int
	lengthPenalty   int // negative length, so "less negative" (shorter) wins ties
}

func (s candidateScore) less(o candidateScore) bool {
	if s.retainsAllAdded != o.retainsAllAdded {
		return s.retainsAllAdded < o.retainsAllAdded
	}
	if s.tokenOverlap != o.tokenOverlap {
		return s.tokenOverlap < o.tokenOverlap
	}
	return s.lengthPenalty < o.lengthPenalty
}

// generateCandidates builds the fixed candidate set component F names:
// both concatenation orders, a plain line-union, accept-left,
// accept-right, and base (discarding both changes).
func generateCandidates(base, left, right string) []string {
	return []string{
		left + right,
		right + left,
		lineUnion(left, right),
		left,
		right,
		base,
	}
}

func lineUnion(left, right string) string {
	var ordered []string
	seen := map[string]bool{}
	for _, src := range [][]string{strings.Split(left, "\n"), strings.Split(right, "\n")} {
		for _, l := range src {
			if !seen[l] {
				seen[l] = true
				ordered = append(ordered, l)
			}
		}
	}
	return strings.Join(ordered, "\n")
}

func tokenize(s string) []string {
	return strings.Fields(s)
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func scoreCandidate(candidate, base, left, right string) candidateScore {
	baseTokens := tokenSet(tokenize(base))
	addedLeft := addedTokens(baseTokens, tokenize(left))
	addedRight := addedTokens(baseTokens, tokenize(right))
	wantAdded := map[string]bool{}
	for t := range addedLeft {
		wantAdded[t] = true
	}
	for t := range addedRight {
		wantAdded[t] = true
	}

	candTokens := tokenSet(tokenize(candidate))
	retainsAll := 1
	for t := range wantAdded {
		if !candTokens[t] {
			retainsAll = 0
			break
		}
	}

	leftTokens := tokenSet(tokenize(left))
	rightTokens := tokenSet(tokenize(right))
	overlap := 0
	for t := range candTokens {
		if leftTokens[t] {
			overlap++
		}
		if rightTokens[t] {
			overlap++
		}
	}

	return candidateScore{
		retainsAllAdded: retainsAll,
		tokenOverlap:    overlap,
		lengthPenalty:   -len(candidate),
	}
}

func addedTokens(baseTokens map[string]bool, sideTokens []string) map[string]bool {
	added := map[string]bool{}
	for _, t := range sideTokens {
		if !baseTokens[t] {
			added[t] = true
		}
	}
	return added
}

// resolveSearch is component F: generate the fixed candidate set, score
// each, and accept the highest-scoring one if its mapped confidence
// clears the configured threshold. Ties are broken by the stable order
// generateCandidates produced.
func resolveSearch(base, left, right string, cfg PipelineConfig) (*Resolution, []Candidate) {
	texts := generateCandidates(base, left, right)

	var candidates []Candidate
	bestIdx := -1
	var best candidateScore

	for i, text := range texts {
		s := scoreCandidate(text, base, left, right)
		candidates = append(candidates, Candidate{
			Content:    text,
			Strategy:   SearchBased,
			Confidence: mapConfidence(s, cfg),
		})
		if bestIdx == -1 || best.less(s) {
			best = s
			bestIdx = i
		}
	}

	confidence := mapConfidence(best, cfg)
	if bestIdx == -1 || confidence < cfg.SearchThreshold {
		return nil, candidates
	}

	return &Resolution{
		Content:    texts[bestIdx],
		Strategy:   SearchBased,
		Confidence: confidence,
	}, candidates
}

// mapConfidence maps a score's components into [SearchMinConfidence,
// SearchMaxConfidence], weighted toward retaining every added token.
func mapConfidence(s candidateScore, cfg PipelineConfig) float64 {
	span := cfg.SearchMaxConfidence - cfg.SearchMinConfidence
	weight := 0.0
	if s.retainsAllAdded == 1 {
		weight += 0.7
	}
	if s.tokenOverlap > 0 {
		weight += 0.3
	}
	if weight > 1 {
		weight = 1
	}
	return cfg.SearchMinConfidence + span*weight
}
