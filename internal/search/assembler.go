package search

import "github.com/dl/mlgrep/internal/pattern"

// assembler chains per-fragment occurrences into complete matches.
//
// The strategy is greedy first-match: at each depth it accepts the first
// unblocked occurrence, in discovery order, that follows the previous one,
// and never revisits that choice. A seed that cannot be extended to a full
// chain is discarded, which is a normal zero-result outcome. Greedy
// commitment can consume characters that would have allowed more matches
// overall; that known limitation is kept rather than generalized to an
// exhaustive search.
type assembler struct {
	fragments []*pattern.Fragment
	occs      [][]Occurrence // indexed by fragment, in discovery order
	excl      *ExclusionSet
}

// run seeds chains from the first fragment's occurrences only — later
// fragments' unchained occurrences are never treated as match starts —
// and commits each completed chain to the exclusion set before the next
// seed is evaluated.
func (a *assembler) run() []Match {
	var matches []Match
	for _, seed := range a.occs[0] {
		if a.blocked(seed) {
			continue
		}
		chain, ok := a.extend(seed)
		if !ok {
			continue
		}
		for _, occ := range chain {
			a.excl.Mark(occ.Line, occ.Column, a.fragments[occ.Fragment].Footprint())
		}
		matches = append(matches, Match{Occurrences: chain})
	}
	return matches
}

// extend grows a chain from seed, one fragment per step. An explicit loop
// rather than recursion: chain depth equals pattern length, and patterns
// may be arbitrarily tall.
func (a *assembler) extend(seed Occurrence) ([]Occurrence, bool) {
	chain := make([]Occurrence, 1, len(a.fragments))
	chain[0] = seed
	for i := 1; i < len(a.fragments); i++ {
		last := chain[len(chain)-1]
		found := false
		for _, occ := range a.occs[i] {
			if !occ.Follows(last) || a.blocked(occ) {
				continue
			}
			chain = append(chain, occ)
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
	return chain, true
}

func (a *assembler) blocked(occ Occurrence) bool {
	return a.excl.Blocked(occ.Line, occ.Column, a.fragments[occ.Fragment].Footprint())
}
