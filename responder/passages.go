package responder

import (
	"sort"
	"strings"

	"doc-lab/errors"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// passageMatcher answers whether a sentence contains any of the patterns,
// case-insensitively. The automaton is built once per response from the
// record's keywords and topics.
type passageMatcher struct {
	machine *goahocorasick.Machine
}

func newPassageMatcher(patterns []string) (*passageMatcher, error) {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	cleaned = lo.Uniq(cleaned)
	if len(cleaned) == 0 {
		return nil, errors.ErrNoPatterns
	}
	sort.Strings(cleaned)

	terms := make([][]rune, len(cleaned))
	for i, p := range cleaned {
		terms[i] = []rune(p)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(terms); err != nil {
		return nil, err
	}
	return &passageMatcher{machine: m}, nil
}

// Matches reports whether the sentence contains at least one pattern.
func (pm *passageMatcher) Matches(sentence string) bool {
	hits := pm.machine.MultiPatternSearch([]rune(strings.ToLower(sentence)), true)
	return len(hits) > 0
}
