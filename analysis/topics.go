package analysis

import (
	"strings"

	"doc-lab/domain"

	"github.com/samber/lo"
)

// Topics derives up to domain.MaxTopics salient phrases: every capitalized
// span of every sentence, in appearance order, deduplicated case-insensitively.
func Topics(sentences []string) []string {
	var candidates []string
	for _, sentence := range sentences {
		for _, sp := range capitalizedSpans(sentence) {
			// A lone sentence-initial capital is usually just the start of
			// the sentence; keep it only when it classifies as an entity.
			if sp.offset == 0 && len(sp.words) == 1 {
				lower := strings.ToLower(sp.words[0])
				if _, ok := functionWords[lower]; ok {
					continue
				}
				if _, ok := verbLexicon[lower]; ok {
					continue
				}
				if classifySpan(sp) == "" {
					continue
				}
			}
			candidates = append(candidates, sp.text())
		}
	}
	deduped := lo.UniqBy(candidates, strings.ToLower)
	return lo.Slice(deduped, 0, domain.MaxTopics)
}
