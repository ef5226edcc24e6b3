package analysis

import (
	"doc-lab/domain"

	bluganalysis "github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/lang/en"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
	"github.com/samber/lo"
)

// keywordAnalyzer is the independent keyword-extraction heuristic:
// unicode segmentation, case normalization and english stopword removal.
// It deliberately runs its own tokenization, separate from Tokenize.
var keywordAnalyzer = &bluganalysis.Analyzer{
	Tokenizer: tokenizer.NewUnicodeTokenizer(),
	TokenFilters: []bluganalysis.TokenFilter{
		token.NewLowerCaseFilter(),
		token.NewStopTokensFilter(en.StopWords()),
	},
}

// Keywords merges three sources: tagged nouns, tagged adjectives and the
// analyzer chain above (digits stripped). The union keeps appearance order,
// is deduplicated as a set and truncated to domain.MaxKeywords.
func Keywords(text string, nouns, adjectives []string) []string {
	merged := make([]string, 0, len(nouns)+len(adjectives))
	merged = append(merged, nouns...)
	merged = append(merged, adjectives...)

	for _, tok := range keywordAnalyzer.Analyze([]byte(text)) {
		term := string(tok.Term)
		if term == "" || containsDigit(term) {
			continue
		}
		merged = append(merged, term)
	}

	return lo.Slice(lo.Uniq(merged), 0, domain.MaxKeywords)
}
