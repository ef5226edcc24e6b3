package analysis

import "strings"

// Closed-class function words are never tagged as content words.
var functionWords = toSet(
	"the", "a", "an", "this", "that", "these", "those", "some", "any", "no",
	"each", "every", "either", "neither", "both", "all", "most", "more",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us",
	"them", "my", "your", "his", "its", "our", "their", "mine", "yours",
	"myself", "yourself", "himself", "herself", "itself", "ourselves",
	"themselves", "who", "whom", "whose", "which", "what", "where", "when",
	"why", "how", "there", "here", "then", "than", "so", "too", "very",
	"not", "only", "just", "also", "again", "once", "never", "always",
	"often", "sometimes", "now", "still", "yet", "even", "ever",
	"and", "or", "but", "nor", "for", "if", "because", "while", "although",
	"though", "unless", "until", "since", "whether", "as",
	"in", "on", "at", "by", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from",
	"up", "down", "out", "off", "over", "under", "of", "per", "via",
	"yes", "ok", "okay", "oh", "well",
)

// Copulas, auxiliaries and frequent irregular verbs with their inflections.
var verbLexicon = toSet(
	"is", "are", "was", "were", "am", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing", "done",
	"will", "would", "shall", "should", "can", "could", "may", "might", "must",
	"say", "says", "said", "get", "gets", "got", "gotten", "make", "makes",
	"made", "go", "goes", "went", "gone", "know", "knows", "knew", "known",
	"take", "takes", "took", "taken", "see", "sees", "saw", "seen",
	"come", "comes", "came", "think", "thinks", "thought", "look", "looks",
	"want", "wants", "give", "gives", "gave", "given", "use", "uses",
	"find", "finds", "found", "tell", "tells", "told", "ask", "asks",
	"work", "works", "seem", "seems", "feel", "feels", "felt", "try", "tries",
	"leave", "leaves", "left", "call", "calls", "keep", "keeps", "kept",
	"let", "lets", "begin", "begins", "began", "begun", "show", "shows",
	"shown", "hear", "hears", "heard", "run", "runs", "ran", "move", "moves",
	"believe", "believes", "bring", "brings", "brought", "happen", "happens",
	"write", "writes", "wrote", "written", "sit", "sits", "sat", "stand",
	"stands", "stood", "lose", "loses", "lost", "pay", "pays", "paid",
	"meet", "meets", "met", "include", "includes", "included", "continue",
	"continues", "set", "sets", "learn", "learns", "learned", "change",
	"changes", "changed", "lead", "leads", "led", "understand", "understood",
	"speak", "speaks", "spoke", "spoken", "read", "reads", "grow", "grows",
	"grew", "grown", "open", "opens", "walk", "walks", "win", "wins", "won",
	"offer", "offers", "remember", "remembers", "love", "loves", "loved",
	"consider", "considers", "appear", "appears", "buy", "buys", "bought",
	"wait", "waits", "serve", "serves", "die", "dies", "died", "send",
	"sends", "sent", "expect", "expects", "build", "builds", "built",
	"stay", "stays", "fall", "falls", "fell", "fallen", "cut", "cuts",
	"reach", "reaches", "kill", "kills", "remain", "remains", "suggest",
	"suggests", "raise", "raises", "pass", "passes", "sell", "sells", "sold",
	"require", "requires", "report", "reports", "decide", "decides",
	"announce", "announced", "announces", "launch", "launches", "launched",
	"provide", "provides", "provided", "create", "creates", "created",
)

// Frequent adjectives not recoverable by suffix alone.
var adjectiveLexicon = toSet(
	"good", "new", "first", "last", "long", "great", "little", "own",
	"other", "old", "right", "big", "high", "different", "small", "large",
	"next", "early", "young", "important", "few", "public", "bad", "same",
	"able", "best", "better", "worst", "worse", "free", "true", "false",
	"full", "empty", "special", "easy", "hard", "strong", "weak", "clear",
	"recent", "late", "major", "minor", "real", "whole", "certain", "main",
	"fast", "slow", "rich", "poor", "happy", "sad", "short", "low", "sure",
	"fine", "nice", "warm", "cold", "dark", "light", "deep", "wide",
)

var adjectiveSuffixes = []string{
	"ous", "ful", "ive", "able", "ible", "less", "ish", "ical",
}

var nounSuffixes = []string{
	"tion", "sion", "ment", "ness", "ity", "ship", "ance", "ence", "ism",
	"ology", "hood", "dom",
}

// nouns ending in -ing/-ed that the verb suffix rule must not claim.
var verbSuffixExceptions = toSet(
	"thing", "something", "nothing", "anything", "everything", "morning",
	"evening", "king", "ring", "spring", "string", "wing", "building",
	"meeting", "feeling", "beginning", "being", "during", "bed", "red",
	"hundred", "speed", "need", "indeed", "sacred",
)

// Tag assigns each token to a grammatical bucket. Tokens keep their original
// casing and appearance order; a token may appear several times, the counts
// feed the statistics response.
func Tag(tokens []string) (nouns, verbs, adjectives []string) {
	for i, token := range tokens {
		word := stripEdges(token)
		if word == "" || containsDigit(word) {
			continue
		}
		lower := strings.ToLower(word)

		if _, ok := functionWords[lower]; ok {
			continue
		}
		if _, ok := verbLexicon[lower]; ok {
			verbs = append(verbs, word)
			continue
		}
		if isAdjective(lower) {
			adjectives = append(adjectives, word)
			continue
		}
		// proper nouns: capitalized past the first token of the text
		if i > 0 && isCapitalized(word) {
			nouns = append(nouns, word)
			continue
		}
		if isVerbBySuffix(lower) {
			verbs = append(verbs, word)
			continue
		}
		// everything left is treated as a noun, suffixed or not
		nouns = append(nouns, word)
	}
	return nouns, verbs, adjectives
}

func isAdjective(lower string) bool {
	if _, ok := adjectiveLexicon[lower]; ok {
		return true
	}
	if len(lower) < 6 {
		return false
	}
	for _, suffix := range adjectiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func isVerbBySuffix(lower string) bool {
	if len(lower) < 5 {
		return false
	}
	if _, ok := verbSuffixExceptions[lower]; ok {
		return false
	}
	// nominalizations like "creation" carry their own suffix; check first
	for _, suffix := range nounSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return false
		}
	}
	return strings.HasSuffix(lower, "ing") || strings.HasSuffix(lower, "ed") ||
		strings.HasSuffix(lower, "ize") || strings.HasSuffix(lower, "izes") ||
		strings.HasSuffix(lower, "ified") || strings.HasSuffix(lower, "ifies")
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
