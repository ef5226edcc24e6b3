package analysis

import "strings"

var honorifics = toSet(
	"mr", "mrs", "ms", "dr", "prof", "professor", "president", "sir", "lady",
	"lord", "captain", "general", "judge", "senator", "minister",
)

var firstNames = toSet(
	"james", "john", "robert", "michael", "william", "david", "richard",
	"thomas", "charles", "daniel", "matthew", "anthony", "mark", "paul",
	"steven", "andrew", "george", "joseph", "kevin", "brian", "edward",
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara", "susan",
	"jessica", "sarah", "karen", "nancy", "lisa", "margaret", "sandra",
	"emma", "olivia", "sophia", "alice", "anna", "maria", "marie", "laura",
	"julia",
	"peter", "henry", "jack", "samuel", "alexander", "benjamin", "lucas",
)

var orgSuffixes = toSet(
	"inc", "inc.", "corp", "corp.", "corporation", "ltd", "ltd.", "llc",
	"plc", "co", "co.", "company", "group", "university", "institute",
	"agency", "department", "ministry", "association", "foundation", "bank",
	"committee", "council", "organization", "organisation", "laboratories",
)

var knownPlaces = toSet(
	"africa", "america", "asia", "australia", "europe", "antarctica",
	"france", "germany", "spain", "italy", "england", "britain", "scotland",
	"ireland", "portugal", "netherlands", "belgium", "switzerland",
	"austria", "poland", "sweden", "norway", "denmark", "finland", "greece",
	"russia", "china", "japan", "india", "korea", "vietnam", "thailand",
	"indonesia", "brazil", "argentina", "mexico", "canada", "egypt",
	"morocco", "nigeria", "kenya", "turkey", "israel",
	"london", "paris", "berlin", "madrid", "rome", "amsterdam", "brussels",
	"vienna", "moscow", "beijing", "tokyo", "delhi", "mumbai", "seoul",
	"sydney", "toronto", "chicago", "boston", "seattle", "miami", "dallas",
	"houston", "atlanta", "denver", "phoenix", "washington", "philadelphia",
	"francisco", "angeles", "york", "vegas", "orleans", "cairo", "lagos",
	"nairobi", "istanbul", "dubai", "singapore",
)

var placePrepositions = toSet("in", "at", "from", "near", "across", "around")

// Entities extracts people, places and organizations from capitalized spans.
// Best effort only: empty buckets are valid. Spans that classify into no
// bucket still surface through the topic pass.
func Entities(sentences []string) (people, places, organizations []string) {
	for _, sentence := range sentences {
		for _, span := range capitalizedSpans(sentence) {
			switch classifySpan(span) {
			case "person":
				people = append(people, span.text())
			case "place":
				places = append(places, span.text())
			case "organization":
				organizations = append(organizations, span.text())
			}
		}
	}
	return people, places, organizations
}

// span is a run of consecutive capitalized tokens with its left neighbor.
type span struct {
	words     []string
	preceding string // lower-cased token right before the span, if any
	offset    int    // token index of the first word within the sentence
}

func (s span) text() string {
	return strings.Join(s.words, " ")
}

func capitalizedSpans(sentence string) []span {
	tokens := Tokenize(sentence)
	var spans []span
	var current []string
	start := -1

	flush := func() {
		if len(current) == 0 {
			return
		}
		sp := span{words: current, offset: start}
		if start > 0 {
			sp.preceding = strings.ToLower(stripEdges(tokens[start-1]))
		}
		spans = append(spans, sp)
		current = nil
		start = -1
	}

	for i, token := range tokens {
		word := stripEdges(token)
		if word != "" && isCapitalized(word) && !containsDigit(word) {
			if len(current) == 0 {
				start = i
			}
			current = append(current, word)
			// punctuation glued to the token ends the span
			if strings.HasSuffix(token, ",") || strings.HasSuffix(token, ".") ||
				strings.HasSuffix(token, ":") || strings.HasSuffix(token, ";") {
				flush()
			}
			continue
		}
		flush()
	}
	flush()

	return spans
}

func classifySpan(sp span) string {
	first := strings.ToLower(sp.words[0])
	last := strings.ToLower(strings.TrimSuffix(sp.words[len(sp.words)-1], "."))

	if _, ok := honorifics[strings.TrimSuffix(first, ".")]; ok && len(sp.words) > 1 {
		return "person"
	}
	// "Dr." flushes as its own span when the period glues to it
	if _, ok := honorifics[sp.preceding]; ok {
		return "person"
	}
	if _, ok := orgSuffixes[last]; ok && len(sp.words) > 1 {
		return "organization"
	}
	for _, word := range sp.words {
		if _, ok := knownPlaces[strings.ToLower(word)]; ok {
			return "place"
		}
	}
	if _, ok := firstNames[first]; ok {
		// sentence-initial single names are too ambiguous to claim
		if len(sp.words) > 1 || sp.offset > 0 {
			return "person"
		}
	}
	if _, ok := placePrepositions[sp.preceding]; ok && len(sp.words) <= 2 {
		return "place"
	}
	return ""
}
