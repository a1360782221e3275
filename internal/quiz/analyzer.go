package quiz

import "strings"

// minFragmentLen is the trimmed length below which a sentence fragment
// is discarded as too short to quiz on.
const minFragmentLen = 20

// minTokenLen is the length at or below which a token is discarded,
// both before and after stripping non-alphabetic characters.
const minTokenLen = 3

// stopWords are common words excluded from key-term extraction.
var stopWords = map[string]bool{
	"the": true, "is": true, "are": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// SegmentSentences splits freeform text into candidate sentences.
// ".", "!" and "?" all terminate a sentence; fragments whose trimmed
// length is 20 characters or fewer are dropped. The result may be empty.
func SegmentSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var sentences []string
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if len(f) > minFragmentLen {
			sentences = append(sentences, f)
		}
	}
	return sentences
}

// ExtractKeyTerms pulls content words out of a sentence for use as
// fill-in-the-blank answers. Tokens are split on spaces, stripped of
// non-alphabetic characters, and discarded when short or in the
// stop-word set. The result may be empty; callers must handle that.
func ExtractKeyTerms(sentence string) []string {
	var terms []string
	for _, tok := range strings.Split(sentence, " ") {
		if len(tok) <= minTokenLen || stopWords[strings.ToLower(tok)] {
			continue
		}
		stripped := stripNonAlpha(tok)
		if len(stripped) <= minTokenLen {
			continue
		}
		terms = append(terms, stripped)
	}
	return terms
}

func stripNonAlpha(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
