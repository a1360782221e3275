package quiz

import (
	"fmt"
	"strings"
)

// minBlankSentenceLen is the minimum sentence length eligible for a
// fill-in-the-blank question.
const minBlankSentenceLen = 30

// blankMarker replaces the answer term in a fill-in-the-blank prompt.
const blankMarker = "______"

// distractorVocab is the fixed pool wrong fill-in-the-blank options are
// sampled from. Deliberately topic-agnostic; distractors may be
// implausible for a given question and that is accepted behavior.
var distractorVocab = []string{
	"nebula", "galaxy", "comet", "asteroid", "meteorite", "supernova",
	"quasar", "pulsar", "neutron star", "red giant", "white dwarf",
	"plasma", "cosmic ray", "dark matter", "dark energy", "antimatter",
	"hydrogen", "helium", "fusion", "orbit", "gravity", "radiation",
	"electromagnetic", "spectrum", "wavelength",
}

// negationRules are checked in order against a sentence; the first rule
// whose word appears wins. Used to mutate a true statement into a false
// one for true/false questions.
var negationRules = []struct {
	from, to string
}{
	{"large", "small"},
	{"hot", "cold"},
	{"bright", "dim"},
	{"fast", "slow"},
	{"many", "few"},
}

// topicCategory selects the definition-question template for a topic.
type topicCategory int

const (
	categoryGeneric topicCategory = iota
	categoryBlackHole
	categoryPlanet
	categoryStar
)

// classifyTopic maps a topic name onto a category by case-insensitive
// substring match, checked in a fixed order.
func classifyTopic(name string) topicCategory {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "black hole"):
		return categoryBlackHole
	case strings.Contains(lower, "planet"):
		return categoryPlanet
	case strings.Contains(lower, "star"):
		return categoryStar
	default:
		return categoryGeneric
	}
}

// definitionTemplate is the fixed content of a definition question for
// one topic category. Prompt and rationale may reference the topic name.
type definitionTemplate struct {
	prompt       string
	options      []string
	correctIndex int
	rationale    string
}

var definitionTemplates = map[topicCategory]definitionTemplate{
	categoryBlackHole: {
		prompt: "Based on the explanation, what is the main characteristic of a black hole?",
		options: []string{
			"It emits bright light",
			"It has extremely strong gravity",
			"It is very cold",
			"It spins very slowly",
		},
		correctIndex: 1,
		rationale:    "According to the explanation about %s: black holes have extremely strong gravitational fields.",
	},
	categoryPlanet: {
		prompt: "According to the explanation, what makes %s unique?",
		options: []string{
			"Its size and composition",
			"Its distance from Earth",
			"Its number of moons",
			"Its orbital period",
		},
		correctIndex: 0,
		rationale:    "Based on the explanation about %s, its unique characteristics relate to size and composition.",
	},
	categoryStar: {
		prompt: "What process powers stars according to the explanation?",
		options: []string{
			"Chemical burning",
			"Nuclear fusion",
			"Gravitational collapse",
			"Magnetic fields",
		},
		correctIndex: 1,
		rationale:    "Stars are powered by nuclear fusion, as described in the explanation about %s.",
	},
	categoryGeneric: {
		prompt: "What is the most important concept mentioned in the explanation about %s?",
		options: []string{
			"Its formation and structure",
			"Its color and brightness",
			"Its age and temperature",
			"Its location and movement",
		},
		correctIndex: 0,
		rationale:    "This concept is central to understanding %s as described in the explanation.",
	},
}

// Synthesizer derives multiple-choice questions from freeform
// explanation text using string heuristics. Purely local and
// synchronous; irregular input never raises, it only shortens the
// returned list.
type Synthesizer struct {
	rng Rand
}

// NewSynthesizer creates a Synthesizer. A nil rng selects the
// process-wide generator.
func NewSynthesizer(rng Rand) *Synthesizer {
	if rng == nil {
		rng = SystemRand()
	}
	return &Synthesizer{rng: rng}
}

// Generate produces up to targetCount questions for the given topic and
// explanation text. Three strategies contribute in order: fill-in-the-blank,
// definition, true/false. When the text yields no usable sentences at all,
// a fixed 3-question fallback set templated on the topic name is returned
// instead, regardless of targetCount. The result may be shorter than
// targetCount; IDs are always 1..len(result).
func (s *Synthesizer) Generate(topicName, explanation string, targetCount int) []Question {
	sentences := SegmentSentences(explanation)
	if len(sentences) == 0 {
		return fallbackQuestions(topicName)
	}

	var questions []Question
	questions = append(questions, s.fillInTheBlank(topicName, sentences, targetCount/2)...)
	questions = append(questions, definitionQuestions(topicName, targetCount/2)...)
	questions = append(questions, s.trueFalse(topicName, sentences, targetCount-len(questions))...)

	if len(questions) > targetCount {
		questions = questions[:targetCount]
	}
	for i := range questions {
		questions[i].ID = i + 1
	}
	return questions
}

// fillInTheBlank blanks a random key term out of a random long sentence.
// Each of the count attempts consumes one slot whether or not it yields
// a question, so sparse input cannot loop forever.
func (s *Synthesizer) fillInTheBlank(topicName string, sentences []string, count int) []Question {
	var questions []Question
	used := make(map[string]bool)

	for attempt := 0; attempt < count; attempt++ {
		var available []string
		for _, sent := range sentences {
			if !used[sent] && len(sent) > minBlankSentenceLen {
				available = append(available, sent)
			}
		}
		if len(available) == 0 {
			continue
		}

		sentence := available[s.rng.IntN(len(available))]
		used[sentence] = true

		terms := ExtractKeyTerms(sentence)
		if len(terms) == 0 {
			continue
		}
		answer := terms[s.rng.IntN(len(terms))]

		prompt := replaceFirstFold(sentence, answer, blankMarker)
		options, correctIndex := s.buildOptions(answer)

		questions = append(questions, Question{
			Prompt:       fmt.Sprintf("Complete the statement about %s: %s", topicName, prompt),
			Options:      options,
			CorrectIndex: correctIndex,
			Rationale:    fmt.Sprintf("The correct answer is '%s' based on the explanation about %s.", answer, topicName),
		})
	}
	return questions
}

// buildOptions samples three distractors from the vocabulary (excluding
// the answer), shuffles them together with the answer, and reports the
// answer's shuffled position.
func (s *Synthesizer) buildOptions(answer string) ([]string, int) {
	lower := strings.ToLower(answer)
	pool := make([]string, 0, len(distractorVocab))
	for _, term := range distractorVocab {
		if term != lower {
			pool = append(pool, term)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	options := append(pool[:3:3], answer)
	s.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	correctIndex := 0
	for i, opt := range options {
		if opt == answer {
			correctIndex = i
			break
		}
	}
	return options, correctIndex
}

// definitionQuestions contributes at most one fixed question chosen by
// topic category. count below 1 yields nothing.
func definitionQuestions(topicName string, count int) []Question {
	if count < 1 {
		return nil
	}

	tmpl := definitionTemplates[classifyTopic(topicName)]
	prompt := tmpl.prompt
	if strings.Contains(prompt, "%s") {
		prompt = fmt.Sprintf(prompt, topicName)
	}

	options := make([]string, len(tmpl.options))
	copy(options, tmpl.options)

	return []Question{{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: tmpl.correctIndex,
		Rationale:    fmt.Sprintf(tmpl.rationale, topicName),
	}}
}

// trueFalse builds count statements from random sentences. Sentences may
// be reused across attempts. A coin flip decides whether the statement
// is kept verbatim (correct answer "True") or mutated via the negation
// rules (correct answer "False").
func (s *Synthesizer) trueFalse(topicName string, sentences []string, count int) []Question {
	var questions []Question

	for attempt := 0; attempt < count; attempt++ {
		if len(sentences) == 0 {
			continue
		}
		sentence := sentences[s.rng.IntN(len(sentences))]

		statement := sentence
		correctIndex := 0
		rationale := fmt.Sprintf("This statement is true according to the explanation about %s.", topicName)
		if !s.rng.Bool() {
			statement = negate(sentence, topicName)
			correctIndex = 1
			rationale = fmt.Sprintf("This statement is false. The correct information about %s is in the explanation.", topicName)
		}

		questions = append(questions, Question{
			Prompt:       "True or False: " + statement,
			Options:      []string{"True", "False"},
			CorrectIndex: correctIndex,
			Rationale:    rationale,
		})
	}
	return questions
}

// negate mutates a sentence into a false statement using the first
// matching negation rule, falling back to a generic contradiction when
// no rule applies.
func negate(sentence, topicName string) string {
	lower := strings.ToLower(sentence)
	for _, rule := range negationRules {
		if strings.Contains(lower, rule.from) {
			return replaceAllFold(sentence, rule.from, rule.to)
		}
	}
	return fmt.Sprintf("This statement about %s is incorrect", topicName)
}

// fallbackQuestions is the fixed generic set used when the explanation
// text yields no sentences to analyze.
func fallbackQuestions(topicName string) []Question {
	return []Question{
		{
			ID:           1,
			Prompt:       fmt.Sprintf("What field of study does %s belong to?", topicName),
			Options:      []string{"Astronomy", "Biology", "Chemistry", "Geology"},
			CorrectIndex: 0,
			Rationale:    fmt.Sprintf("%s is related to astronomy and space science.", topicName),
		},
		{
			ID:     2,
			Prompt: fmt.Sprintf("Why is %s important to study?", topicName),
			Options: []string{
				"It helps us understand the universe",
				"It affects weather on Earth",
				"It helps with agriculture",
				"It improves transportation",
			},
			CorrectIndex: 0,
			Rationale:    fmt.Sprintf("Studying %s helps us better understand the universe and our place in it.", topicName),
		},
		{
			ID:     3,
			Prompt: fmt.Sprintf("How do scientists study %s?", topicName),
			Options: []string{
				"With telescopes and observations",
				"With microscopes only",
				"With submarines",
				"With time machines",
			},
			CorrectIndex: 0,
			Rationale:    fmt.Sprintf("Scientists use telescopes and various observation methods to study %s.", topicName),
		},
	}
}

// replaceFirstFold replaces the first case-insensitive occurrence of old
// in s with new.
func replaceFirstFold(s, old, new string) string {
	idx := indexFold(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}

// replaceAllFold replaces every case-insensitive occurrence of old in s
// with new.
func replaceAllFold(s, old, new string) string {
	if old == "" {
		return s
	}
	var b strings.Builder
	for {
		idx := indexFold(s, old)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		b.WriteString(new)
		s = s[idx+len(old):]
	}
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
