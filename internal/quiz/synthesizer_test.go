package quiz

import (
	"strings"
	"testing"
)

// fixedRand makes synthesis deterministic: IntN always picks index 0,
// Bool always returns coin, and Shuffle leaves order untouched.
type fixedRand struct{ coin bool }

func (fixedRand) IntN(n int) int                   { return 0 }
func (r fixedRand) Bool() bool                     { return r.coin }
func (fixedRand) Shuffle(n int, swap func(i, j int)) {}

const marsExplanation = "Mars is a very cold desert world with a thin atmosphere. " +
	"Dust storms on Mars can grow large enough to cover the entire planet for months. " +
	"Scientists study the Martian surface with rovers and orbiting spacecraft."

func TestGenerateStructuralProperties(t *testing.T) {
	s := NewSynthesizer(nil)

	for _, target := range []int{1, 2, 4, 8} {
		got := s.Generate("Mars", marsExplanation, target)

		if len(got) > target {
			t.Fatalf("Generate(target=%d) returned %d questions", target, len(got))
		}
		for i, q := range got {
			if q.ID != i+1 {
				t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
			}
			if q.Prompt == "" {
				t.Errorf("question %d has empty prompt", i)
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("question %d: correct index %d out of range for %d options",
					i, q.CorrectIndex, len(q.Options))
			}
			if len(q.Options) != 2 && len(q.Options) != 4 {
				t.Errorf("question %d has %d options", i, len(q.Options))
			}
		}
	}
}

func TestGenerateFallbackOnSparseInput(t *testing.T) {
	s := NewSynthesizer(nil)

	for _, text := range []string{"", "Too short. No. Tiny!", "    "} {
		for _, target := range []int{1, 4, 10} {
			got := s.Generate("Dark Matter", text, target)
			if len(got) != 3 {
				t.Fatalf("Generate(%q, target=%d) = %d questions, want fixed 3", text, target, len(got))
			}
			for i, q := range got {
				if q.ID != i+1 {
					t.Errorf("fallback question %d has ID %d", i, q.ID)
				}
				if !strings.Contains(q.Prompt, "Dark Matter") {
					t.Errorf("fallback prompt %q does not mention the topic", q.Prompt)
				}
			}
			if got[0].Options[got[0].CorrectIndex] != "Astronomy" {
				t.Errorf("first fallback answer = %q, want Astronomy", got[0].Options[got[0].CorrectIndex])
			}
		}
	}
}

func TestFillInTheBlankShape(t *testing.T) {
	s := NewSynthesizer(fixedRand{})

	got := s.Generate("Mars", marsExplanation, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}

	q := got[0]
	if len(q.Options) != 4 {
		t.Fatalf("fill-in-the-blank question has %d options, want 4", len(q.Options))
	}
	if !strings.HasPrefix(q.Prompt, "Complete the statement about Mars: ") {
		t.Errorf("unexpected prompt prefix: %q", q.Prompt)
	}
	if !strings.Contains(q.Prompt, blankMarker) {
		t.Errorf("prompt %q missing blank marker", q.Prompt)
	}

	// With IntN pinned to 0 the answer is the first key term of the
	// first sentence.
	want := "Mars"
	if q.Options[q.CorrectIndex] != want {
		t.Errorf("correct option = %q, want %q", q.Options[q.CorrectIndex], want)
	}
	count := 0
	for _, opt := range q.Options {
		if opt == want {
			count++
		}
	}
	if count != 1 {
		t.Errorf("answer appears %d times among options, want exactly 1", count)
	}
}

func TestBuildOptionsExcludesAnswerFromDistractors(t *testing.T) {
	s := NewSynthesizer(fixedRand{})

	options, correctIndex := s.buildOptions("Nebula")
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}
	if options[correctIndex] != "Nebula" {
		t.Errorf("options[%d] = %q, want the answer", correctIndex, options[correctIndex])
	}
	for i, opt := range options {
		if i != correctIndex && strings.EqualFold(opt, "Nebula") {
			t.Errorf("distractor %q duplicates the answer", opt)
		}
	}
}

func TestClassifyTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  topicCategory
	}{
		{"Black Holes", categoryBlackHole},
		{"supermassive black hole", categoryBlackHole},
		{"Planets", categoryPlanet},
		{"Exoplanets", categoryPlanet},
		{"Stars", categoryStar},
		{"Neutron Star", categoryStar},
		{"Dark Matter", categoryGeneric},
		{"", categoryGeneric},
	}

	for _, tt := range tests {
		if got := classifyTopic(tt.topic); got != tt.want {
			t.Errorf("classifyTopic(%q) = %v, want %v", tt.topic, got, tt.want)
		}
	}
}

func TestDefinitionQuestions(t *testing.T) {
	if got := definitionQuestions("Stars", 0); got != nil {
		t.Errorf("count 0 should yield nothing, got %v", got)
	}

	got := definitionQuestions("Stars", 2)
	if len(got) != 1 {
		t.Fatalf("expected exactly one definition question, got %d", len(got))
	}
	q := got[0]
	if q.Prompt != "What process powers stars according to the explanation?" {
		t.Errorf("unexpected star prompt: %q", q.Prompt)
	}
	if q.Options[q.CorrectIndex] != "Nuclear fusion" {
		t.Errorf("star answer = %q", q.Options[q.CorrectIndex])
	}

	generic := definitionQuestions("Cosmic Microwave Background", 1)[0]
	if !strings.Contains(generic.Prompt, "Cosmic Microwave Background") {
		t.Errorf("generic prompt %q does not name the topic", generic.Prompt)
	}
	if generic.CorrectIndex != 0 {
		t.Errorf("generic correct index = %d, want 0", generic.CorrectIndex)
	}
}

func TestTrueFalseShape(t *testing.T) {
	sentences := []string{"Dust storms on Mars can cover the planet"}

	s := NewSynthesizer(fixedRand{coin: true})
	got := s.trueFalse("Mars", sentences, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	for _, q := range got {
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			t.Fatalf("true/false options = %v", q.Options)
		}
		if q.CorrectIndex != 0 {
			t.Errorf("true statement correct index = %d, want 0", q.CorrectIndex)
		}
		if q.Prompt != "True or False: Dust storms on Mars can cover the planet" {
			t.Errorf("unexpected prompt %q", q.Prompt)
		}
	}

	s = NewSynthesizer(fixedRand{coin: false})
	got = s.trueFalse("Mars", sentences, 1)
	if got[0].CorrectIndex != 1 {
		t.Errorf("false statement correct index = %d, want 1", got[0].CorrectIndex)
	}

	if got := s.trueFalse("Mars", nil, 3); len(got) != 0 {
		t.Errorf("empty sentence list should yield nothing, got %d", len(got))
	}
}

func TestNegate(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{
			name:     "first matching rule wins",
			sentence: "Jupiter is a very large and hot planet",
			want:     "Jupiter is a very small and hot planet",
		},
		{
			name:     "case-insensitive match",
			sentence: "The Sun is Hot",
			want:     "The Sun is cold",
		},
		{
			name:     "all occurrences replaced",
			sentence: "a bright star and a bright nebula",
			want:     "a dim star and a dim nebula",
		},
		{
			name:     "no rule applies",
			sentence: "Neptune orbits far from the Sun",
			want:     "This statement about Neptune is incorrect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := negate(tt.sentence, "Neptune"); got != tt.want {
				t.Errorf("negate(%q) = %q, want %q", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestReplaceFirstFold(t *testing.T) {
	got := replaceFirstFold("Gravity shapes gravity wells", "gravity", blankMarker)
	want := "______ shapes gravity wells"
	if got != want {
		t.Errorf("replaceFirstFold = %q, want %q", got, want)
	}

	if got := replaceFirstFold("nothing here", "absent", "x"); got != "nothing here" {
		t.Errorf("no-match should return input unchanged, got %q", got)
	}
}
