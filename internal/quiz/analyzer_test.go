package quiz

import (
	"reflect"
	"testing"
)

func TestSegmentSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "no terminators",
			text: "a fragment with no sentence terminator at all",
			want: []string{"a fragment with no sentence terminator at all"},
		},
		{
			name: "short fragments dropped",
			text: "Too short. Tiny! No?",
			want: nil,
		},
		{
			name: "mixed terminators",
			text: "Jupiter is the largest planet in our solar system. Wow! Is the Sun a fairly ordinary star? Yes.",
			want: []string{
				"Jupiter is the largest planet in our solar system",
				"Is the Sun a fairly ordinary star",
			},
		},
		{
			name: "boundary length is dropped",
			text: "exactly twenty chars.",
			want: nil,
		},
		{
			name: "whitespace trimmed before length check",
			text: "   Nebulae are clouds of gas and dust in space.   ",
			want: []string{"Nebulae are clouds of gas and dust in space"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentSentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeyTerms(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{
			name:     "stop words and short tokens removed",
			sentence: "The Sun is a hot ball of glowing plasma",
			want:     []string{"ball", "glowing", "plasma"},
		},
		{
			name:     "punctuation stripped from tokens",
			sentence: "Saturn's rings, made of ice particles, shine brightly",
			want:     []string{"Saturns", "rings", "made", "particles", "shine", "brightly"},
		},
		{
			name:     "numeric tokens dropped after stripping",
			sentence: "Earth formed 4600000000 years ago",
			want:     []string{"Earth", "formed", "years"},
		},
		{
			name:     "nothing usable",
			sentence: "it is of the and",
			want:     nil,
		},
		{
			name:     "stop word check is case-insensitive",
			sentence: "WITH gravity THE stars cluster",
			want:     []string{"gravity", "stars", "cluster"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeyTerms(tt.sentence)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeyTerms(%q) = %v, want %v", tt.sentence, got, tt.want)
			}
		})
	}
}
