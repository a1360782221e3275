package quiz

import "testing"

func TestAstronomyBankWellFormed(t *testing.T) {
	bank := AstronomyBank()
	if len(bank) != 15 {
		t.Fatalf("bank size = %d, want 15", len(bank))
	}

	seen := make(map[int]bool)
	for _, q := range bank {
		if seen[q.ID] {
			t.Errorf("duplicate question ID %d", q.ID)
		}
		seen[q.ID] = true

		if q.Prompt == "" {
			t.Errorf("question %d has empty prompt", q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			t.Errorf("question %d correct index %d out of range", q.ID, q.CorrectIndex)
		}
		if q.Rationale == "" {
			t.Errorf("question %d has empty rationale", q.ID)
		}
	}
}

func TestStandardQuestionsSampling(t *testing.T) {
	got := StandardQuestions(nil, DefaultStandardCount)
	if len(got) != DefaultStandardCount {
		t.Fatalf("got %d questions, want %d", len(got), DefaultStandardCount)
	}

	// Sampling is without replacement.
	seen := make(map[int]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("question %d sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestStandardQuestionsOverRequest(t *testing.T) {
	got := StandardQuestions(nil, 100)
	if len(got) != 15 {
		t.Errorf("over-request returned %d questions, want the whole bank", len(got))
	}

	if got := StandardQuestions(nil, 0); len(got) != 0 {
		t.Errorf("count 0 returned %d questions", len(got))
	}
}
