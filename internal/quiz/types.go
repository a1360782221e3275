package quiz

// Question is a single multiple-choice item, produced either by the
// astronomy bank or by the Synthesizer. Immutable after creation.
type Question struct {
	// ID is unique within one quiz batch (1-based, assigned by final
	// position). Not stable across regenerations.
	ID int

	// Prompt is the question text displayed to the learner.
	Prompt string

	// Options is the ordered answer choices. Four for fill-in-the-blank
	// and definition questions, two for true/false.
	Options []string

	// CorrectIndex is the zero-based index of the correct option.
	CorrectIndex int

	// Rationale is shown after the learner answers. May be empty.
	Rationale string
}

// Answer records a single learner response.
type Answer struct {
	QuestionID  int
	ChosenIndex int
	Correct     bool
}

// Result is the immutable scored summary of a completed session.
type Result struct {
	TotalQuestions int
	CorrectCount   int

	// ScorePercent is floor(CorrectCount * 100 / TotalQuestions),
	// or 0 when TotalQuestions is 0.
	ScorePercent int

	Answers []Answer
}

// NewResult derives a Result from the answers of a finished quiz.
func NewResult(totalQuestions int, answers []Answer) *Result {
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}

	percent := 0
	if totalQuestions > 0 {
		percent = correct * 100 / totalQuestions
	}

	copied := make([]Answer, len(answers))
	copy(copied, answers)

	return &Result{
		TotalQuestions: totalQuestions,
		CorrectCount:   correct,
		ScorePercent:   percent,
		Answers:        copied,
	}
}
