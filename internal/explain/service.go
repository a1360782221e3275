// Package explain fetches plain-language topic explanations from an LLM
// provider.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/abrar/astrolearn/internal/llm"
)

// Config controls generation parameters for explanations.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation parameters suited to short tutoring
// explanations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service produces topic explanations and freeform answers.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ExplainTopic fetches a beginner-friendly explanation of the named topic.
func (s *Service) ExplainTopic(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("topic name is empty")
	}

	ctx = llm.WithPurpose(ctx, "explain_topic")
	return s.generate(ctx, buildTopicPrompt(topic))
}

// Ask answers a freeform astronomy question.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}

	ctx = llm.WithPurpose(ctx, "ask_question")
	return s.generate(ctx, buildQuestionPrompt(question))
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      prompt,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("fetch explanation: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
