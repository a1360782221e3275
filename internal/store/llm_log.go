package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestData captures one LLM API call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRepo provides access to the LLM request log.
type LLMRepo interface {
	// AppendRequest records an LLM API call.
	AppendRequest(ctx context.Context, data LLMRequestData) error

	// RecentRequests returns the newest limit log rows, most recent
	// first.
	RecentRequests(ctx context.Context, limit int) ([]LLMRequest, error)
}

type llmRepo struct {
	db *sql.DB
}

func (r *llmRepo) AppendRequest(ctx context.Context, data LLMRequestData) error {
	success := 0
	if data.Success {
		success = 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
			(timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UnixMilli(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// LLMRequest is a logged request row.
type LLMRequest struct {
	ID        int64
	Timestamp time.Time
	LLMRequestData
}

// RecentRequests returns the newest limit rows from the request log,
// most recent first. limit <= 0 means a default of 50.
func (r *llmRepo) RecentRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message
		FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequest
	for rows.Next() {
		var (
			req     LLMRequest
			ts      int64
			success int
		)
		if err := rows.Scan(&req.ID, &ts, &req.Provider, &req.Model, &req.Purpose,
			&req.InputTokens, &req.OutputTokens, &req.LatencyMs, &success, &req.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		req.Timestamp = time.UnixMilli(ts)
		req.Success = success != 0
		out = append(out, req)
	}
	return out, rows.Err()
}
