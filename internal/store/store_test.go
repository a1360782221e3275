package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFavoriteInsertAndGet(t *testing.T) {
	repo := openTestStore(t).FavoriteRepo()
	ctx := context.Background()

	// Missing name yields nil, nil.
	fav, err := repo.GetByName(ctx, "Nebulae")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if fav != nil {
		t.Fatal("expected nil for missing favorite")
	}

	in := &Favorite{Name: "Nebulae", Explanation: "Clouds of gas and dust."}
	if err := repo.Insert(ctx, in); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if in.ID == 0 {
		t.Error("expected ID to be filled in")
	}
	if in.DateAdded.IsZero() {
		t.Error("expected DateAdded to be filled in")
	}

	got, err := repo.GetByName(ctx, "Nebulae")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Nebulae" || got.Explanation != "Clouds of gas and dust." {
		t.Errorf("got %+v", got)
	}

	// Duplicate names are rejected by the schema.
	if err := repo.Insert(ctx, &Favorite{Name: "Nebulae", Explanation: "again"}); err == nil {
		t.Error("expected duplicate insert to fail")
	}
}

func TestFavoriteDelete(t *testing.T) {
	repo := openTestStore(t).FavoriteRepo()
	ctx := context.Background()

	fav := &Favorite{Name: "Quasars", Explanation: "Very luminous galactic cores."}
	if err := repo.Insert(ctx, fav); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Delete(ctx, fav.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.GetByName(ctx, "Quasars")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected favorite gone after delete")
	}

	// Deleting a missing ID is not an error.
	if err := repo.Delete(ctx, 9999); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestFavoriteListSortAndFilter(t *testing.T) {
	repo := openTestStore(t).FavoriteRepo()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []Favorite{
		{Name: "black holes", Explanation: "Regions of extreme gravity.", DateAdded: base.Add(2 * time.Hour)},
		{Name: "Andromeda", Explanation: "Our neighboring spiral galaxy.", DateAdded: base},
		{Name: "Comets", Explanation: "Icy bodies with tails near the Sun.", DateAdded: base.Add(time.Hour)},
	}
	for i := range seed {
		if err := repo.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("insert %s: %v", seed[i].Name, err)
		}
	}

	tests := []struct {
		name string
		opts ListOpts
		want []string
	}{
		{"date desc default", ListOpts{}, []string{"black holes", "Comets", "Andromeda"}},
		{"date asc", ListOpts{Sort: SortDateAsc}, []string{"Andromeda", "Comets", "black holes"}},
		{"name asc case-insensitive", ListOpts{Sort: SortNameAsc}, []string{"Andromeda", "black holes", "Comets"}},
		{"name desc", ListOpts{Sort: SortNameDesc}, []string{"Comets", "black holes", "Andromeda"}},
		{"filter by name substring", ListOpts{Query: "hole"}, []string{"black holes"}},
		{"filter is case-insensitive", ListOpts{Query: "GALAXY"}, []string{"Andromeda"}},
		{"filter matches explanation", ListOpts{Query: "sun", Sort: SortNameAsc}, []string{"Comets"}},
		{"filter with no matches", ListOpts{Query: "pulsar"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d favorites, want %d", len(got), len(tt.want))
			}
			for i, fav := range got {
				if fav.Name != tt.want[i] {
					t.Errorf("position %d = %q, want %q", i, fav.Name, tt.want[i])
				}
			}
		})
	}
}

func TestLLMRepoAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.LLMRepo().AppendRequest(ctx, LLMRequestData{
		Provider:     "openrouter",
		Model:        "openai/gpt-oss-20b:free",
		Purpose:      "explain-topic",
		InputTokens:  42,
		OutputTokens: 256,
		LatencyMs:    1200,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM llm_requests").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("logged %d requests, want 1", count)
	}
}

func TestLLMRepoRecentRequests(t *testing.T) {
	repo := openTestStore(t).LLMRepo()
	ctx := context.Background()

	for i, purpose := range []string{"explain_topic", "ask_question", "explain_topic"} {
		err := repo.AppendRequest(ctx, LLMRequestData{
			Provider:    "mock",
			Model:       "mock",
			Purpose:     purpose,
			InputTokens: i,
			Success:     i != 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.RecentRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	// Newest first.
	if got[0].InputTokens != 2 || got[1].InputTokens != 1 {
		t.Errorf("unexpected order: %+v", got)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
	if got[1].Success {
		t.Error("expected second row to record a failure")
	}

	// limit <= 0 falls back to the default and returns everything here.
	all, err := repo.RecentRequests(ctx, 0)
	if err != nil {
		t.Fatalf("recent (default limit): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d rows, want 3", len(all))
	}
}
