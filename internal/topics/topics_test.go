package topics

import "testing"

func TestCatalog(t *testing.T) {
	cat := Catalog()
	if len(cat) != 12 {
		t.Fatalf("expected 12 topics, got %d", len(cat))
	}

	seen := make(map[string]bool)
	for i, topic := range cat {
		if topic.ID != i+1 {
			t.Errorf("topic %q: expected ID %d, got %d", topic.Name, i+1, topic.ID)
		}
		if topic.Name == "" {
			t.Errorf("topic %d has empty name", topic.ID)
		}
		if topic.Description == "" {
			t.Errorf("topic %q has empty description", topic.Name)
		}
		if seen[topic.Name] {
			t.Errorf("duplicate topic name %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}

func TestByName(t *testing.T) {
	topic, ok := ByName("Black Holes")
	if !ok {
		t.Fatal("expected to find Black Holes")
	}
	if topic.ID != 1 {
		t.Fatalf("expected ID 1, got %d", topic.ID)
	}

	if _, ok := ByName("Quasars"); ok {
		t.Fatal("did not expect to find Quasars")
	}
}
