package docs

import (
	"testing"
)

func newTestRankedIndex(t *testing.T) *RankedIndex {
	t.Helper()
	ri, err := NewRankedIndex()
	if err != nil {
		t.Fatalf("failed to create ranked index: %v", err)
	}
	t.Cleanup(func() { ri.Close() })
	return ri
}

func Test_RankedIndex_QueryRanksByRelevance(t *testing.T) {
	ri := newTestRankedIndex(t)

	if err := ri.IndexDoc("components/button.md", "button button button component"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ri.IndexDoc("theming/color.md", "color tokens for every component"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hits, err := ri.Query("button", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].RelativePath != "components/button.md" {
		t.Errorf("expected components/button.md, got %s", hits[0].RelativePath)
	}
	if hits[0].Score <= 0 {
		t.Errorf("expected positive score, got %f", hits[0].Score)
	}
}

func Test_RankedIndex_Clear(t *testing.T) {
	ri := newTestRankedIndex(t)

	if err := ri.IndexDoc("a.md", "some content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ri.DocCount() != 1 {
		t.Fatalf("expected 1 document, got %d", ri.DocCount())
	}

	if err := ri.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ri.DocCount() != 0 {
		t.Errorf("expected 0 documents after clear, got %d", ri.DocCount())
	}
}
