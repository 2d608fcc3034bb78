package answer

import (
	"testing"

	"github.com/kailas-cloud/studentnest/internal/domain/faq"
)

func testRecord(id string) faq.Record {
	return faq.Reconstruct(id, "q"+id, "a"+id, faq.Academic, nil)
}

func TestSingle_ClampsScore(t *testing.T) {
	r := Single(NewCandidate(testRecord("1"), 185))
	if r.Kind() != KindSingle {
		t.Fatalf("Kind() = %q", r.Kind())
	}
	best, ok := r.Best()
	if !ok {
		t.Fatal("Best() = false")
	}
	if best.Score() != 100 {
		t.Errorf("Score() = %d, want 100", best.Score())
	}
	if r.RelevancePercent() != 100 {
		t.Errorf("RelevancePercent() = %d", r.RelevancePercent())
	}
}

func TestSingle_KeepsLowScore(t *testing.T) {
	r := Single(NewCandidate(testRecord("1"), 35))
	best, _ := r.Best()
	if best.Score() != 35 || r.RelevancePercent() != 35 {
		t.Errorf("score = %d, percent = %d", best.Score(), r.RelevancePercent())
	}
}

func TestSynthesized(t *testing.T) {
	cands := []Candidate{
		NewCandidate(testRecord("1"), 15),
		NewCandidate(testRecord("2"), 10),
	}
	r := Synthesized(cands, "text")
	cands[0] = NewCandidate(testRecord("x"), 0)

	if r.Kind() != KindSynthesized {
		t.Fatalf("Kind() = %q", r.Kind())
	}
	got := r.Candidates()
	if len(got) != 2 || got[0].Record().ID() != "1" {
		t.Errorf("Candidates() = %v", got)
	}
	if r.Text() != "text" {
		t.Errorf("Text() = %q", r.Text())
	}
	if r.RelevancePercent() != 0 {
		t.Errorf("RelevancePercent() = %d, want 0", r.RelevancePercent())
	}
}

func TestNone(t *testing.T) {
	r := None()
	if r.Kind() != KindNone {
		t.Errorf("Kind() = %q", r.Kind())
	}
	if _, ok := r.Best(); ok {
		t.Error("Best() = true for none")
	}
	if len(r.Candidates()) != 0 {
		t.Error("Candidates() not empty")
	}
}
