package rag

import (
	"math"
	"testing"
)

func TestVectorStoreSearch(t *testing.T) {
	store := NewVectorStore()
	store.Add("go backend services", []float32{1, 0, 0})
	store.Add("python data pipelines", []float32{0, 1, 0})
	store.Add("frontend react work", []float32{0, 0, 1})
	store.Add("mixed experience", []float32{0.7, 0.7, 0})

	results := store.Search([]float32{1, 0, 0}, 2)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Text != "go backend services" {
		t.Errorf("top result = %q, want the exact-match chunk", results[0].Text)
	}
	if results[1].Text != "mixed experience" {
		t.Errorf("second result = %q, want the partial-match chunk", results[1].Text)
	}
	if results[0].Score < results[1].Score {
		t.Error("results not sorted by descending score")
	}
}

func TestVectorStoreSearchDropsOrthogonal(t *testing.T) {
	store := NewVectorStore()
	store.Add("unrelated", []float32{0, 1})

	results := store.Search([]float32{1, 0}, 3)
	if len(results) != 0 {
		t.Errorf("orthogonal chunks should be dropped, got %v", results)
	}
}

func TestVectorStoreFirst(t *testing.T) {
	store := NewVectorStore()
	store.Add("one", []float32{1})
	store.Add("two", []float32{1})

	got := store.First(5)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("First(5) = %v, want insertion order [one two]", got)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"length mismatch", []float32{1}, []float32{1, 1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}
