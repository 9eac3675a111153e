package rag

import (
	"math"
	"sort"
	"sync"
)

// SearchResult is a retrieved chunk with its similarity score.
type SearchResult struct {
	Text  string
	Score float64
}

type document struct {
	text      string
	embedding []float32
}

// VectorStore is an in-memory index of embedded text chunks. It is safe for
// concurrent use; in practice it is written once at pipeline build time and
// read by request handlers afterwards.
type VectorStore struct {
	mu   sync.RWMutex
	docs []document
}

// NewVectorStore returns an empty store.
func NewVectorStore() *VectorStore {
	return &VectorStore{}
}

// Add appends a chunk with its embedding.
func (s *VectorStore) Add(text string, embedding []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, document{text: text, embedding: embedding})
}

// Len reports the number of indexed chunks.
func (s *VectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search returns up to k chunks ranked by cosine similarity to the query
// embedding. Chunks with non-positive similarity are dropped.
func (s *VectorStore) Search(query []float32, k int) []SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]SearchResult, 0, len(s.docs))
	for _, doc := range s.docs {
		score := cosineSimilarity(query, doc.embedding)
		if score > 0 {
			results = append(results, SearchResult{Text: doc.text, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// First returns the texts of the first k indexed chunks, in insertion order.
// Used when retrieval by similarity is unavailable.
func (s *VectorStore) First(k int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k > len(s.docs) {
		k = len(s.docs)
	}
	texts := make([]string, 0, k)
	for _, doc := range s.docs[:k] {
		texts = append(texts, doc.text)
	}
	return texts
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
