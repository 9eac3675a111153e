package rag

import (
	"strings"
	"testing"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		size       int
		overlap    int
		wantChunks int
	}{
		{"empty text", "", 1000, 200, 0},
		{"shorter than chunk size", "short resume text", 1000, 200, 1},
		{"exact chunk size", strings.Repeat("a", 1000), 1000, 200, 1},
		{"two chunks with overlap", strings.Repeat("a", 1500), 1000, 200, 2},
		{"advances despite zero sensible overlap", strings.Repeat("a", 2500), 1000, 200, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkText(tt.text, tt.size, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("got %d chunks, want %d", len(chunks), tt.wantChunks)
			}
			for i, chunk := range chunks {
				if len(chunk) > tt.size {
					t.Errorf("chunk %d has %d chars, exceeds size %d", i, len(chunk), tt.size)
				}
			}
		})
	}
}

func TestChunkTextOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 200) // 2000 chars
	chunks := ChunkText(text, 1000, 200)

	// Chunk starts advance by size-overlap: 0, 800, 1600.
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	// Each chunk starts 200 characters before the previous one ends.
	if got, want := chunks[1][:200], chunks[0][800:]; got != want {
		t.Errorf("overlap mismatch: %q vs %q", got[:20], want[:20])
	}
	if got, want := chunks[2][:200], chunks[1][800:1000]; got != want {
		t.Errorf("overlap mismatch: %q vs %q", got[:20], want[:20])
	}
	if got, want := chunks[2], text[1600:]; got != want {
		t.Errorf("tail chunk is %d chars, want the final 400", len(got))
	}
}

func TestChunkTextInvalidOverlap(t *testing.T) {
	// Overlap >= size must not cause an infinite loop.
	chunks := ChunkText(strings.Repeat("x", 3000), 1000, 1000)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total < 3000 {
		t.Errorf("chunks cover %d chars, want at least the full text", total)
	}
}
