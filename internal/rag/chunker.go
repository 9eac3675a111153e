package rag

// Default chunking parameters for the retrieval index.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultTopK         = 3
)

// ChunkText splits text into fixed-size character chunks with a trailing
// overlap carried into the next chunk. A text shorter than the chunk size
// yields a single chunk; empty text yields none. Overlap is clamped below the
// chunk size so every iteration advances.
func ChunkText(text string, size, overlap int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 5
	}

	var chunks []string
	for start := 0; start < len(text); start = start + size - overlap {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}
