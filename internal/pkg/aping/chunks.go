package aping

import "fmt"

// GetChunks splits seq into consecutive chunks of at most size elements.
func GetChunks[T any](seq []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, size)
	}

	chunks := make([][]T, 0, (len(seq)+size-1)/size)
	for idx := 0; idx < len(seq); idx += size {
		end := min(idx+size, len(seq))
		chunks = append(chunks, seq[idx:end:end])
	}

	return chunks, nil
}
