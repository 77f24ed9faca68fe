package factory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Alternates(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 0, s.Next())
	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 0, s.Next())
	assert.Equal(t, 1, s.Next())
}

func TestSequence_PosDoesNotAdvance(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 0, s.Pos())
	assert.Equal(t, 0, s.Pos())
	s.Next()
	assert.Equal(t, 1, s.Pos())
}

func TestSequence_Reset(t *testing.T) {
	s := NewSequence()
	s.Next()
	s.Reset()
	assert.Equal(t, 0, s.Next())
}

func TestSequence_ConcurrentNext(t *testing.T) {
	s := NewSequence()

	const n = 100
	var wg sync.WaitGroup
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counts[i] = s.Next()
		}(i)
	}
	wg.Wait()

	// Every increment-and-read is atomic, so after an even number of calls
	// the positions split exactly in half and the sequence is back at 0.
	zeros := 0
	for _, c := range counts {
		if c == 0 {
			zeros++
		}
	}
	assert.Equal(t, n/2, zeros)
	assert.Equal(t, 0, s.Pos())
}
