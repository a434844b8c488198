package mockdice

import (
	"sync"
)

// SequenceSource implements dice.Source returning predetermined faces
type SequenceSource struct {
	mu    sync.Mutex
	faces []int
	index int
}

// NewSequenceSource creates a source that yields the faces in order
func NewSequenceSource(faces ...int) *SequenceSource {
	return &SequenceSource{faces: faces}
}

// Intn returns the next face minus one so a roller adding one reproduces it.
// It panics when the sequence is exhausted or a face does not fit n.
func (s *SequenceSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.faces) {
		panic("no more predetermined rolls available")
	}
	face := s.faces[s.index]
	s.index++
	if face < 1 || face > n {
		panic("predetermined roll does not fit die")
	}
	return face - 1
}

// Used reports how many faces were consumed
func (s *SequenceSource) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}
