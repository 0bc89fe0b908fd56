package storage

// Access is the complete storage-backend contract: element access at a
// linear offset. Offsets outside [0, Len()) panic via the slice bounds
// check of the concrete backend.
type Access[T any] interface {
	// At returns the element at linear offset i.
	At(i int) T

	// SetAt stores v at linear offset i.
	SetAt(i int, v T)

	// Len returns the number of elements the backend holds.
	Len() int
}

// Slice is the canonical in-memory backend: a flat Go slice.
// WrapSlice adopts caller memory without copying, so writes through the
// backend are visible to the caller and vice versa.
type Slice[T any] struct {
	data []T
}

// NewSlice allocates a zeroed backend of n elements.
// Returns ErrBadLength if n < 0.
func NewSlice[T any](n int) (*Slice[T], error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	return &Slice[T]{data: make([]T, n)}, nil
}

// WrapSlice adopts data as backend storage, zero-copy.
func WrapSlice[T any](data []T) *Slice[T] {
	return &Slice[T]{data: data}
}

// At returns the element at linear offset i.
func (s *Slice[T]) At(i int) T { return s.data[i] }

// SetAt stores v at linear offset i.
func (s *Slice[T]) SetAt(i int, v T) { s.data[i] = v }

// Len returns the number of elements.
func (s *Slice[T]) Len() int { return len(s.data) }

// Data exposes the underlying slice, zero-copy. Intended for bulk
// interchange with code outside ndview; mutating it mutates the backend.
func (s *Slice[T]) Data() []T { return s.data }
