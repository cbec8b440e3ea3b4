// Package bitarray provides bit-granular access to caller-owned slices of
// unsigned words, following the MSB pattern, where position 0 is the
// most-significant bit of the first word.
//
// An Array is a view, not a container: it tracks no length and adds no
// bounds checking beyond the one Go performs on the underlying slice. An
// out-of-range position panics.
package bitarray

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Word is the set of word types an Array can be built over.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Array reads and writes single bits in a word slice. The slice stays owned
// by the caller; the Array must not be used after the slice is gone.
type Array[T Word] struct {
	data []T
	size int // bits per word
}

// New returns an Array viewing data.
func New[T Word](data []T) Array[T] {
	return Array[T]{
		data: data,
		size: wordSize[T](),
	}
}

func wordSize[T Word]() int {
	size := 0
	for v := ^T(0); v != 0; v >>= 1 {
		size++
	}
	return size
}

// Get reads the bit at position pos.
func (a Array[T]) Get(pos int) Bit {
	return a.data[pos/a.size]>>a.shift(pos)&1 == 1
}

// Set writes val to the bit at position pos, leaving every other bit of the
// containing word unchanged.
func (a Array[T]) Set(pos int, val Bit) {
	mask := T(1) << a.shift(pos)
	if val {
		a.data[pos/a.size] |= mask
	} else {
		a.data[pos/a.size] &^= mask
	}
}

// At returns a writable reference to the bit at position pos.
func (a Array[T]) At(pos int) Ref[T] {
	return Ref[T]{arr: a, pos: pos}
}

func (a Array[T]) shift(pos int) int {
	return a.size - 1 - pos%a.size
}

// Ref is a reference to a single bit in an Array. It stays valid as long as
// the Array it came from.
type Ref[T Word] struct {
	arr Array[T]
	pos int
}

// Get returns the referenced bit.
func (r Ref[T]) Get() Bit { return r.arr.Get(r.pos) }

// Not returns the negation of the referenced bit without changing it.
func (r Ref[T]) Not() Bit { return !r.arr.Get(r.pos) }

// Set writes a new value to the referenced bit.
func (r Ref[T]) Set(val Bit) { r.arr.Set(r.pos, val) }

// Flip inverts the referenced bit.
func (r Ref[T]) Flip() { r.arr.Set(r.pos, !r.arr.Get(r.pos)) }
