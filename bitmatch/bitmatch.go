// Package bitmatch looks for a fixed bit string (the needle) in a stream of
// single bits, based on the Knuth-Morris-Pratt algorithm. The stream is
// consumed one bit at a time with no buffering and no byte alignment
// assumptions, which suits sync markers and start codes in bit-oriented
// data.
package bitmatch

import (
	"fmt"

	"github.com/framesync/bitmatch/bitarray"
)

// none marks a failure-table slot with no shorter partial match to fall
// back to.
const none = -1

// Matcher is a streaming matcher for one needle. The needle length is fixed
// at construction and the failure table is never rebuilt; only the current
// matched-bit count changes as bits are handled.
//
// A Matcher is not safe for concurrent use. Independent Matchers over
// independent storage are.
type Matcher struct {
	needle bitarray.Array[byte]
	bits   int
	table  []int
	border int // matched count to resume with after a reported match
	k      int // bits of the needle currently matched, 0 <= k < bits
}

// New returns a Matcher for the first bits bits of needle, read MSB first.
// The needle storage is the caller's and must stay valid and unchanged for
// the Matcher's lifetime. New panics if bits is not positive or needle is
// too short to hold it.
func New(needle []byte, bits int) *Matcher {
	if bits <= 0 {
		panic(fmt.Sprintf("bitmatch: needle length %d bits, must be positive", bits))
	}
	if len(needle)*8 < bits {
		panic(fmt.Sprintf("bitmatch: needle storage holds %d bits, %d declared", len(needle)*8, bits))
	}

	m := &Matcher{
		needle: bitarray.New(needle),
		bits:   bits,
		table:  make([]int, bits),
	}
	m.initTable()
	return m
}

// initTable computes the KMP failure table: table[pos] is the matched count
// to fall back to when the haystack bit disagrees with needle bit pos, or
// none when no shorter partial match can absorb the disagreement. Slots
// whose needle bit equals the fallback candidate's inherit the candidate's
// own fallback, so a single fallback step always lands on a needle bit that
// differs from the one that just mismatched.
func (m *Matcher) initTable() {
	m.table[0] = none
	cnd := 0

	for pos := 1; pos < m.bits; pos++ {
		if m.needle.Get(pos) == m.needle.Get(cnd) {
			m.table[pos] = m.table[cnd]
		} else {
			m.table[pos] = cnd
			cnd = m.table[cnd]
			for cnd != none && m.needle.Get(pos) != m.needle.Get(cnd) {
				cnd = m.table[cnd]
			}
		}
		cnd++
	}

	// cnd is now the longest proper prefix of the needle that is also its
	// suffix: the matched count a completed match leaves behind, so that
	// overlapping matches are still reported.
	m.border = cnd
}

// Restart restarts the search by setting the matched-bit count to zero. The
// failure table is untouched.
func (m *Matcher) Restart() {
	m.k = 0
}

// HandleBit handles a single bit of the haystack and reports whether the
// needle is fully matched after this bit.
//
// On a mismatch a single table fallback is taken. The table guarantees the
// fallback slot's needle bit equals the bit just handled (or that no
// partial match survives at all), so one step is always enough on a
// two-letter alphabet.
func (m *Matcher) HandleBit(bit bitarray.Bit) bool {
	if m.needle.Get(m.k) != bit {
		m.k = m.table[m.k]
	}

	if m.k == m.bits-1 {
		m.k = m.border
		return true
	}
	m.k++
	return false
}

// MatchedBits returns the number of needle bits matched right now.
func (m *Matcher) MatchedBits() int {
	return m.k
}

// NeedleLen returns the needle length in bits.
func (m *Matcher) NeedleLen() int {
	return m.bits
}
