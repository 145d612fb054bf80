package poly

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/nthroot/ntt/field"
)

// Buffer is k row Vectors sharing one contiguous backing array of
// length k*n: row i occupies data[i*n : (i+1)*n].
type Buffer struct {
	ring field.Ring
	k, n int
	data []uint64
}

// NewBuffer allocates a new, owned Buffer of k rows of length n.
func NewBuffer(r field.Ring, k, n int) *Buffer {
	if k <= 0 || n <= 0 {
		panic("poly: NewBuffer requires k > 0 and n > 0")
	}
	return &Buffer{ring: r, k: k, n: n, data: make([]uint64, k*n)}
}

// Rows returns the number of row vectors.
func (b *Buffer) Rows() int { return b.k }

// RowLen returns the length of each row vector.
func (b *Buffer) RowLen() int { return b.n }

// Row returns a borrowed Vector view onto row i; mutations through it
// are visible in the Buffer.
func (b *Buffer) Row(i int) *Vector {
	return NewVectorFromSlice(b.ring, b.data[i*b.n:(i+1)*b.n])
}

// Slice extracts the given row indices into a new, owned Buffer,
// deduplicating and sorting them first so that the result's row order
// is deterministic regardless of the order rows were requested in.
func (b *Buffer) Slice(rows []int) *Buffer {
	sorted := append([]int(nil), rows...)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	out := NewBuffer(b.ring, len(sorted), b.n)
	for i, row := range sorted {
		copy(out.data[i*b.n:(i+1)*b.n], b.data[row*b.n:(row+1)*b.n])
	}
	return out
}

// Zero resets every coefficient in every row to zero.
func (b *Buffer) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// AddAtOffset adds src's coefficients into row dstRow starting at
// column offset, wrapping cyclically: src[i] is added into column
// (offset+i) mod RowLen().
func (b *Buffer) AddAtOffset(dstRow int, src *Vector, offset int) {
	row := b.Row(dstRow)
	n := b.n
	for i := 0; i < src.Len(); i++ {
		j := (offset + i) % n
		row.data[j] = b.ring.Add(row.data[j], src.data[i])
	}
}

// Dump renders every row as a space-separated line of decimal
// coefficients, for debugging and test failure output.
func (b *Buffer) Dump() string {
	var sb strings.Builder
	for i := 0; i < b.k; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		row := b.Row(i)
		for j := 0; j < row.Len(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatUint(row.At(j), 10))
		}
	}
	return sb.String()
}
