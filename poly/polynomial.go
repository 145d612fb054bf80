package poly

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/nthroot/ntt/field"
)

// Polynomial is a sparse degree-to-coefficient map for use outside NTT
// hot loops, such as encoding and debug dumps. Dense Vectors are used
// everywhere performance matters; Polynomial trades density for a
// representation that is cheap to inspect and print.
type Polynomial map[int]uint64

// NewPolynomial returns an empty Polynomial.
func NewPolynomial() Polynomial {
	return make(Polynomial)
}

// Set stores coefficient c at degree d, removing the entry entirely if
// c is zero so that Degree and Terms never see spurious zero entries.
func (p Polynomial) Set(d int, c uint64) {
	if c == 0 {
		delete(p, d)
		return
	}
	p[d] = c
}

// Get returns the coefficient at degree d, or zero if absent.
func (p Polynomial) Get(d int) uint64 {
	return p[d]
}

// Degree returns the highest degree with a non-zero coefficient, or -1
// for the zero polynomial.
func (p Polynomial) Degree() int {
	degree := -1
	for d := range p {
		if d > degree {
			degree = d
		}
	}
	return degree
}

// Terms returns the polynomial's non-zero degrees in ascending order.
func (p Polynomial) Terms() []int {
	terms := make([]int, 0, len(p))
	for d := range p {
		terms = append(terms, d)
	}
	slices.Sort(terms)
	return terms
}

// ToVector evaluates the polynomial's coefficients into a dense Vector
// of length n over r, panicking if any term has degree >= n.
func (p Polynomial) ToVector(r field.Ring, n int) *Vector {
	v := NewVector(r, n)
	for d, c := range p {
		if d < 0 || d >= n {
			panic(fmt.Sprintf("poly: term of degree %d does not fit in a length-%d vector", d, n))
		}
		v.Set(d, c)
	}
	return v
}

// FromVector builds a sparse Polynomial from a dense Vector's non-zero
// coefficients.
func FromVector(v *Vector) Polynomial {
	p := NewPolynomial()
	for i, c := range v.data {
		if c != 0 {
			p[i] = c
		}
	}
	return p
}

// String renders the polynomial as a sum of "c*x^d" terms in ascending
// degree order, for debug output and test failure messages.
func (p Polynomial) String() string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, d := range terms {
		parts[i] = fmt.Sprintf("%d*x^%d", p[d], d)
	}
	return strings.Join(parts, " + ")
}
