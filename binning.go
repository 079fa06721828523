package ej309plot

import (
	"math"
	"sort"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/floats"
)

// DefaultBins is the number of bins of each panel.
const DefaultBins = 100

// Edges returns nbins+1 equal-width bin edges spanning [min(xs), max(xs)].
// An empty sample spans [0, 1]. A constant sample, or one too narrow to
// give strictly increasing edges, is widened around its centre by 0.5 or
// by 1e-9 of its magnitude, whichever is larger. The edges are always
// finite and strictly increasing.
func Edges(xs []float64, nbins int) []float64 {
	if nbins < 1 {
		nbins = DefaultBins
	}
	lo, hi := 0.0, 1.0
	if len(xs) > 0 {
		lo, hi = floats.Min(xs), floats.Max(xs)
	}

	edges := span(make([]float64, nbins+1), lo, hi)
	if !increasing(edges) {
		l, u := widen(lo/2 + hi/2)
		edges = span(edges, l, u)
	}
	return edges
}

// widen returns a finite range around mid wide enough to be split
// into bins.
func widen(mid float64) (l, u float64) {
	d := math.Max(0.5, math.Abs(mid)*1e-9)
	l, u = mid-d, mid+d
	switch {
	case math.IsInf(u, +1):
		u = math.MaxFloat64
		l = u - 2*d
	case math.IsInf(l, -1):
		l = -math.MaxFloat64
		u = l + 2*d
	}
	return l, u
}

// span is floats.Span with the end points pinned to l and u. A range
// whose width overflows is interpolated piecewise instead.
func span(dst []float64, l, u float64) []float64 {
	if math.IsInf(u-l, 0) {
		n := float64(len(dst) - 1)
		for i := range dst {
			t := float64(i) / n
			dst[i] = l*(1-t) + u*t
		}
	} else {
		floats.Span(dst, l, u)
	}
	dst[0], dst[len(dst)-1] = l, u
	return dst
}

func increasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return false
		}
	}
	return true
}

// Hist is a fixed-binning histogram of counts. The last bin is closed,
// so the upper edge itself is counted.
type Hist struct {
	Label  string
	Edges  []float64
	Counts []int

	// H1D mirrors Counts for plotting.
	H1D *hbook.H1D
}

// NewHist returns an empty histogram over the given edges, which must
// be strictly increasing.
func NewHist(label string, edges []float64) *Hist {
	h := &Hist{
		Label:  label,
		Edges:  edges,
		Counts: make([]int, len(edges)-1),
		H1D:    hbook.NewH1DFromEdges(edges),
	}
	h.H1D.Annotation()["name"] = label
	return h
}

// Fill counts every value falling within the edges. Non-finite and
// out-of-range values are ignored.
func (h *Hist) Fill(xs ...float64) {
	for _, x := range xs {
		i := h.Bin(x)
		if i < 0 {
			continue
		}
		h.Counts[i]++
		h.H1D.Fill(h.Edges[i]/2+h.Edges[i+1]/2, 1)
	}
}

// Bin returns the index of the bin holding x, or -1.
func (h *Hist) Bin(x float64) int {
	n := len(h.Counts)
	if math.IsNaN(x) || x < h.Edges[0] || x > h.Edges[n] {
		return -1
	}
	i := sort.Search(n, func(i int) bool { return x < h.Edges[i+1] })
	if i == n {
		i = n - 1
	}
	return i
}

// Entries returns the number of counted values.
func (h *Hist) Entries() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Max returns the largest bin count.
func (h *Hist) Max() int {
	m := 0
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Histogram bins xs over edges computed from xs itself.
func Histogram(label string, xs []float64, nbins int) *Hist {
	h := NewHist(label, Edges(xs, nbins))
	h.Fill(xs...)
	return h
}
