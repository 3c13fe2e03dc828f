package manifold_test

import (
	"math"

	"github.com/katalvlaran/mana/manifold"
)

// lineElem is a minimal manifold over the real line, used to exercise the
// generic core with exact arithmetic: the embedding space, the manifold and
// the tangent space all coincide with float64, so distances and
// interpolations carry no rounding beyond IEEE addition. Every finite real
// is on the manifold; NaN is the one invalid embedding point.
type lineElem struct {
	x float64
}

func (lineElem) FromPoint(p float64) lineElem { return lineElem{x: p} }

func (lineElem) Project(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}

	return p
}

func (lineElem) IsValid(p float64, _ float64) bool { return !math.IsNaN(p) }

func (e lineElem) Point() float64 { return e.x }

func (e lineElem) DistanceTo(rhs lineElem) float64 { return math.Abs(e.x - rhs.x) }

func (e lineElem) Interpolate(rhs lineElem, fraction float64) lineElem {
	return lineElem{x: e.x + fraction*(rhs.x-e.x)}
}

func (e lineElem) Log(rhs lineElem) float64 { return rhs.x - e.x }

func (e lineElem) Exp(v float64) lineElem { return lineElem{x: e.x + v} }

// The generic facade needs explicit type arguments (P and T are not
// inferable from a method set); these thin wrappers keep the tests
// readable, the way a concrete manifold package would export aliases.

type lineGeodesic = manifold.Geodesic[lineElem, float64, float64]

type lineChart = manifold.Chart[lineElem, float64, float64]

func lineFromPoint(p float64, opts ...manifold.Option) (lineElem, error) {
	return manifold.FromPoint[lineElem, float64, float64](p, opts...)
}

func lineEqual(a, b lineElem, opts ...manifold.Option) bool {
	return manifold.Equal[lineElem, float64, float64](a, b, opts...)
}

func lineGeo(beg, end lineElem) lineGeodesic {
	return manifold.NewGeodesic[lineElem, float64, float64](beg, end)
}

func lineChartAt(origin lineElem) lineChart {
	return manifold.NewChart[lineElem, float64, float64](origin)
}
