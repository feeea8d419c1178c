package fisher

import (
	"math"

	"github.com/arolen/nchypergeo/fac"
)

// Table is a contiguous window of unnormalized PMF values centered on the
// mode, built via the forward/backward ratio recurrence from spec.md §4.2.
// Values[i] corresponds to x = First+i; Values is normalized so that
// sum(Values) == Sum, and dividing by Sum yields true probabilities.
type Table struct {
	Values            []float64
	First, Last       int
	Sum               float64
	RecommendSampling bool // true when the table covers the whole support cheaply
}

// MakeTable builds the PMF table described above, centered on Mode, and
// cut where the forward/backward ratio falls below cutoff = 0.01*accuracy.
func (d *Dist) MakeTable() Table {
	p := d.params
	mode := d.Mode()
	l := float64(p.M1 + p.Draws - p.Total())
	m, n := float64(p.M1), float64(p.Draws)
	odds := p.Odds
	cutoff := 0.01 * p.Accuracy

	forward := []float64{1}
	cur := 1.0
	for x := mode; x < p.XMax(); x++ {
		xf := float64(x)
		ratio := ((m - xf) * (n - xf) * odds) / ((xf + 1) * (xf + 1 - l))
		cur *= ratio
		if cur < cutoff {
			break
		}
		forward = append(forward, cur)
	}

	var backward []float64
	cur = 1.0
	for x := mode; x > p.XMin(); x-- {
		xf := float64(x)
		// Inverse of the forward ratio evaluated at x-1.
		ratio := (xf * (xf - l)) / ((m - xf + 1) * (n - xf + 1) * odds)
		cur *= ratio
		if cur < cutoff {
			break
		}
		backward = append(backward, cur)
	}

	first := mode - len(backward)
	last := mode + len(forward) - 1

	values := make([]float64, 0, last-first+1)
	sum := 0.0
	for i := len(backward) - 1; i >= 0; i-- {
		values = append(values, backward[i])
		sum += backward[i]
	}
	for _, v := range forward {
		values = append(values, v)
		sum += v
	}

	return Table{
		Values:            values,
		First:             first,
		Last:              last,
		Sum:               sum,
		RecommendSampling: last-first+1 == p.XMax()-p.XMin()+1,
	}
}

// tableLengthCapFloor is the full-support length below which
// DesiredTableLength skips the NumSD(accuracy)*sigma cap entirely: a small
// support is cheap to cover in full, and computing Moments just to shrink
// it further is wasted work.
const tableLengthCapFloor = 200

// DesiredTableLength implements the MaxLength == 0 contract from
// spec.md §4.2: return either the full support length, or
// round(NumSD(accuracy) * sigma) if that is shorter, and only when the full
// support exceeds tableLengthCapFloor.
func (d *Dist) DesiredTableLength() int {
	p := d.params
	fullSupport := p.XMax() - p.XMin() + 1
	if fullSupport <= tableLengthCapFloor {
		return fullSupport
	}

	_, variance := d.Moments()
	sigma := math.Sqrt(variance)
	bySD := int(math.Round(fac.NumSD(p.Accuracy) * sigma))

	if bySD > 0 && bySD < fullSupport {
		return bySD
	}
	return fullSupport
}
