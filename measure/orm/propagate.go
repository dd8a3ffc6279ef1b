package orm

import "math"

// Uncertainty returns the first-order uncertainty of R = ab/ac given
// independent errors eb on ab and ec on ac:
//
//	sqrt(eb^2/ac^2 + ab^2/ac^4 * ec^2)
//
// It returns 0 when ac is 0, matching the response matrix zero fill.
func Uncertainty(ab, ac, eb, ec float64) float64 {
	if ac == 0 {
		return 0
	}
	ac2 := ac * ac
	return math.Sqrt(eb*eb/ac2 + ab*ab/(ac2*ac2)*ec*ec)
}

// PropagateErrors returns the uncertainty matrix of resp. Devices missing
// from errs count as error-free.
func PropagateErrors(resp *ResponseMatrix, errs ErrorTable) *Matrix {
	out := NewMatrix(resp.Values.Rows, resp.Values.Cols)
	if out.Empty() {
		return out
	}

	ab := resp.SensorAmp.Dense()
	ac := resp.ActuatorAmp.Dense()
	out.Dense().Apply(func(i, j int, _ float64) float64 {
		eb := errs.Get(out.Rows[i])
		ec := errs.Get(out.Cols[j])
		return Uncertainty(ab.At(i, j), ac.At(i, j), eb, ec)
	}, ab)
	return out
}
