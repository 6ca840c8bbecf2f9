// Package stats holds the numeric derivations: the least-squares speed curve,
// the Eddington calculations and the Pareto front helper.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateFit means the point set cannot support the requested degree.
var ErrDegenerateFit = errors.New("not enough points for fit degree")

// Polynomial is a fitted curve as an explicit value: coefficients in
// ascending power order plus Evaluate. Keeping the coefficients out in the
// open makes the model serializable and testable on its own.
type Polynomial struct {
	Coeffs []float64 `json:"coeffs"`
}

// Evaluate sums coeffs[i] * x^i directly, so results are reproducible
// bit-for-bit for a given coefficient set.
func (p Polynomial) Evaluate(x float64) float64 {
	var sum float64
	pow := 1.0
	for _, c := range p.Coeffs {
		sum += c * pow
		pow *= x
	}
	return sum
}

// Degree is len(coeffs)-1, or -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// FitPolynomial computes the ordinary least-squares polynomial of the given
// degree through the (x, y) points, solving the normal equations by Gaussian
// elimination with partial pivoting. Fitting happens once per session; the
// returned Polynomial is pure afterwards.
func FitPolynomial(xs, ys []float64, degree int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("negative fit degree %d", degree)
	}
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("mismatched point slices: %d x, %d y", len(xs), len(ys))
	}
	n := degree + 1
	if len(xs) < n {
		return Polynomial{}, fmt.Errorf("%w: %d points, degree %d", ErrDegenerateFit, len(xs), degree)
	}

	// Power sums sum(x^k) for k up to 2*degree, and moments sum(y * x^k).
	pows := make([]float64, 2*degree+1)
	moms := make([]float64, n)
	for i, x := range xs {
		xp := 1.0
		for k := 0; k <= 2*degree; k++ {
			pows[k] += xp
			if k < n {
				moms[k] += ys[i] * xp
			}
			xp *= x
		}
	}

	// Augmented normal matrix: a[r][c] = sum(x^(r+c)), a[r][n] = moms[r].
	a := make([][]float64, n)
	for r := 0; r < n; r++ {
		a[r] = make([]float64, n+1)
		for c := 0; c < n; c++ {
			a[r][c] = pows[r+c]
		}
		a[r][n] = moms[r]
	}

	coeffs, err := solve(a)
	if err != nil {
		return Polynomial{}, err
	}
	return Polynomial{Coeffs: coeffs}, nil
}

// solve runs Gaussian elimination with partial pivoting on an augmented
// n x (n+1) system.
func solve(a [][]float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("%w: singular normal matrix", ErrDegenerateFit)
		}
		a[col], a[pivot] = a[pivot], a[col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c <= n; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	coeffs := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := a[r][n]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * coeffs[c]
		}
		coeffs[r] = sum / a[r][r]
	}
	return coeffs, nil
}

// Estimator predicts ride duration from the fitted grade-to-speed curve.
type Estimator struct {
	Curve Polynomial `json:"curve"`
}

// Minutes estimates how long a ride of the given distance and climb takes:
// speed predicted at grade feet/miles, then round(60 * miles / speed).
func (e Estimator) Minutes(miles, feet float64) (int, error) {
	if miles <= 0 {
		return 0, fmt.Errorf("non-positive distance %.2f miles", miles)
	}
	speed := e.Curve.Evaluate(feet / miles)
	if !(speed > 0) {
		return 0, fmt.Errorf("predicted speed %.2f mph at grade %.0f ft/mi is not positive", speed, feet/miles)
	}
	return int(math.Round(60 * miles / speed)), nil
}
