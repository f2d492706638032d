package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"

	"linetemp/power"
	"linetemp/quantity"
)

var (
	ErrNotConverged   = errors.New("calculator: newton iteration did not converge")
	ErrZeroDerivative = errors.New("calculator: zero derivative")
	ErrNonFinite      = errors.New("calculator: non-finite heat balance")
	ErrNoBracket      = errors.New("calculator: no decreasing non-positive point above the initial guess")
	ErrUnphysicalRoot = errors.New("calculator: root below ambient or on the rising side of the balance")
)

type Options struct {
	Tolerance float64
	MaxIter   int
}

// Result 每个元素独立判断收敛，已收敛的元素不再更新
type Result struct {
	T          quantity.Vec
	Residual   quantity.Vec
	Iterations []int
	Converged  []bool
}

func (r *Result) unconverged() int {
	n := 0
	for _, ok := range r.Converged {
		if !ok {
			n++
		}
	}
	return n
}

// Newton solves term(T) = 0 element-wise, starting from t0. The whole array
// is evaluated at every step; elements whose last step was below
// opt.Tolerance are frozen. When the iteration cap is reached the partial
// result is returned together with ErrNotConverged.
func Newton(ctx context.Context, term power.Term, t0 quantity.Vec, opt Options) (*Result, error) {
	f, err := term.Value(t0)
	if err != nil {
		return nil, err
	}
	n, err := quantity.Size(t0, f)
	if err != nil {
		return nil, err
	}
	t, err := quantity.Broadcast(t0, n)
	if err != nil {
		return nil, err
	}
	res := &Result{
		T:          t,
		Iterations: make([]int, n),
		Converged:  make([]bool, n),
	}

	for iter := 0; iter < opt.MaxIter && res.unconverged() > 0; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if iter > 0 {
			if f, err = term.Value(t); err != nil {
				return nil, err
			}
		}
		df, err := term.Derivative(t)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if res.Converged[i] {
				continue
			}
			fi, dfi := f.At(i), df.At(i)
			if !isFinite(fi) || !isFinite(dfi) {
				return nil, fmt.Errorf("%w at index %d: T=%g value=%g derivative=%g", ErrNonFinite, i, t[i], fi, dfi)
			}
			if dfi == 0 {
				return nil, fmt.Errorf("%w at index %d: T=%g", ErrZeroDerivative, i, t[i])
			}
			step := fi / dfi
			t[i] -= step
			res.Iterations[i]++
			if math.Abs(step) < opt.Tolerance {
				res.Converged[i] = true
			}
		}
	}

	residual, err := term.Value(t)
	if err != nil {
		return nil, err
	}
	res.Residual = residual
	if k := res.unconverged(); k > 0 {
		return res, fmt.Errorf("%w: %d of %d elements after %d iterations", ErrNotConverged, k, n, opt.MaxIter)
	}
	return res, nil
}

const maxBracketSteps = 64

// BracketRight moves every element of t0 upward, by step, 2*step, 4*step...,
// until the term is non-positive and strictly decreasing there. For a
// concave balance that point lies right of the upper root, and Newton
// started from it descends monotonically onto that root.
func BracketRight(term power.Term, t0 quantity.Vec, step float64) (quantity.Vec, error) {
	if step <= 0 {
		return nil, fmt.Errorf("calculator: bracket step must be positive, got %g", step)
	}
	f, err := term.Value(t0)
	if err != nil {
		return nil, err
	}
	n, err := quantity.Size(t0, f)
	if err != nil {
		return nil, err
	}
	t, err := quantity.Broadcast(t0, n)
	if err != nil {
		return nil, err
	}
	steps := quantity.Full(n, step)

	for k := 0; ; k++ {
		if k > 0 {
			if f, err = term.Value(t); err != nil {
				return nil, err
			}
		}
		df, err := term.Derivative(t)
		if err != nil {
			return nil, err
		}
		done := true
		for i := 0; i < n; i++ {
			fi, dfi := f.At(i), df.At(i)
			if !isFinite(fi) || !isFinite(dfi) {
				return nil, fmt.Errorf("%w at index %d: T=%g value=%g derivative=%g", ErrNonFinite, i, t[i], fi, dfi)
			}
			if fi <= 0 && dfi < 0 {
				continue
			}
			if k == maxBracketSteps {
				return nil, fmt.Errorf("%w at index %d: T=%g", ErrNoBracket, i, t[i])
			}
			t[i] += steps[i]
			steps[i] *= 2
			done = false
		}
		if done {
			return t, nil
		}
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
