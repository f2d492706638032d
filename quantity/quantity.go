// Package quantity 提供标量或等长数组形式的物理量，以及逐元素广播运算。
//
// 长度为 1 的 Vec 视为标量，可以与任意长度的数组组合；两个非标量参与同一次
// 计算时长度必须相同，否则返回 *ShapeError。
package quantity

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch 广播失败
var ErrShapeMismatch = errors.New("quantity: shape mismatch")

// ShapeError records the lengths of the operands that could not be broadcast.
type ShapeError struct {
	Lengths []int
}

func (e *ShapeError) Error() string {
	parts := make([]string, len(e.Lengths))
	for i, l := range e.Lengths {
		parts[i] = fmt.Sprint(l)
	}
	return fmt.Sprintf("quantity: cannot broadcast lengths [%s]", strings.Join(parts, " "))
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Vec 标量 (len 1) 或数组
type Vec []float64

func Scalar(v float64) Vec {
	return Vec{v}
}

func Of(vs ...float64) Vec {
	out := make(Vec, len(vs))
	copy(out, vs)
	return out
}

// Full returns an array of length n filled with v.
func Full(n int, v float64) Vec {
	out := make(Vec, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func (v Vec) Len() int {
	return len(v)
}

func (v Vec) IsScalar() bool {
	return len(v) == 1
}

// At 标量对任意下标都返回唯一的元素
func (v Vec) At(i int) float64 {
	if len(v) == 1 {
		return v[0]
	}
	return v[i]
}

// Float returns the first element, or 0 for an empty Vec.
func (v Vec) Float() float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Slice returns elements [lo, hi) of an array. A scalar returns itself.
func (v Vec) Slice(lo, hi int) Vec {
	if len(v) == 1 {
		return v
	}
	return v[lo:hi]
}

// Size 计算广播后的长度
func Size(vs ...Vec) (int, error) {
	n := 1
	array := false
	for _, v := range vs {
		if len(v) == 1 {
			continue
		}
		if !array {
			n = len(v)
			array = true
			continue
		}
		if len(v) != n {
			return 0, shapeError(vs)
		}
	}
	return n, nil
}

func shapeError(vs []Vec) error {
	lengths := make([]int, len(vs))
	for i, v := range vs {
		lengths[i] = len(v)
	}
	return &ShapeError{Lengths: lengths}
}

// Broadcast expands v to length n.
func Broadcast(v Vec, n int) (Vec, error) {
	if len(v) == n {
		return v.Clone(), nil
	}
	if len(v) != 1 {
		return nil, &ShapeError{Lengths: []int{len(v), n}}
	}
	return Full(n, v[0]), nil
}

func Map(f func(a float64) float64, a Vec) Vec {
	out := make(Vec, len(a))
	for i, x := range a {
		out[i] = f(x)
	}
	return out
}

func Map2(f func(a, b float64) float64, a, b Vec) (Vec, error) {
	n, err := Size(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := range out {
		out[i] = f(a.At(i), b.At(i))
	}
	return out, nil
}

// MapN 多个参数的逐元素计算，f 的参数顺序与 vs 相同
func MapN(f func(xs []float64) float64, vs ...Vec) (Vec, error) {
	n, err := Size(vs...)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	xs := make([]float64, len(vs))
	for i := range out {
		for k, v := range vs {
			xs[k] = v.At(i)
		}
		out[i] = f(xs)
	}
	return out, nil
}

func Add(a, b Vec) (Vec, error) {
	if len(a) == len(b) {
		out := make(Vec, len(a))
		floats.AddTo(out, a, b)
		return out, nil
	}
	return Map2(func(x, y float64) float64 { return x + y }, a, b)
}

func Sub(a, b Vec) (Vec, error) {
	if len(a) == len(b) {
		out := make(Vec, len(a))
		floats.SubTo(out, a, b)
		return out, nil
	}
	return Map2(func(x, y float64) float64 { return x - y }, a, b)
}

func Mul(a, b Vec) (Vec, error) {
	if len(a) == len(b) {
		out := make(Vec, len(a))
		floats.MulTo(out, a, b)
		return out, nil
	}
	return Map2(func(x, y float64) float64 { return x * y }, a, b)
}

func Scale(c float64, a Vec) Vec {
	out := make(Vec, len(a))
	floats.ScaleTo(out, c, a)
	return out
}
