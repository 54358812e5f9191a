package util

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularMatrix is returned when a matrix has no usable inverse.
var ErrSingularMatrix = errors.New("singular matrix")

// matrices with a 1-norm condition number above this are treated as singular
const conditionLimit = 1e12

// Vector3 is a column 3-vector.
type Vector3[T constraints.Float] [3]T

// Matrix3 is a dense row-major 3x3 matrix. Note first index is the row.
type Matrix3[T constraints.Float] [3][3]T

func MatrixIdentity[T constraints.Float]() Matrix3[T] {
	return Matrix3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func DiagonalMatrix[T constraints.Float](v Vector3[T]) Matrix3[T] {
	return Matrix3[T]{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}

func MatrixVectorMultiply[T constraints.Float](matrix Matrix3[T], vector Vector3[T]) Vector3[T] {
	var res Vector3[T]
	for i := 0; i < 3; i++ {
		res[i] = matrix[i][0]*vector[0] + matrix[i][1]*vector[1] + matrix[i][2]*vector[2]
	}
	return res
}

func MatrixMatrixMultiply[T constraints.Float](left Matrix3[T], right Matrix3[T]) Matrix3[T] {
	var res Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = left[i][0]*right[0][j] + left[i][1]*right[1][j] + left[i][2]*right[2][j]
		}
	}
	return res
}

// MatrixMultiply multiplies the matrices left to right. With no arguments
// the identity is returned.
func MatrixMultiply[T constraints.Float](matrices ...Matrix3[T]) Matrix3[T] {
	res := MatrixIdentity[T]()
	for _, m := range matrices {
		res = MatrixMatrixMultiply(res, m)
	}
	return res
}

func TransposeMatrix[T constraints.Float](matrix Matrix3[T]) Matrix3[T] {
	var res Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[j][i] = matrix[i][j]
		}
	}
	return res
}

func Determinant3x3[T constraints.Float](m Matrix3[T]) T {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// InvertMatrix3x3 inverts m. A matrix with a non-finite or zero
// determinant, or one too ill-conditioned to invert reliably, is rejected
// with ErrSingularMatrix.
func InvertMatrix3x3[T constraints.Float](m Matrix3[T]) (Matrix3[T], error) {
	a, err := conditioned(m)
	if err != nil {
		return Matrix3[T]{}, err
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return Matrix3[T]{}, singular(err)
	}
	return fromDense[T](&inv), nil
}

// SolveVector3 returns x such that m·x = b.
func SolveVector3[T constraints.Float](m Matrix3[T], b Vector3[T]) (Vector3[T], error) {
	a, err := conditioned(m)
	if err != nil {
		return Vector3[T]{}, err
	}

	var x mat.VecDense
	if err := x.SolveVec(a, mat.NewVecDense(3, []float64{float64(b[0]), float64(b[1]), float64(b[2])})); err != nil {
		return Vector3[T]{}, singular(err)
	}
	return Vector3[T]{T(x.AtVec(0)), T(x.AtVec(1)), T(x.AtVec(2))}, nil
}

// conditioned converts m for gonum, rejecting matrices that cannot be
// solved against.
func conditioned[T constraints.Float](m Matrix3[T]) (*mat.Dense, error) {
	det := float64(Determinant3x3(m))
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}

	a := toDense(m)
	if c := mat.Cond(a, 1); math.IsNaN(c) || c > conditionLimit {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingularMatrix, c)
	}
	return a, nil
}

// singular maps gonum's conditioning errors onto ErrSingularMatrix.
func singular(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) || errors.Is(err, mat.ErrSingular) {
		return fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}
	return err
}

func toDense[T constraints.Float](m Matrix3[T]) *mat.Dense {
	data := make([]float64, 0, 9)
	for _, row := range m {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return mat.NewDense(3, 3, data)
}

func fromDense[T constraints.Float](d *mat.Dense) Matrix3[T] {
	var m Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = T(d.At(i, j))
		}
	}
	return m
}

func SumVector[T constraints.Float](v Vector3[T]) T {
	return v[0] + v[1] + v[2]
}
