// Package rigid transports the recorded motion of a reference point to any
// other point of the same rigid body.
package rigid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidMotionRecord is returned for records holding non-finite values
var ErrInvalidMotionRecord = errors.New("invalid motion record")

// Vec is a 3-D vector (mm or rad)
type Vec [3]float64

// Sample is the 6-DOF state of a point at one instant
type Sample struct {
	Time float64
	U    Vec // translation u1, u2, u3
	UR   Vec // rotation vector ur1, ur2, ur3
}

// Record is a time history of samples
type Record []Sample

// Validate checks that every value of the record is finite
func (r Record) Validate() error {
	for i, s := range r {
		values := []float64{s.Time, s.U[0], s.U[1], s.U[2], s.UR[0], s.UR[1], s.UR[2]}
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: sample %d holds %g", ErrInvalidMotionRecord, i, v)
			}
		}
	}
	return nil
}

// RotationMatrix builds the rotation matrix of rotation vector rv with the
// Rodrigues formula R = I + sinθ·K + (1-cosθ)·K². The zero vector gives the
// identity.
func RotationMatrix(rv Vec) *mat.Dense {
	R := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	θ := floats.Norm(rv[:], 2)
	if θ == 0 {
		return R
	}
	kx, ky, kz := rv[0]/θ, rv[1]/θ, rv[2]/θ
	K := mat.NewDense(3, 3, []float64{
		0, -kz, ky,
		kz, 0, -kx,
		-ky, kx, 0,
	})
	var K2 mat.Dense
	K2.Mul(K, K)

	var term mat.Dense
	term.Scale(math.Sin(θ), K)
	R.Add(R, &term)
	term.Scale(1-math.Cos(θ), &K2)
	R.Add(R, &term)
	return R
}

// Rotate applies the rotation vector rv to v
func Rotate(rv, v Vec) Vec {
	var out mat.VecDense
	out.MulVec(RotationMatrix(rv), mat.NewVecDense(3, v[:]))
	return Vec{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// Transport computes the motion of the point at offset from the reference
// point, both taken at their undeformed positions. The translation of every
// sample is R·offset - offset + u; rotations are copied unchanged.
func Transport(rec Record, offset Vec) (Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := (Record{{U: offset}}).Validate(); err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}
	out := make(Record, len(rec))
	for i, s := range rec {
		rotated := Rotate(s.UR, offset)
		out[i] = Sample{Time: s.Time, UR: s.UR}
		for k := range 3 {
			out[i].U[k] = rotated[k] - offset[k] + s.U[k]
		}
	}
	return out, nil
}

// TransportTo computes the motion of target given the undeformed position of
// the reference point ref
func TransportTo(rec Record, ref, target Vec) (Record, error) {
	return Transport(rec, Vec{target[0] - ref[0], target[1] - ref[1], target[2] - ref[2]})
}
