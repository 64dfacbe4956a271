package nn

import (
	"github.com/fathom-ml/fathom/internal/tensor"
)

// DefaultLeakySlope is the slope applied to negative pre-activations by
// LeakyReLU layers created with NewLeakyReLU.
const DefaultLeakySlope = 0.01

// LeakyReLU is a leaky rectified linear activation.
//
// Applies the element-wise function:
//
//	f(x) = x          if x > 0
//	f(x) = slope·x    otherwise
//
// Unlike plain ReLU it keeps a small gradient on the negative side, which
// avoids dead units during training.
type LeakyReLU struct {
	slope float64
}

// NewLeakyReLU creates a LeakyReLU with DefaultLeakySlope.
func NewLeakyReLU() *LeakyReLU {
	return &LeakyReLU{slope: DefaultLeakySlope}
}

// NewLeakyReLUWithSlope creates a LeakyReLU with the given negative slope.
func NewLeakyReLUWithSlope(slope float64) *LeakyReLU {
	return &LeakyReLU{slope: slope}
}

// Slope returns the negative-side slope.
func (l *LeakyReLU) Slope() float64 {
	return l.slope
}

// Forward applies the activation elementwise.
func (l *LeakyReLU) Forward(x *tensor.Tensor) *tensor.Tensor {
	return x.Apply(func(v float64) float64 {
		if v > 0 {
			return v
		}
		return l.slope * v
	})
}

// Backward scales the upstream gradient by the activation's derivative.
//
// The derivative mask is evaluated at the pre-activation input x — the same
// tensor that was passed to Forward — never at the output. An entry of x
// that is positive passes dY through unchanged; otherwise dY is scaled by
// the slope.
func (l *LeakyReLU) Backward(dY, x *tensor.Tensor) *tensor.Tensor {
	if !dY.SameShape(x) {
		panic("LeakyReLU.Backward: gradient and input shapes differ")
	}
	out := tensor.Zeros(x.Rows(), x.Cols())
	for i := 0; i < x.Rows(); i++ {
		xr := x.RowView(i)
		gr := dY.RowView(i)
		or := out.RowView(i)
		for j := range xr {
			if xr[j] > 0 {
				or[j] = gr[j]
			} else {
				or[j] = l.slope * gr[j]
			}
		}
	}
	return out
}

// Parameters returns nil: the activation has nothing to train.
func (l *LeakyReLU) Parameters() []*Parameter {
	return nil
}
