package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathom-ml/fathom/internal/nn"
	"github.com/fathom-ml/fathom/internal/tensor"
)

func newScalarParam(t *testing.T, name string, value float64) *nn.Parameter {
	t.Helper()
	v, err := tensor.FromSlice([]float64{value}, 1, 1)
	require.NoError(t, err)
	return nn.NewParameter(name, v)
}

func setScalarGrad(t *testing.T, p *nn.Parameter, g float64) {
	t.Helper()
	grad, err := tensor.FromSlice([]float64{g}, 1, 1)
	require.NoError(t, err)
	p.SetGrad(grad)
}

// TestNesterovSGD_ZeroMomentumIsPlainSGD pins the boundary case: with
// mu = 0 the lookahead terms vanish and the rule is exactly p ← p - lr·g.
func TestNesterovSGD_ZeroMomentumIsPlainSGD(t *testing.T) {
	param := newScalarParam(t, "x", 2.0)
	opt := NewNesterovSGD([]*nn.Parameter{param}, NesterovConfig{LR: 0.1, Momentum: 0.0})

	setScalarGrad(t, param, 1.0)
	opt.Step()

	// x1 = 2.0 - 0.1*1.0 = 1.9
	assert.InDelta(t, 1.9, param.Tensor().At(0, 0), 1e-12)

	setScalarGrad(t, param, 1.0)
	opt.Step()

	// x2 = 1.9 - 0.1*1.0 = 1.8: no velocity carry-over of any kind
	assert.InDelta(t, 1.8, param.Tensor().At(0, 0), 1e-12)
}

// TestNesterovSGD_LookaheadUpdate traces two steps by hand:
//
//	lr = 0.1, mu = 0.9, g = 1 each step, p0 = 1, v0 = 0
//	step 1: v1 = 0.9*0    - 0.1 = -0.10;  p1 = 1.00 + 0.9*(-0.10) - 0.1 = 0.810
//	step 2: v2 = 0.9*-0.1 - 0.1 = -0.19;  p2 = 0.81 + 0.9*(-0.19) - 0.1 = 0.539
func TestNesterovSGD_LookaheadUpdate(t *testing.T) {
	param := newScalarParam(t, "x", 1.0)
	opt := NewNesterovSGD([]*nn.Parameter{param}, NesterovConfig{LR: 0.1, Momentum: 0.9})

	setScalarGrad(t, param, 1.0)
	opt.Step()
	assert.InDelta(t, 0.81, param.Tensor().At(0, 0), 1e-12)
	assert.InDelta(t, -0.1, opt.Velocity(0).At(0, 0), 1e-12)

	setScalarGrad(t, param, 1.0)
	opt.Step()
	assert.InDelta(t, 0.539, param.Tensor().At(0, 0), 1e-12)
	assert.InDelta(t, -0.19, opt.Velocity(0).At(0, 0), 1e-12)
}

func TestNesterovSGD_VelocityPairing(t *testing.T) {
	params := []*nn.Parameter{
		nn.NewParameter("w", tensor.Zeros(3, 4)),
		nn.NewParameter("b", tensor.Zeros(1, 4)),
	}
	opt := NewNesterovSGD(params, NesterovConfig{LR: 0.1})

	for i, p := range params {
		v := opt.Velocity(i)
		assert.True(t, v.SameShape(p.Tensor()), "velocity %d shape", i)
		// Zero-initialized.
		for r := 0; r < v.Rows(); r++ {
			for c := 0; c < v.Cols(); c++ {
				assert.Equal(t, 0.0, v.At(r, c))
			}
		}
	}
}

func TestNesterovSGD_SkipsParamsWithoutGradient(t *testing.T) {
	param := newScalarParam(t, "x", 5.0)
	opt := NewNesterovSGD([]*nn.Parameter{param}, NesterovConfig{LR: 0.1, Momentum: 0.9})

	opt.Step() // no gradient set

	assert.Equal(t, 5.0, param.Tensor().At(0, 0))
	assert.Equal(t, 0.0, opt.Velocity(0).At(0, 0))
}

func TestNesterovSGD_ZeroGrad(t *testing.T) {
	param := newScalarParam(t, "x", 1.0)
	opt := NewNesterovSGD([]*nn.Parameter{param}, NesterovConfig{LR: 0.1})

	setScalarGrad(t, param, 1.0)
	require.NotNil(t, param.Grad())

	opt.ZeroGrad()
	assert.Nil(t, param.Grad())
}

func TestNesterovSGD_DefaultLR(t *testing.T) {
	param := newScalarParam(t, "x", 1.0)
	opt := NewNesterovSGD([]*nn.Parameter{param}, NesterovConfig{})
	assert.Equal(t, 0.01, opt.LR())
}

func TestNesterovSGD_Schedulable(t *testing.T) {
	param := newScalarParam(t, "x", 1.0)
	opt := NewNesterovSGD([]*nn.Parameter{param}, NesterovConfig{LR: 0.1, Momentum: 0.5})

	opt.SetLR(0.05)
	opt.SetMomentum(0.7)
	assert.Equal(t, 0.05, opt.LR())
	assert.Equal(t, 0.7, opt.Momentum())
}
