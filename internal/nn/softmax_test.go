package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathom-ml/fathom/internal/tensor"
)

func TestSoftmax_RowsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sm := NewSoftmax()

	x := tensor.Zeros(5, 7)
	for i := 0; i < 5; i++ {
		for j := 0; j < 7; j++ {
			x.Set(i, j, rng.NormFloat64()*10)
		}
	}

	p := sm.Forward(x)

	for i := 0; i < 5; i++ {
		var sum float64
		for j := 0; j < 7; j++ {
			v := p.At(i, j)
			assert.Greater(t, v, 0.0, "entry (%d,%d) must be positive", i, j)
			assert.LessOrEqual(t, v, 1.0, "entry (%d,%d) must be at most 1", i, j)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "row %d must sum to 1", i)
	}
}

// TestSoftmax_LargeScoresStayFinite exercises the mandatory max-subtraction:
// without it exp(1000) overflows and the row degenerates to NaN.
func TestSoftmax_LargeScoresStayFinite(t *testing.T) {
	sm := NewSoftmax()

	x, err := tensor.FromSlice([]float64{1000, 999, -1000}, 1, 3)
	require.NoError(t, err)

	p := sm.Forward(x)

	assert.False(t, p.HasNonFinite())
	assert.Greater(t, p.At(0, 0), p.At(0, 1))
	var sum float64
	for j := 0; j < 3; j++ {
		sum += p.At(0, j)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

// TestSoftmax_BackwardPassThrough verifies the fused convention: the
// upstream gradient (P - Y)/N is already the gradient with respect to the
// scores, so Backward returns it unchanged.
func TestSoftmax_BackwardPassThrough(t *testing.T) {
	sm := NewSoftmax()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	dP, err := tensor.FromSlice([]float64{0.1, -0.1, -0.2, 0.2}, 2, 2)
	require.NoError(t, err)

	dX := sm.Backward(dP, x)
	assert.Same(t, dP, dX)
}

func TestSoftmax_NoParameters(t *testing.T) {
	assert.Nil(t, NewSoftmax().Parameters())
}
