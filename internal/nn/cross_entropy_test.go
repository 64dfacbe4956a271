package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/fathom-ml/fathom/internal/tensor"
)

func TestCrossEntropy_ForwardKnownValue(t *testing.T) {
	ce := NewCrossEntropyLoss()

	probs, err := tensor.FromSlice([]float64{
		0.7, 0.2, 0.1,
		0.1, 0.8, 0.1,
	}, 2, 3)
	require.NoError(t, err)
	targets, err := tensor.FromSlice([]float64{
		1, 0, 0,
		0, 1, 0,
	}, 2, 3)
	require.NoError(t, err)

	loss := ce.Forward(probs, targets)
	want := -(math.Log(0.7) + math.Log(0.8)) / 2
	assert.InDelta(t, want, loss, 1e-12)
	assert.GreaterOrEqual(t, loss, 0.0)
}

func TestCrossEntropy_ZeroProbabilityAtTargetPanics(t *testing.T) {
	ce := NewCrossEntropyLoss()

	probs, err := tensor.FromSlice([]float64{0.0, 1.0}, 1, 2)
	require.NoError(t, err)
	targets, err := tensor.FromSlice([]float64{1.0, 0.0}, 1, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { ce.Forward(probs, targets) })
}

func TestCrossEntropy_BackwardIsProbsMinusTargetsOverN(t *testing.T) {
	ce := NewCrossEntropyLoss()

	probs, err := tensor.FromSlice([]float64{
		0.7, 0.3,
		0.4, 0.6,
	}, 2, 2)
	require.NoError(t, err)
	targets, err := tensor.FromSlice([]float64{
		1, 0,
		0, 1,
	}, 2, 2)
	require.NoError(t, err)

	grad := ce.Backward(probs, targets)

	assert.InDelta(t, (0.7-1.0)/2, grad.At(0, 0), 1e-12)
	assert.InDelta(t, 0.3/2, grad.At(0, 1), 1e-12)
	assert.InDelta(t, 0.4/2, grad.At(1, 0), 1e-12)
	assert.InDelta(t, (0.6-1.0)/2, grad.At(1, 1), 1e-12)
}

// TestCrossEntropy_FusedGradient verifies the fused softmax∘cross-entropy
// convention end to end: the analytic gradient (P - Y)/N propagated through
// Softmax.Backward must match a finite-difference gradient of
//
//	L(scores) = CrossEntropy(Softmax(scores), Y)
//
// with respect to the raw scores.
func TestCrossEntropy_FusedGradient(t *testing.T) {
	const (
		n   = 3
		k   = 4
		tol = 1e-6
	)

	rng := rand.New(rand.NewSource(11))
	sm := NewSoftmax()
	ce := NewCrossEntropyLoss()

	scores := make([]float64, n*k)
	for i := range scores {
		scores[i] = rng.NormFloat64()
	}

	targets := tensor.Zeros(n, k)
	for i := 0; i < n; i++ {
		targets.Set(i, rng.Intn(k), 1)
	}

	lossAt := func(flat []float64) float64 {
		x, err := tensor.FromSlice(flat, n, k)
		require.NoError(t, err)
		return ce.Forward(sm.Forward(x), targets)
	}

	numerical := fd.Gradient(nil, lossAt, scores, &fd.Settings{Formula: fd.Central})

	x, err := tensor.FromSlice(scores, n, k)
	require.NoError(t, err)
	probs := sm.Forward(x)
	analytic := sm.Backward(ce.Backward(probs, targets), x)

	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			assert.InDelta(t, numerical[i*k+j], analytic.At(i, j), tol, "gradient at (%d,%d)", i, j)
		}
	}
}
