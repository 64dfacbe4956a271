package nn

import (
	"math"
	"math/rand"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// Xavier returns a fanIn×fanOut weight tensor initialized with the
// Xavier/Glorot uniform distribution:
//
//	U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut)))
//
// This keeps activation variance roughly constant across layers.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros(fanIn, fanOut)
	for i := 0; i < fanIn; i++ {
		row := t.RowView(i)
		for j := range row {
			row[j] = (rng.Float64()*2.0 - 1.0) * bound
		}
	}
	return t
}

// Zeros returns an r×c zero tensor. Used for bias initialization.
func Zeros(r, c int) *tensor.Tensor {
	return tensor.Zeros(r, c)
}
