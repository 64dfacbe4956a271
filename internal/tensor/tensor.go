package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tensor is a dense 2-D float64 matrix.
//
// Rows hold examples (or output units), columns hold features (or classes).
// All arithmetic is delegated to gonum's mat.Dense; this type adds the shape
// checks the training engine relies on. Operations that combine tensors with
// incompatible shapes panic: a shape mismatch means the network is
// misconfigured and the run cannot continue.
type Tensor struct {
	data *mat.Dense
}

// Zeros creates an r×c tensor filled with zeros.
func Zeros(r, c int) *Tensor {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("tensor: Zeros: invalid shape (%d, %d)", r, c))
	}
	return &Tensor{data: mat.NewDense(r, c, nil)}
}

// FromSlice creates an r×c tensor from row-major data.
//
// Returns an error if len(data) != r*c.
func FromSlice(data []float64, r, c int) (*Tensor, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("tensor: invalid shape (%d, %d)", r, c)
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("tensor: data length %d does not match shape (%d, %d)", len(data), r, c)
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Tensor{data: mat.NewDense(r, c, d)}, nil
}

// FromDense wraps an existing mat.Dense without copying.
func FromDense(d *mat.Dense) *Tensor {
	return &Tensor{data: d}
}

// Dense returns the underlying mat.Dense.
func (t *Tensor) Dense() *mat.Dense {
	return t.data
}

// Dims returns the row and column counts.
func (t *Tensor) Dims() (r, c int) {
	return t.data.Dims()
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	_, c := t.data.Dims()
	return c
}

// At returns the element at row i, column j.
func (t *Tensor) At(i, j int) float64 {
	return t.data.At(i, j)
}

// Set assigns the element at row i, column j.
func (t *Tensor) Set(i, j int, v float64) {
	t.data.Set(i, j, v)
}

// RowView returns the backing slice for row i.
//
// The slice aliases the tensor's storage; writes through it are visible to
// the tensor. Valid for row-sliced views as well.
func (t *Tensor) RowView(i int) []float64 {
	return t.data.RawRowView(i)
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	var d mat.Dense
	d.CloneFrom(t.data)
	return &Tensor{data: &d}
}

// CopyFrom overwrites t's elements with o's. Shapes must match.
func (t *Tensor) CopyFrom(o *Tensor) {
	mustSameShape("CopyFrom", t, o)
	t.data.Copy(o.data)
}

// SliceRows returns a read-only view of rows [i, k).
//
// The view shares storage with t; it is valid for the lifetime of t.
func (t *Tensor) SliceRows(i, k int) *Tensor {
	r, c := t.data.Dims()
	if i < 0 || k > r || i >= k {
		panic(fmt.Sprintf("tensor: SliceRows: range [%d, %d) out of bounds for %d rows", i, k, r))
	}
	return &Tensor{data: t.data.Slice(i, k, 0, c).(*mat.Dense)}
}

// MatMul returns the matrix product t·o.
func (t *Tensor) MatMul(o *Tensor) *Tensor {
	tr, tc := t.data.Dims()
	or, oc := o.data.Dims()
	if tc != or {
		panic(fmt.Sprintf("tensor: MatMul: incompatible shapes (%d, %d) x (%d, %d)", tr, tc, or, oc))
	}
	out := mat.NewDense(tr, oc, nil)
	out.Mul(t.data, o.data)
	return &Tensor{data: out}
}

// T returns the transpose as a new tensor.
func (t *Tensor) T() *Tensor {
	return &Tensor{data: mat.DenseCopyOf(t.data.T())}
}

// Add returns the elementwise sum t + o. Shapes must match.
func (t *Tensor) Add(o *Tensor) *Tensor {
	mustSameShape("Add", t, o)
	r, c := t.data.Dims()
	out := mat.NewDense(r, c, nil)
	out.Add(t.data, o.data)
	return &Tensor{data: out}
}

// AddRow returns t with the 1×C row tensor o added to every row.
func (t *Tensor) AddRow(o *Tensor) *Tensor {
	r, c := t.data.Dims()
	or, oc := o.data.Dims()
	if or != 1 || oc != c {
		panic(fmt.Sprintf("tensor: AddRow: row shape (%d, %d) does not broadcast over (%d, %d)", or, oc, r, c))
	}
	out := mat.NewDense(r, c, nil)
	row := o.data.RawRowView(0)
	for i := 0; i < r; i++ {
		src := t.data.RawRowView(i)
		dst := out.RawRowView(i)
		for j := 0; j < c; j++ {
			dst[j] = src[j] + row[j]
		}
	}
	return &Tensor{data: out}
}

// Sub returns the elementwise difference t - o. Shapes must match.
func (t *Tensor) Sub(o *Tensor) *Tensor {
	mustSameShape("Sub", t, o)
	r, c := t.data.Dims()
	out := mat.NewDense(r, c, nil)
	out.Sub(t.data, o.data)
	return &Tensor{data: out}
}

// MulElem returns the elementwise product t ∘ o. Shapes must match.
func (t *Tensor) MulElem(o *Tensor) *Tensor {
	mustSameShape("MulElem", t, o)
	r, c := t.data.Dims()
	out := mat.NewDense(r, c, nil)
	out.MulElem(t.data, o.data)
	return &Tensor{data: out}
}

// Scale returns s * t.
func (t *Tensor) Scale(s float64) *Tensor {
	r, c := t.data.Dims()
	out := mat.NewDense(r, c, nil)
	out.Scale(s, t.data)
	return &Tensor{data: out}
}

// Apply returns f applied elementwise.
func (t *Tensor) Apply(f func(v float64) float64) *Tensor {
	r, c := t.data.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, t.data)
	return &Tensor{data: out}
}

// SumRows returns the 1×C column sums of t.
func (t *Tensor) SumRows() *Tensor {
	r, c := t.data.Dims()
	out := mat.NewDense(1, c, nil)
	sums := out.RawRowView(0)
	for i := 0; i < r; i++ {
		row := t.data.RawRowView(i)
		for j := 0; j < c; j++ {
			sums[j] += row[j]
		}
	}
	return &Tensor{data: out}
}

// ArgmaxRows returns, for each row, the index of its maximum element.
// Ties resolve to the lowest index.
func (t *Tensor) ArgmaxRows() []int {
	r, c := t.data.Dims()
	idx := make([]int, r)
	for i := 0; i < r; i++ {
		row := t.data.RawRowView(i)
		best := 0
		for j := 1; j < c; j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		idx[i] = best
	}
	return idx
}

// HasNonFinite reports whether any element is NaN or ±Inf.
func (t *Tensor) HasNonFinite() bool {
	r, c := t.data.Dims()
	for i := 0; i < r; i++ {
		row := t.data.RawRowView(i)
		for j := 0; j < c; j++ {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return true
			}
		}
	}
	return false
}

// SameShape reports whether t and o have identical dimensions.
func (t *Tensor) SameShape(o *Tensor) bool {
	tr, tc := t.data.Dims()
	or, oc := o.data.Dims()
	return tr == or && tc == oc
}

func mustSameShape(op string, a, b *Tensor) {
	if !a.SameShape(b) {
		ar, ac := a.data.Dims()
		br, bc := b.data.Dims()
		panic(fmt.Sprintf("tensor: %s: shape mismatch (%d, %d) vs (%d, %d)", op, ar, ac, br, bc))
	}
}
