package nn

import (
	"fmt"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// Evaluate computes loss and accuracy for predicted probabilities against
// one-hot targets.
//
// Accuracy is the fraction of rows whose argmax matches the target argmax;
// argmax ties resolve to the lowest class index. Stateless — used by the
// trainer for per-iteration validation metrics and standalone after
// training.
func Evaluate(probs, targets *tensor.Tensor) (loss, accuracy float64) {
	loss = NewCrossEntropyLoss().Forward(probs, targets)
	accuracy = Accuracy(probs, targets)
	return loss, accuracy
}

// Accuracy returns the fraction of rows where the predicted class (row
// argmax of probs) equals the target class (row argmax of targets).
func Accuracy(probs, targets *tensor.Tensor) float64 {
	if !probs.SameShape(targets) {
		panic(fmt.Sprintf("Accuracy: probs shape (%d, %d) vs targets shape (%d, %d)",
			probs.Rows(), probs.Cols(), targets.Rows(), targets.Cols()))
	}

	predicted := probs.ArgmaxRows()
	actual := targets.ArgmaxRows()

	correct := 0
	for i := range predicted {
		if predicted[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predicted))
}
