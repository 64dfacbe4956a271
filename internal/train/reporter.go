package train

import "log"

// Report is the structured record the trainer emits once per iteration.
//
// Validation metrics are recomputed every iteration over the entire
// validation set. That is expensive and intentional: the record exists for
// progress reporting, not for early stopping (the trainer has none).
type Report struct {
	Epoch         int
	Iteration     int
	TrainLoss     float64
	TrainAccuracy float64
	ValLoss       float64
	ValAccuracy   float64
}

// Reporter consumes per-iteration training records. How records are
// rendered — console, log file, metrics endpoint — is up to the
// implementation.
type Reporter interface {
	Report(Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Report)

// Report calls f(r).
func (f ReporterFunc) Report(r Report) {
	f(r)
}

// LogReporter prints one line per iteration through the standard log
// package.
type LogReporter struct {
	Logger *log.Logger // nil means log.Default()
}

// Report logs the record.
func (l *LogReporter) Report(r Report) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("epoch %d iter %d: train loss=%.6f acc=%.4f | val loss=%.6f acc=%.4f",
		r.Epoch, r.Iteration, r.TrainLoss, r.TrainAccuracy, r.ValLoss, r.ValAccuracy)
}
