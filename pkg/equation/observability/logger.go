// Package observability provides observability features for the equation
// directory: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds equation context to a logger.
// Returns a new logger with equation_id and solve_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, 3, "4f0c...")
//	enriched.Info("solving") // includes equation_id, solve_id
func EnrichLogger(logger *slog.Logger, equationID uint64, solveID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.Uint64("equation_id", equationID),
		slog.String("solve_id", solveID),
	)
}

// LogCreate logs creation of a simple equation.
func LogCreate(logger *slog.Logger, equationID uint64, expression string) {
	if logger == nil {
		return
	}
	logger.Info("equation created",
		slog.Uint64("equation_id", equationID),
		slog.String("expression", expression),
	)
}

// LogMerge logs creation of a composite equation.
func LogMerge(logger *slog.Logger, equationID, left, right uint64, op string) {
	if logger == nil {
		return
	}
	logger.Info("equations merged",
		slog.Uint64("equation_id", equationID),
		slog.Uint64("left", left),
		slog.Uint64("right", right),
		slog.String("operator", op),
	)
}

// LogEdit logs a successful expression edit.
func LogEdit(logger *slog.Logger, equationID uint64, from, to string) {
	if logger == nil {
		return
	}
	logger.Info("equation edited",
		slog.Uint64("equation_id", equationID),
		slog.String("from", from),
		slog.String("to", to),
	)
}

// LogDelete logs removal of an equation.
func LogDelete(logger *slog.Logger, equationID uint64) {
	if logger == nil {
		return
	}
	logger.Info("equation deleted",
		slog.Uint64("equation_id", equationID),
	)
}

// LogRejected logs a mutation that failed validation.
// Rejections are the caller's problem, so they log at debug.
func LogRejected(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Debug("equation request rejected",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// LogSolve logs a successful solve.
func LogSolve(logger *slog.Logger, equationID uint64, result float64, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("equation solved",
		slog.Uint64("equation_id", equationID),
		slog.Float64("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSolveError logs a failed solve.
func LogSolveError(logger *slog.Logger, equationID uint64, err error) {
	if logger == nil {
		return
	}
	logger.Warn("equation solve failed",
		slog.Uint64("equation_id", equationID),
		slog.String("error", err.Error()),
	)
}

// LogStoreError logs a persistence failure.
func LogStoreError(logger *slog.Logger, equationID uint64, op string, err error) {
	if logger == nil {
		return
	}
	logger.Error("equation store failed",
		slog.Uint64("equation_id", equationID),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// LogRestore logs a directory rebuilt from persisted records.
func LogRestore(logger *slog.Logger, count int, lastID uint64) {
	if logger == nil {
		return
	}
	logger.Info("equations restored",
		slog.Int("count", count),
		slog.Uint64("last_id", lastID),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
