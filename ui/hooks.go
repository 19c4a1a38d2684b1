package ui

import (
	"log/slog"
	"time"
)

// Pacer delays the computer opponent between thinking steps.
type Pacer interface {
	Sleep(d time.Duration)
}

// SleepPacer blocks the calling goroutine.
type SleepPacer struct{}

func (SleepPacer) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// MoveErrorReporter receives rejected moves so they can be shown or recorded.
type MoveErrorReporter interface {
	ReportMoveError(err error)
}

// LogReporter writes rejected moves to a logger at debug level.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) ReportMoveError(err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("move rejected", "err", err)
}
