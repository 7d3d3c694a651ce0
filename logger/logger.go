// Package logger holds the process-wide structured logger. Server-side
// layers log through it; the game engine itself never logs.
package logger

import "go.uber.org/zap"

// Log is a no-op until Init is called, so library code and tests can log
// unconditionally.
var Log = zap.NewNop().Sugar()

// Init replaces the no-op logger with a real zap logger. Debug selects the
// human-readable development config.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
