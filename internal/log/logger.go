// Package log contains the Logger shared by services and adapters.
// The Logger is a thin wrapper around zap.SugaredLogger.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around zap.SugaredLogger
type Logger struct {
	*zap.SugaredLogger
}

// Options selects the logger flavour and destination
type Options struct {
	Development bool
	Debug       bool
	// OutputPath is a file path, "stderr" or "stdout". Empty means stderr.
	OutputPath string
}

// NewLogger creates a new Logger instance
func NewLogger(opts Options) (*Logger, error) {
	var config zap.Config
	if opts.Development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	if opts.Debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	output := opts.OutputPath
	if output == "" {
		output = "stderr"
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{zapLogger.Sugar()}, nil
}

// Nop returns a Logger that discards everything
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
