package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceLevel sits one step below debug and is enabled by passing -v twice.
const TraceLevel = zapcore.DebugLevel - 1

const traceLevelName = "TRACE"

// LevelForVerbosity maps the number of -v flags to a log level.
func LevelForVerbosity(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.InfoLevel
	case verbosity == 1:
		return zapcore.DebugLevel
	default:
		return TraceLevel
	}
}

// NewApplicationLogger constructs a zap logger configured for human-readable console output
// on stderr at the level selected by verbosity.
func NewApplicationLogger(verbosity int) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(LevelForVerbosity(verbosity))
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeLevel = encodeLevel
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	if verbosity <= 0 {
		config.EncoderConfig.LevelKey = ""
	}
	return config.Build()
}

func encodeLevel(level zapcore.Level, encoder zapcore.PrimitiveArrayEncoder) {
	if level == TraceLevel {
		encoder.AppendString(traceLevelName)
		return
	}
	zapcore.CapitalLevelEncoder(level, encoder)
}
