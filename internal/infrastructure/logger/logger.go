package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger instance
var Log *zap.Logger

// Init initializes the Zap logger with JSON output at the given level
// ("debug", "info", "warn", "error"; anything else means info).
func Init(env, level string) error {
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLevel(level)),
		Development: env == "development",
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	Log, err = config.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(Log)
	return nil
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// Sync flushes any buffered log entries
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// helpers log through a copy that skips their own frame
func skipped() *zap.Logger {
	if Log == nil {
		return nil
	}
	return Log.WithOptions(zap.AddCallerSkip(1))
}

func Info(msg string, fields ...zap.Field) {
	if l := skipped(); l != nil {
		l.Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if l := skipped(); l != nil {
		l.Warn(msg, fields...)
	}
}

func Error(msg string, fields ...zap.Field) {
	if l := skipped(); l != nil {
		l.Error(msg, fields...)
	}
}

func Debug(msg string, fields ...zap.Field) {
	if l := skipped(); l != nil {
		l.Debug(msg, fields...)
	}
}

// Fatal logs and exits the process; without a logger it only exits.
func Fatal(msg string, fields ...zap.Field) {
	if l := skipped(); l != nil {
		l.Fatal(msg, fields...)
	}
	os.Exit(1)
}
