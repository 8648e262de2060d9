package logger

import (
	"fmt"
	"os"

	"github.com/metatx/transactions-api/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process logger set by InitLogger.
var Log *zap.Logger

// New builds the logger for stage. Deployed stages (dev, prod) write JSON for
// CloudWatch; anything else writes colored console output.
func New(stage, level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var cfg zap.Config
	if deployed(stage) {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.InitialFields = map[string]interface{}{
			"service": constants.ServiceName,
			"stage":   stage,
		}
		cfg.DisableStacktrace = lvl > zapcore.DebugLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func deployed(stage string) bool {
	return stage == constants.ProdEnvironment || stage == constants.DevEnvironment
}

// InitLogger builds the logger for stage at LOG_LEVEL and installs it as Log and as
// zap's global logger. It panics on an invalid LOG_LEVEL.
func InitLogger(stage string) {
	l, err := New(stage, os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = l
	zap.ReplaceGlobals(l)
}

// OrGlobal returns l when set, then Log, then zap's global logger (a no-op until
// InitLogger runs).
func OrGlobal(l *zap.Logger) *zap.Logger {
	if l != nil {
		return l
	}
	if Log != nil {
		return Log
	}
	return zap.L()
}

func Info(msg string, fields ...zapcore.Field) {
	OrGlobal(nil).Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	OrGlobal(nil).Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	OrGlobal(nil).Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	OrGlobal(nil).Warn(msg, fields...)
}

// Fatal logs at FatalLevel and exits the process.
func Fatal(msg string, fields ...zapcore.Field) {
	OrGlobal(nil).Fatal(msg, fields...)
}

func With(fields ...zapcore.Field) *zap.Logger {
	return OrGlobal(nil).With(fields...)
}

func Sync() error {
	return OrGlobal(nil).Sync()
}
