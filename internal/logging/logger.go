package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerService is the logging surface injected into clients and usecases.
type LoggerService interface {
	Log(msg string, fields ...zap.Field)
	LogError(msg string, err error, fields ...zap.Field)
	LogWarning(msg string, fields ...zap.Field)
	LogSuccess(msg string, fields ...zap.Field)
}

type zapLogger struct {
	logger *zap.Logger
}

// NewLogger builds a production zap logger at the given level. An
// unparseable level falls back to info rather than failing the run.
func NewLogger(level string, fields ...zap.Field) LoggerService {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger.With(fields...)}
}

// NewNopLogger is for tests and for callers that have nothing to say.
func NewNopLogger() LoggerService {
	return &zapLogger{logger: zap.NewNop()}
}

func (l *zapLogger) Log(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.logger.Info(msg, fields...)
}

func (l *zapLogger) LogError(msg string, err error, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.logger.Error(msg, append(fields, zap.Error(err))...)
}

func (l *zapLogger) LogWarning(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.logger.Warn(msg, fields...)
}

func (l *zapLogger) LogSuccess(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.logger.Info(msg, append(fields, zap.String("status", "success"))...)
}
