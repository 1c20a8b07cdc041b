package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Logger is the context-aware logger handed to usecases and repositories.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

var global Logger

func SetupLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to setup logger: %v", err))
	}
	return logger
}

// Setup returns an otelzap logger for handlers and middleware, which log
// through Log.Ctx(ctx) so trace context is attached when present.
func Setup() *otelzap.Logger {
	return otelzap.New(SetupLogger())
}

func Init(base *zap.Logger) {
	global = &zapLogger{base: otelzap.New(base)}
}

func GetLogger() Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

type zapLogger struct {
	base *otelzap.Logger
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.base.Ctx(ctx).Info(format(msg, fields...))
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.base.Ctx(ctx).Error(format(msg, fields...))
}

func format(msg string, fields ...interface{}) string {
	if len(fields) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, fmt.Sprint(fields...))
}
