package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *logger
	initOnce     sync.Once
	dynamicLevel zap.AtomicLevel
)

type logger struct {
	zapLogger *zap.Logger
}

// Init настраивает глобальный логгер. Повторные вызовы меняют только уровень.
func Init(levelStr string, asJSON bool) error {
	initOnce.Do(func() {
		dynamicLevel = zap.NewAtomicLevelAt(parseLevel(levelStr))

		encoderCfg := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		var encoder zapcore.Encoder
		if asJSON {
			encoder = zapcore.NewJSONEncoder(encoderCfg)
		} else {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encoderCfg)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), dynamicLevel)
		zapLogger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

		globalLogger = &logger{zapLogger: zapLogger}
	})

	if globalLogger != nil {
		dynamicLevel.SetLevel(parseLevel(levelStr))
	}

	return nil
}

func parseLevel(levelStr string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(levelStr)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// L возвращает глобальный логгер; до Init это no-op логгер.
func L() *logger {
	if globalLogger == nil {
		return &logger{zapLogger: zap.NewNop()}
	}
	return globalLogger
}

// SetNopLogger заменяет глобальный логгер на no-op (для тестов).
func SetNopLogger() {
	globalLogger = &logger{zapLogger: zap.NewNop()}
}

// Sync сбрасывает буферы логгера.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.zapLogger.Sync()
	}
	return nil
}

// With создаёт дочерний логгер с дополнительными полями.
func With(fields ...Field) *logger {
	return L().With(fields...)
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, fields...)
}

// NoopLogger удовлетворяет интерфейсам логгеров платформы и ничего не пишет.
type NoopLogger struct{}

func (NoopLogger) Info(ctx context.Context, msg string, fields ...Field)  {}
func (NoopLogger) Error(ctx context.Context, msg string, fields ...Field) {}
