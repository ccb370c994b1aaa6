package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"bitbucket.org/kleinnic74/geoangles/consts"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const (
	loggerKey = loggerKeyType("logger")

	memoryLogLines = 2000
)

var (
	rootLogger *zap.Logger
	memory     *memoryLogs

	mutex sync.Mutex
	cores []zapcore.Core
)

func init() {
	devmode := consts.IsDevMode()
	debugFilter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.DebugLevel
	})
	infoFilter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.InfoLevel
	})
	warnOrErrorFilter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.WarnLevel
	})

	memory = NewMemoryLogger(memoryLogLines).(*memoryLogs)
	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	console := zapcore.Lock(os.Stderr)
	if devmode {
		cores = append(cores,
			zapcore.NewCore(consoleEncoder, console, debugFilter),
			zapcore.NewCore(jsonEncoder(), memory, debugFilter))
	} else {
		cores = append(cores,
			zapcore.NewCore(consoleEncoder, console, warnOrErrorFilter),
			zapcore.NewCore(jsonEncoder(), memory, infoFilter))
	}
	rootLogger = zap.New(zapcore.NewTee(cores...))
	rootLogger.With(zap.Bool("devmode", devmode)).Debug("Logging initialized")
}

func jsonEncoder() zapcore.Encoder {
	if consts.IsDevMode() {
		return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
}

// LogToFile additionally writes all logs of level info or higher to the given
// file as JSON lines. Loggers obtained before this call are not affected.
func LogToFile(path string) error {
	logfile, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	mutex.Lock()
	defer mutex.Unlock()
	cores = append(cores, zapcore.NewCore(jsonEncoder(), zapcore.Lock(logfile), zap.NewAtomicLevelAt(zapcore.InfoLevel)))
	rootLogger = zap.New(zapcore.NewTee(cores...))
	return nil
}

// Dump writes the most recent log lines kept in memory to w, newest first if
// reverse is set
func Dump(w io.Writer, reverse bool) error {
	return memory.Export(w, reverse)
}

func root() *zap.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	return rootLogger
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return root()
	}
	return l.(*zap.Logger)
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = root()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func FromWithNameAndFields(ctx context.Context, name string, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...).Named(name)
	ctx = Context(ctx, logger)
	return logger, ctx
}

func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	ctx = Context(ctx, logger)
	return logger, ctx
}
