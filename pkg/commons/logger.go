package commons

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SEPARATOR splits multi-valued option strings (languages, origins, ...).
const SEPARATOR = ","

// Logger is the application-wide logging surface. Implementations wrap zap;
// the interface keeps call sites mockable in tests.
type Logger interface {
	Level() zapcore.Level
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	DPanic(args ...interface{})
	DPanicf(template string, args ...interface{})
	Panic(args ...interface{})
	Panicf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	// Benchmark records how long a named operation took.
	Benchmark(functionName string, duration time.Duration)
	// Tracef logs with any request identity carried on the context.
	Tracef(ctx context.Context, format string, args ...interface{})
	Sync() error
}

type loggerOptions struct {
	name  string
	path  string
	level string
}

// LoggerOption customizes NewApplicationLogger.
type LoggerOption func(*loggerOptions)

// Name sets the service name; it names the rotated log file.
func Name(name string) LoggerOption {
	return func(o *loggerOptions) { o.name = name }
}

// Path sets the directory that receives rotated log files.
func Path(path string) LoggerOption {
	return func(o *loggerOptions) { o.path = path }
}

// Level sets the minimum level ("debug", "info", "warn", "error").
func Level(level string) LoggerOption {
	return func(o *loggerOptions) { o.level = level }
}

type applicationLogger struct {
	sugared *zap.SugaredLogger
	level   zapcore.Level
}

// NewApplicationLogger builds the shared zap logger: console output plus a
// size-rotated file under the configured path.
func NewApplicationLogger(opts ...LoggerOption) (Logger, error) {
	options := &loggerOptions{
		name:  "capture",
		path:  "logs",
		level: "info",
	}
	for _, opt := range opts {
		opt(options)
	}

	level, err := zapcore.ParseLevel(options.level)
	if err != nil {
		return nil, fmt.Errorf("illegal log level %q: %w", options.level, err)
	}

	if err := os.MkdirAll(options.path, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create log directory %q: %w", options.path, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(options.path, options.name+".log"),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileSink, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named(options.name)
	return &applicationLogger{
		sugared: logger.Sugar(),
		level:   level,
	}, nil
}

func (l *applicationLogger) Level() zapcore.Level { return l.level }

func (l *applicationLogger) Debug(args ...interface{})                    { l.sugared.Debug(args...) }
func (l *applicationLogger) Debugf(template string, args ...interface{})  { l.sugared.Debugf(template, args...) }
func (l *applicationLogger) Info(args ...interface{})                     { l.sugared.Info(args...) }
func (l *applicationLogger) Infof(template string, args ...interface{})   { l.sugared.Infof(template, args...) }
func (l *applicationLogger) Warn(args ...interface{})                     { l.sugared.Warn(args...) }
func (l *applicationLogger) Warnf(template string, args ...interface{})   { l.sugared.Warnf(template, args...) }
func (l *applicationLogger) Error(args ...interface{})                    { l.sugared.Error(args...) }
func (l *applicationLogger) Errorf(template string, args ...interface{})  { l.sugared.Errorf(template, args...) }
func (l *applicationLogger) DPanic(args ...interface{})                   { l.sugared.DPanic(args...) }
func (l *applicationLogger) DPanicf(template string, args ...interface{}) { l.sugared.DPanicf(template, args...) }
func (l *applicationLogger) Panic(args ...interface{})                    { l.sugared.Panic(args...) }
func (l *applicationLogger) Panicf(template string, args ...interface{})  { l.sugared.Panicf(template, args...) }
func (l *applicationLogger) Fatal(args ...interface{})                    { l.sugared.Fatal(args...) }
func (l *applicationLogger) Fatalf(template string, args ...interface{})  { l.sugared.Fatalf(template, args...) }

func (l *applicationLogger) Benchmark(functionName string, duration time.Duration) {
	l.sugared.Infof("benchmark: %s took %s", functionName, duration)
}

// traceIDKey is the context key carrying a request/session identity.
type traceIDKey struct{}

// WithTraceID attaches a request or session identity to the context so that
// Tracef can correlate log lines.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

func (l *applicationLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok && id != "" {
		l.sugared.Debugf("[%s] "+format, append([]interface{}{id}, args...)...)
		return
	}
	l.sugared.Debugf(format, args...)
}

func (l *applicationLogger) Sync() error { return l.sugared.Sync() }
