// Package logger holds the zap logger used across the module. It is
// configured from LOG_LEVEL and LOG_FILE; the level defaults to info and the
// output to stderr.
package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type fileSink struct {
	fd *os.File
}

func (s fileSink) Write(p []byte) (n int, err error) {
	return s.fd.Write(p)
}

func (s fileSink) Sync() error {
	return s.fd.Sync()
}

func getLogLevel() zapcore.Level {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// getFd opens LOG_FILE for appending, falling back to stderr when it is
// unset or cannot be opened.
func getFd() *os.File {
	logPath := os.Getenv("LOG_FILE")
	if logPath == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}

func newLogger() *zap.Logger {
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(
		zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			NameKey:        "logger",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}), &fileSink{fd: getFd()}, getLogLevel())).Named("structname")
}

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(newLogger())
}

// L returns the active logger.
func L() *zap.Logger {
	return current.Load()
}

// Replace swaps the active logger and returns a function restoring the
// previous one.
func Replace(l *zap.Logger) (restore func()) {
	prev := current.Swap(l)
	return func() {
		current.Store(prev)
	}
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}
