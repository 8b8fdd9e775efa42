// Package logger builds the application's zap logger. Human readable output
// goes to stderr; an optional JSON file sink is rotated by lumberjack.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger holds the active zap logger. It starts as a no-op until Init is called.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger that discards everything.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the logger with one writing at the given level ("debug",
// "info", "warn", "error"; case-insensitive, empty means info). When file is
// non-empty, records are also written as JSON to that file with rotation.
func (l *Logger) Init(level, file string) error {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), lvl),
	}

	if strings.TrimSpace(file) != "" {
		w := &lumberjack.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		jsonCfg := zap.NewProductionEncoderConfig()
		jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), zapcore.AddSync(w), lvl))
	}

	l.Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).With(zap.String("app", "comickeeper"))
	return nil
}
