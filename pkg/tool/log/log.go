/*
Copyright 2024 The KodeRover Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLevel      = zapcore.InfoLevel
	defaultMaxBackups = 10
)

var (
	logger      *zap.Logger
	sugared     *zap.SugaredLogger
	skipSugared *zap.SugaredLogger
)

// Config controls the process-wide logger. Logs always go to stdout and are
// additionally written as rotated JSON lines when Filename is set.
type Config struct {
	Level       string
	Filename    string
	Development bool
	MaxSize     int // megabytes
	MaxAge      int // days
	MaxBackups  int
}

func Init(cfg *Config) {
	level := defaultLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			panic(err)
		}
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(os.Stdout), level),
	}
	if cfg.Filename != "" {
		rotated := rotatedFile(cfg.Filename, cfg.MaxSize, cfg.MaxBackups, cfg.MaxAge)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotated), level))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.DPanicLevel)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	logger = zap.New(zapcore.NewTee(cores...), opts...)
	sugared = logger.Sugar()
	skipSugared = logger.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	ec.EncodeCaller = shortCaller
	return ec
}

// shortCaller keeps the last three path elements of the caller, e.g. workflow/service/dispatcher.go:84.
func shortCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	parts := strings.Split(caller.String(), "/")
	if len(parts) > 3 {
		parts = parts[len(parts)-3:]
	}
	enc.AppendString(strings.Join(parts, "/"))
}

func rotatedFile(filename string, maxSize, maxBackups, maxAge int) *lumberjack.Logger {
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
	}
}

// NewFileLogger returns a logger writing JSON lines to path, or a nop logger when path is empty.
func NewFileLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotatedFile(path, 0, 0, 0)), zap.DebugLevel)
	return zap.New(core)
}

func SugaredLogger() *zap.SugaredLogger {
	if sugared == nil {
		panic("Logger is not initialized yet!")
	}
	return sugared
}

func helper() *zap.SugaredLogger {
	if skipSugared == nil {
		panic("Logger is not initialized yet!")
	}
	return skipSugared
}

func Debugf(format string, args ...interface{}) {
	helper().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	helper().Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	helper().Errorf(format, args...)
}

// DPanicf panics in development mode and logs at error level otherwise.
func DPanicf(format string, args ...interface{}) {
	helper().DPanicf(format, args...)
}
