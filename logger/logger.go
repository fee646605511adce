// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logger provides a thin front
// for the zap logging library.
//
// By default the logger discards all messages,
// an application that wants the messages
// must call Init.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLog = zap.NewNop()

// Init initializes the logger
// to write to the standard error
// all messages at the given level or above.
func Init(level zapcore.Level) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	config.EncoderConfig = encoderConfig

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	zapLog = l
	return nil
}

// Debug logs a message at the debug level.
func Debug(message string, fields ...zap.Field) {
	zapLog.Debug(message, fields...)
}

// Error logs a message at the error level.
func Error(message string, fields ...zap.Field) {
	zapLog.Error(message, fields...)
}

// Info logs a message at the info level.
func Info(message string, fields ...zap.Field) {
	zapLog.Info(message, fields...)
}

// Warn logs a message at the warning level.
func Warn(message string, fields ...zap.Field) {
	zapLog.Warn(message, fields...)
}

// Sync flushes any buffered log message.
func Sync() error {
	return zapLog.Sync()
}
