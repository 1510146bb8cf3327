// Copyright 2024 The vecmin Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package log provides a simple logging interface with levels on top of the
// standard log package. Messages below the current level are discarded.

package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

type Level int

// String follow the fmt.Stringer interface
// returns the string level
func (l Level) String() string {
	if l >= DEBUG && l <= ERROR {
		return levels[l]
	}
	return fmt.Sprintf("[Level(%d)]", l)
}

// ToLevel converts a string, int, or Level to a Level type.
// returns defaultLevel if the conversion fails.
func ToLevel(level any) Level {
	switch v := level.(type) {
	case string:
		return string2Level(v)
	case Level:
		return v
	case int:
		return Level(v)
	default:
		return defaultLevel
	}
}

func string2Level(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warning", "warn":
		return WARN
	case "error", "err":
		return ERROR
	default:
		return defaultLevel
	}
}

var (
	levels = []string{
		"[DEBUG] ",
		"[INFO ] ",
		"[WARN ] ",
		"[ERROR] ",
	}
	defaultFlags  = log.LstdFlags | log.Lshortfile | log.Lmicroseconds
	defaultPrefix = ""
	defaultLevel  = WARN
)

// Logger is a logger interface that provides logging function with levels.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	SetLevel(Level)
	SetOutput(io.Writer)
}

type defaultLogger struct {
	stdLog *log.Logger
	level  Level
}

func (l *defaultLogger) SetOutput(w io.Writer) {
	l.stdLog.SetOutput(w)
}

func (l *defaultLogger) SetLevel(lv Level) {
	l.level = lv
}

func (l *defaultLogger) logf(lv Level, format *string, args ...any) {
	if lv < l.level {
		return
	}
	msg := lv.String()
	if format != nil {
		msg += fmt.Sprintf(*format, args...)
	} else {
		msg += fmt.Sprint(args...)
	}
	_ = l.stdLog.Output(4, msg)
}

func (l *defaultLogger) Error(args ...any) {
	l.logf(ERROR, nil, args...)
}

func (l *defaultLogger) Warn(args ...any) {
	l.logf(WARN, nil, args...)
}

func (l *defaultLogger) Info(args ...any) {
	l.logf(INFO, nil, args...)
}

func (l *defaultLogger) Debug(args ...any) {
	l.logf(DEBUG, nil, args...)
}

func (l *defaultLogger) Errorf(format string, args ...any) {
	l.logf(ERROR, &format, args...)
}

func (l *defaultLogger) Warnf(format string, args ...any) {
	l.logf(WARN, &format, args...)
}

func (l *defaultLogger) Infof(format string, args ...any) {
	l.logf(INFO, &format, args...)
}

func (l *defaultLogger) Debugf(format string, args ...any) {
	l.logf(DEBUG, &format, args...)
}

var logger Logger = &defaultLogger{
	level:  defaultLevel,
	stdLog: log.New(os.Stderr, defaultPrefix, defaultFlags),
}

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel sets the level of logs below which logs will not be output.
// The default log level is WARN.
// Note that this method is not concurrent-safe.
func SetLevel(lv any) {
	logger.SetLevel(ToLevel(lv))
}

// DefaultLogger return the default logger.
func DefaultLogger() Logger {
	return logger
}

// Error calls the default logger's Error method.
func Error(args ...any) {
	logger.Error(args...)
}

// Warn calls the default logger's Warn method.
func Warn(args ...any) {
	logger.Warn(args...)
}

// Info calls the default logger's Info method.
func Info(args ...any) {
	logger.Info(args...)
}

// Debug calls the default logger's Debug method.
func Debug(args ...any) {
	logger.Debug(args...)
}

// Errorf calls the default logger's Errorf method.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Warnf calls the default logger's Warnf method.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Infof calls the default logger's Infof method.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Debugf calls the default logger's Debugf method.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}
