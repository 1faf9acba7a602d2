// Package logger configures logrus for the command line programs.
// Entries are JSON encoded for the optional rotating log file and printed as
// coloured lines on the terminal.
package logger

import (
	"io"
	"path"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options of the process logger
type Options struct {
	// Debug enables debug level and prints every level on the terminal
	Debug bool
	// NoColor disables terminal colours, they are also off when stdout is not a terminal
	NoColor bool
	// File is the rotating log file, empty disables it
	File string
	// Terminal receives the coloured lines, nil disables them
	Terminal io.Writer
}

// Init configures the standard logrus logger
func Init(opts Options) *logrus.Logger {
	l := logrus.StandardLogger()
	Configure(l, opts)
	return l
}

// Configure applies options to a logger
func Configure(l *logrus.Logger, opts Options) {
	if opts.NoColor {
		color.NoColor = true
	}
	level := logrus.InfoLevel
	if opts.Debug {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)
	l.SetReportCaller(true)
	l.SetFormatter(&logrus.JSONFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			function = path.Base(f.Function)
			file = path.Base(f.File) + ":" + strconv.Itoa(f.Line)
			return
		},
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	if opts.File != "" {
		l.SetOutput(NewLogWriter(opts.File))
	} else {
		l.SetOutput(io.Discard)
	}
	l.ReplaceHooks(make(logrus.LevelHooks))
	if opts.Terminal != nil {
		hook := NewTerminalHook(opts.Terminal, logrus.WarnLevel)
		if opts.Debug {
			hook = NewTerminalHook(opts.Terminal, logrus.DebugLevel)
		}
		l.AddHook(hook)
	}
}

// NewLogWriter returns a size rotated log file writer
func NewLogWriter(filepath string) io.Writer {
	return &lumberjack.Logger{
		Filename:  filepath,
		MaxSize:   20,
		Compress:  true,
		LocalTime: true,
	}
}
