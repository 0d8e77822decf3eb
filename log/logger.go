package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config collects the writer settings for a Logger. The zero value
// logs at Info level to the terminal without a file sink.
type Config struct {
	Level      LogLevel
	File       string
	JSON       bool
	NoColor    bool
	NoTerminal bool
	TimeFormat string
	Rotation   *Rotation
}

// Rotation holds the lumberjack settings applied to the file sink.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func DefaultRotation() *Rotation {
	return &Rotation{
		MaxSize:    128,
		MaxBackups: 5,
		MaxAge:     16,
		Compress:   false,
	}
}

type Logger struct {
	writer io.Writer
	name   string
	cfg    Config
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

func New(name string, cfg Config) *Logger {
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "2006-01-02 15:04:05"
	}
	if cfg.Rotation == nil {
		cfg.Rotation = DefaultRotation()
	}

	l := &Logger{
		name: name,
		cfg:  cfg,
	}
	l.writer = buildWriter(cfg)

	return l
}

func buildWriter(cfg Config) io.Writer {
	var writers []io.Writer

	if !cfg.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.Rotation.MaxSize,
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAge,
			Compress:   cfg.Rotation.Compress,
		})
	}

	if len(writers) == 0 {
		return io.Discard
	}

	return io.MultiWriter(writers...)
}

func (l *Logger) Level() LogLevel {
	return l.cfg.Level
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.cfg.Level {
		return
	}

	timestamp := time.Now().Format(l.cfg.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	if l.cfg.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.name,
			Message:   formattedMsg,
		}

		jsonBytes, _ := json.Marshal(entry)
		fmt.Fprintf(l.writer, "%s\n", jsonBytes)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.name)
		}

		if !l.cfg.NoTerminal && !l.cfg.NoColor {
			fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", level.Color(), prefix, formattedMsg)
		} else {
			fmt.Fprintf(l.writer, "%s %s\n", prefix, formattedMsg)
		}
	}

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}

// Named returns a child logger sharing the parent's writer and settings.
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		writer: l.writer, // Share the same writer
		name:   fmt.Sprintf("%s/%s", l.name, name),
		cfg:    l.cfg,
	}
}
