package treedex

import (
	"fmt"

	"github.com/mwantia/treedex/log"
)

type IndexOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	Capacity      int
}

type IndexOption func(*IndexOptions) error

func newDefaultIndexOptions() *IndexOptions {
	return &IndexOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(logLevel log.LogLevel) IndexOption {
	return func(opts *IndexOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithoutTerminalLog() IndexOption {
	return func(opts *IndexOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) IndexOption {
	return func(opts *IndexOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

// WithCapacity pre-sizes the lookup maps for an expected entry count.
func WithCapacity(hint int) IndexOption {
	return func(opts *IndexOptions) error {
		if hint < 0 {
			return fmt.Errorf("treedex: negative capacity hint %d", hint)
		}

		opts.Capacity = hint
		return nil
	}
}
