package config

import (
	"errors"
	"fmt"
	"time"
)

// levels follow zapcore.Level numbering
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("%w: %d, expected %d..%d", ErrInvalidLogLevel, c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return errors.New("log time format is empty")
	}
	// a layout without any reference component renders every timestamp the same
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400*400+3661, 0).UTC().Format(c.TimeFormat) {
		return fmt.Errorf("log time format %q has no time fields", c.TimeFormat)
	}
	return nil
}
