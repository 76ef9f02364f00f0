package bfvm

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/reusee/taibf/ports"
)

type config struct {
	tapeLength int
	policy     TapePolicy
	eof        EOFMode
	reader     ByteReader
	writer     ByteWriter
	logger     *slog.Logger
}

type Option func(*config) error

func WithTapeLength(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: tape length must be positive, got %d", ErrInvalidConfig, n)
		}
		c.tapeLength = n
		return nil
	}
}

func WithPolicy(policy TapePolicy) Option {
	return func(c *config) error {
		switch policy {
		case FixedTape, GrowableTape:
		default:
			return fmt.Errorf("%w: unknown tape policy %v", ErrInvalidConfig, policy)
		}
		c.policy = policy
		return nil
	}
}

func WithPolicyName(name string) Option {
	return func(c *config) error {
		policy, err := ParseTapePolicy(name)
		if err != nil {
			return err
		}
		c.policy = policy
		return nil
	}
}

func WithEOF(mode EOFMode) Option {
	return func(c *config) error {
		switch mode {
		case EOFFail, EOFZero, EOFKeep:
		default:
			return fmt.Errorf("%w: unknown eof mode %v", ErrInvalidConfig, mode)
		}
		c.eof = mode
		return nil
	}
}

func WithEOFName(name string) Option {
	return func(c *config) error {
		mode, err := ParseEOFMode(name)
		if err != nil {
			return err
		}
		c.eof = mode
		return nil
	}
}

func WithReader(r ByteReader) Option {
	return func(c *config) error {
		if isNil(r) {
			return fmt.Errorf("%w: nil reader", ErrInvalidConfig)
		}
		c.reader = r
		return nil
	}
}

func WithWriter(w ByteWriter) Option {
	return func(c *config) error {
		if isNil(w) {
			return fmt.Errorf("%w: nil writer", ErrInvalidConfig)
		}
		c.writer = w
		return nil
	}
}

// Invalid reports err as a configuration error when the engine is built.
func Invalid(err error) Option {
	return func(*config) error {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
}

// WithLogger enables debug logging of lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return value.IsNil()
	}
	return false
}

func newConfig(options []Option) (*config, error) {
	c := &config{
		tapeLength: DefaultTapeLength,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(c); err != nil {
			return nil, err
		}
	}
	if c.reader == nil {
		c.reader = ports.Stdin()
	}
	if c.writer == nil {
		c.writer = ports.Stdout()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}
