package omm

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/logging"
)

// options holds the Client configuration.
type options struct {
	logger    *zerolog.Logger
	delimiter rune
}

func defaults() *options {
	return &options{
		logger:    &logging.Nop,
		delimiter: constants.DefaultDelimiter,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Option is a function that configures a Client.
type Option func(*options) error

// WithLogger sets the logger for every operation of the client.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "cannot be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithDelimiter sets the snapshot column delimiter.
func WithDelimiter(delimiter rune) Option {
	return func(o *options) error {
		switch delimiter {
		case 0, '\r', '\n', '"', 0xFFFD:
			return errors.NewValidationError("delimiter", string(delimiter), "not a valid column delimiter")
		}
		o.delimiter = delimiter
		return nil
	}
}
