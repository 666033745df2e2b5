// Package equality implements the deep equality engine over sequences of
// structured items.
package equality

import (
	"log/slog"
	"slices"

	"github.com/reglet-dev/arrange/application/validation"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/reglet-dev/arrange/domain/ports"
)

// serviceConfig holds configuration for the Service.
type serviceConfig struct {
	logger    *slog.Logger
	validator ports.SpecValidator
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		logger:    slog.New(slog.DiscardHandler),
		validator: validation.NewSpecValidator(),
	}
}

// ServiceOption configures the Service.
type ServiceOption func(*serviceConfig)

// WithLogger sets the logger used for mismatch diagnostics.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(c *serviceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithValidator replaces the options validator.
func WithValidator(v ports.SpecValidator) ServiceOption {
	return func(c *serviceConfig) {
		if v != nil {
			c.validator = v
		}
	}
}

// Service compares values under a fixed set of EqualOptions. It is safe for
// concurrent use.
type Service struct {
	config  serviceConfig
	options entities.EqualOptions
	m       matcher
}

// NewService validates options and prepares a Service for them.
func NewService(options entities.EqualOptions, opts ...ServiceOption) (*Service, error) {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validator.ValidateEqualOptions(options); err != nil {
		cfg.logger.Debug("rejected equality options", "error", domerrors.Detail(err))
		return nil, err
	}

	options.IgnoreKeys = slices.Clone(options.IgnoreKeys)
	options.IgnoreKeyPatterns = slices.Clone(options.IgnoreKeyPatterns)
	return &Service{config: cfg, options: options, m: newMatcher(options)}, nil
}

var _ ports.EqualityChecker = (*Service)(nil)

// Options returns the options the Service was built with.
func (s *Service) Options() entities.EqualOptions {
	o := s.options
	o.IgnoreKeys = slices.Clone(o.IgnoreKeys)
	o.IgnoreKeyPatterns = slices.Clone(o.IgnoreKeyPatterns)
	return o
}

// Equal reports whether a and b are equivalent.
//
// Two null or absent operands are equal, and exactly one is never equal to
// anything present. Sequences must have the same length; with IgnoreOrder
// every left element must claim a distinct right element. Records must agree
// on their key sets once ignored paths are removed. Cyclic structures are not
// detected.
func (s *Service) Equal(a, b any) bool {
	return s.Diff(a, b) == nil
}

// Diff returns the first difference between a and b, or nil when they are
// equal. Record keys are visited in sorted order, so the result is
// deterministic.
func (s *Service) Diff(a, b any) *entities.Mismatch {
	mm := s.m.diff(entities.FromAny(a), entities.FromAny(b), location{})
	if mm != nil {
		s.config.logger.Debug("values differ", "path", mm.Path, "reason", mm.Reason)
	}
	return mm
}
