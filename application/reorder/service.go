// Package reorder implements the multi-key stable reorder engine.
package reorder

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

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(c *serviceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithValidator replaces the specification validator.
func WithValidator(v ports.SpecValidator) ServiceOption {
	return func(c *serviceConfig) {
		if v != nil {
			c.validator = v
		}
	}
}

// Service sorts items by a list of specifications. It holds no per-call
// state and is safe for concurrent use as long as callers do not mutate
// items during a call.
type Service struct {
	config serviceConfig
}

// NewService creates a new Service.
func NewService(opts ...ServiceOption) *Service {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Service{config: cfg}
}

var _ ports.Reorderer = (*Service)(nil)

// Reorder returns a new slice holding items sorted by specs. The first spec
// is primary and later specs break ties; items equal under every spec keep
// their input order. items is never modified.
func (s *Service) Reorder(items []any, specs []entities.SortSpec) ([]any, error) {
	idx, err := s.Indices(items, specs)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out, nil
}

// Indices returns the stable permutation that sorts items by specs:
// out[i] is the input position of the i-th item in sorted order.
// Specs are validated before any comparison.
func (s *Service) Indices(items []any, specs []entities.SortSpec) ([]int, error) {
	if err := s.config.validator.ValidateSortSpecs(specs); err != nil {
		s.config.logger.Debug("rejected sort specification", "error", domerrors.Detail(err))
		return nil, err
	}

	compiled := compile(specs)

	rows := make([][]cell, len(items))
	idx := make([]int, len(items))
	for i, item := range items {
		idx[i] = i
		row := make([]cell, len(compiled))
		for j, c := range compiled {
			row[j] = c.resolve(item)
		}
		rows[i] = row
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		for j, c := range compiled {
			if r := c.compare(rows[a][j], rows[b][j]); r != 0 {
				return r
			}
		}
		return 0
	})

	s.config.logger.Debug("reordered items", "items", len(items), "specs", len(specs))
	return idx, nil
}
