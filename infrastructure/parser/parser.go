// Package parser decodes sort specification and equality option documents
// from YAML, JSON and TOML bytes.
package parser

import (
	"fmt"
	"sync"

	"github.com/reglet-dev/arrange/application/validation"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/reglet-dev/arrange/domain/ports"
	"github.com/reglet-dev/arrange/infrastructure/registry"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// defaultDocuments is shared so compiled schemas are reused across parsers.
var defaultDocuments = sync.OnceValue(func() ports.DocumentValidator {
	return validation.NewDocumentValidator(registry.NewDefaultRegistry())
})

// parserConfig holds configuration for spec parsers.
type parserConfig struct {
	documents ports.DocumentValidator
	specs     ports.SpecValidator
}

// ParserOption configures a spec parser.
type ParserOption func(*parserConfig)

// WithDocumentValidator replaces the schema validator applied to the raw
// document.
func WithDocumentValidator(v ports.DocumentValidator) ParserOption {
	return func(c *parserConfig) {
		if v != nil {
			c.documents = v
		}
	}
}

// WithSpecValidator replaces the validator applied to the decoded structs.
func WithSpecValidator(v ports.SpecValidator) ParserOption {
	return func(c *parserConfig) {
		if v != nil {
			c.specs = v
		}
	}
}

func newParserConfig(opts []ParserOption) parserConfig {
	cfg := parserConfig{specs: validation.NewSpecValidator()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.documents == nil {
		cfg.documents = defaultDocuments()
	}
	return cfg
}

// New returns the parser for format.
func New(format Format, opts ...ParserOption) (ports.SpecParser, error) {
	switch format {
	case FormatYAML:
		return NewYamlSpecParser(opts...), nil
	case FormatJSON:
		return NewJSONSpecParser(opts...), nil
	case FormatTOML:
		return NewTomlSpecParser(opts...), nil
	default:
		return nil, domerrors.NewInvalidArgument("format", "", fmt.Errorf("unsupported document format %q", format))
	}
}

// specParser runs the shared decode pipeline: generic decode, schema
// validation, struct decode, struct validation.
type specParser struct {
	format    Format
	unmarshal func(data []byte, v any) error
	config    parserConfig
}

// ParseSortSpecs decodes a document of the form {specs: [...]}.
func (p *specParser) ParseSortSpecs(data []byte) ([]entities.SortSpec, error) {
	if err := p.check(entities.DocumentKindSortSpecs, "specs", data); err != nil {
		return nil, err
	}

	var doc entities.SortSpecDocument
	if err := p.unmarshal(data, &doc); err != nil {
		return nil, p.decodeError(entities.DocumentKindSortSpecs, err)
	}
	if err := p.config.specs.ValidateSortSpecs(doc.Specs); err != nil {
		return nil, err
	}
	return doc.Specs, nil
}

// ParseEqualOptions decodes equality options. Fields missing from the
// document keep their defaults.
func (p *specParser) ParseEqualOptions(data []byte) (entities.EqualOptions, error) {
	if err := p.check(entities.DocumentKindEqualOptions, "options", data); err != nil {
		return entities.EqualOptions{}, err
	}

	opts := entities.DefaultEqualOptions()
	if err := p.unmarshal(data, &opts); err != nil {
		return entities.EqualOptions{}, p.decodeError(entities.DocumentKindEqualOptions, err)
	}
	if err := p.config.specs.ValidateEqualOptions(opts); err != nil {
		return entities.EqualOptions{}, err
	}
	return opts, nil
}

// check decodes data generically and validates it against the schema of kind.
func (p *specParser) check(kind, argument string, data []byte) error {
	var raw map[string]any
	if err := p.unmarshal(data, &raw); err != nil {
		return p.decodeError(kind, err)
	}
	// An empty document must still be an object.
	var doc any = raw
	if raw == nil {
		doc = map[string]any{}
	}

	result, err := p.config.documents.Validate(kind, doc)
	if err != nil {
		return err
	}
	return validation.FirstError(argument, result)
}

func (p *specParser) decodeError(kind string, err error) error {
	return &domerrors.DecodeError{Format: string(p.format), Kind: kind, Err: err}
}
