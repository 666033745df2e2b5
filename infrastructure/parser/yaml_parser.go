package parser

import (
	"github.com/reglet-dev/arrange/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlSpecParser implements SpecParser for YAML.
type YamlSpecParser struct {
	specParser
}

// NewYamlSpecParser creates a new YamlSpecParser.
func NewYamlSpecParser(opts ...ParserOption) *YamlSpecParser {
	return &YamlSpecParser{specParser{
		format:    FormatYAML,
		unmarshal: yaml.Unmarshal,
		config:    newParserConfig(opts),
	}}
}

// NewJSONSpecParser returns a YAML parser that reports errors as JSON.
// JSON documents are valid YAML.
func NewJSONSpecParser(opts ...ParserOption) *YamlSpecParser {
	p := NewYamlSpecParser(opts...)
	p.format = FormatJSON
	return p
}

var _ ports.SpecParser = (*YamlSpecParser)(nil)
