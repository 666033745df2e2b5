package parser

import (
	"github.com/BurntSushi/toml"
	"github.com/reglet-dev/arrange/domain/ports"
)

// TomlSpecParser implements SpecParser for TOML. Sort specifications are
// written as an array of tables:
//
//	[[specs]]
//	key = "priority"
//	customOrder = ["high", "medium", "low"]
type TomlSpecParser struct {
	specParser
}

// NewTomlSpecParser creates a new TomlSpecParser.
func NewTomlSpecParser(opts ...ParserOption) *TomlSpecParser {
	return &TomlSpecParser{specParser{
		format:    FormatTOML,
		unmarshal: toml.Unmarshal,
		config:    newParserConfig(opts),
	}}
}

var _ ports.SpecParser = (*TomlSpecParser)(nil)
