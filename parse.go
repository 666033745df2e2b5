package arrange

import (
	"github.com/reglet-dev/arrange/domain/ports"
	"github.com/reglet-dev/arrange/infrastructure/parser"
)

// NewSpecParser returns a parser for "yaml", "json" or "toml" documents.
// Sort specifications are read from {specs: [...]}; equality options from a
// flat object.
func NewSpecParser(format string) (ports.SpecParser, error) {
	return parser.New(parser.Format(format))
}
