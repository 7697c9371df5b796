package bridgegen

import (
	"github.com/wippyai/bridgegen/bridge"
	"github.com/wippyai/bridgegen/cheader"
)

// Notice is the first line of every generated header.
const Notice = cheader.Notice

// Generate produces the C header for a bridge module.
// It is shorthand for cheader.Generate.
func Generate(m *bridge.Module) (string, error) {
	return cheader.Generate(m)
}
