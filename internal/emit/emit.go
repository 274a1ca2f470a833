// Package emit renders resolved build configurations as text for downstream
// consumers. The composer deals only in structured lists; everything about
// flag prefixes and file formats lives here, at the system boundary, where
// it can be tested in isolation.
package emit

import (
	"fmt"

	"github.com/vk/composego/internal/config"
)

// Known output format names.
const (
	FormatMake = "make"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Emitter renders a set of resolved target configs to text.
type Emitter interface {
	Emit(cfgs []*config.BuildTargetConfig) ([]byte, error)
}

// New returns the emitter for a format name.
func New(format string) (Emitter, error) {
	switch format {
	case FormatMake:
		return &makeEmitter{}, nil
	case FormatJSON:
		return &jsonEmitter{}, nil
	case FormatYAML:
		return &yamlEmitter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// targetView is the serializable shape shared by the JSON and YAML emitters.
type targetView struct {
	Target       string   `json:"target" yaml:"target"`
	BinPath      string   `json:"bin_path" yaml:"bin_path"`
	LibPath      string   `json:"lib_path" yaml:"lib_path"`
	IncludePaths []string `json:"include_paths" yaml:"include_paths"`
	CFlags       []string `json:"cflags" yaml:"cflags"`
	LinkArchives []string `json:"link_archives" yaml:"link_archives"`
}

func newTargetView(cfg *config.BuildTargetConfig) targetView {
	includes := make([]string, len(cfg.IncludePaths))
	for i, p := range cfg.IncludePaths {
		includes[i] = p.Path
	}
	return targetView{
		Target:       cfg.Target,
		BinPath:      cfg.BinPath,
		LibPath:      cfg.LibPath,
		IncludePaths: includes,
		CFlags:       append([]string(nil), cfg.CFlags...),
		LinkArchives: append([]string(nil), cfg.Links...),
	}
}
