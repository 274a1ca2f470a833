package emit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vk/composego/internal/config"
)

// makeEmitter renders an include fragment for GNU make. Paths are written
// verbatim: make has no portable quoting for whitespace in paths, so the
// fragment assumes paths without spaces, exactly as hand-written include
// fragments do.
type makeEmitter struct{}

func (e *makeEmitter) Emit(cfgs []*config.BuildTargetConfig) ([]byte, error) {
	var buf bytes.Buffer

	if len(cfgs) > 0 {
		// bin/lib derive from the project root and are identical for every
		// target, so they are written once at the top of the fragment.
		fmt.Fprintf(&buf, "binPath := %s\n", cfgs[0].BinPath)
		fmt.Fprintf(&buf, "libPath := %s\n", cfgs[0].LibPath)
	}

	for _, cfg := range cfgs {
		includes := make([]string, len(cfg.IncludePaths))
		for i, p := range cfg.IncludePaths {
			includes[i] = "-I" + p.Path
		}

		fmt.Fprintf(&buf, "\n# target %q\n", cfg.Target)
		fmt.Fprintf(&buf, "%s_cflags := %s\n", cfg.Target, strings.Join(cfg.CFlags, " "))
		fmt.Fprintf(&buf, "%s_includes := %s\n", cfg.Target, strings.Join(includes, " "))
		fmt.Fprintf(&buf, "%s_ldlibs := %s\n", cfg.Target, strings.Join(cfg.Links, " "))
	}

	return buf.Bytes(), nil
}
