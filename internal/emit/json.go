package emit

import (
	"encoding/json"

	"github.com/vk/composego/internal/config"
)

// jsonEmitter renders the configs as an indented JSON array for machine
// consumers such as wrapper build drivers.
type jsonEmitter struct{}

func (e *jsonEmitter) Emit(cfgs []*config.BuildTargetConfig) ([]byte, error) {
	views := make([]targetView, len(cfgs))
	for i, cfg := range cfgs {
		views[i] = newTargetView(cfg)
	}

	out, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
