package emit

import (
	"github.com/vk/composego/internal/config"
	"gopkg.in/yaml.v3"
)

// yamlEmitter renders the configs as a YAML document list.
type yamlEmitter struct{}

func (e *yamlEmitter) Emit(cfgs []*config.BuildTargetConfig) ([]byte, error) {
	views := make([]targetView, len(cfgs))
	for i, cfg := range cfgs {
		views[i] = newTargetView(cfg)
	}
	return yaml.Marshal(views)
}
