package renderer

import (
	"fmt"

	"bank-interior/internal/opengl"
)

// Options configures the renderer. Filter and tone mapping are named so
// they can be set from a config file.
type Options struct {
	Shadows        bool    `yaml:"shadows"`
	ShadowFilter   string  `yaml:"shadow_filter"`
	ToneMapping    string  `yaml:"tone_mapping"`
	Exposure       float32 `yaml:"exposure"`
	FrustumCulling bool    `yaml:"frustum_culling"`
}

const (
	FilterPCF     = "pcf"
	FilterPCFSoft = "pcf_soft"
	ToneNone      = "none"
	ToneACES      = "aces"
)

func DefaultOptions() Options {
	return Options{
		Shadows:        true,
		ShadowFilter:   FilterPCFSoft,
		ToneMapping:    ToneACES,
		Exposure:       1.2,
		FrustumCulling: true,
	}
}

func (o Options) Validate() error {
	if _, err := o.filter(); err != nil {
		return err
	}
	if _, err := o.toneMapping(); err != nil {
		return err
	}
	if !(o.Exposure > 0) {
		return fmt.Errorf("exposure must be positive, got %v", o.Exposure)
	}
	return nil
}

func (o Options) filter() (opengl.ShadowFilter, error) {
	switch o.ShadowFilter {
	case FilterPCF:
		return opengl.ShadowPCF, nil
	case FilterPCFSoft, "":
		return opengl.ShadowPCFSoft, nil
	}
	return 0, fmt.Errorf("unknown shadow filter %q", o.ShadowFilter)
}

func (o Options) toneMapping() (opengl.ToneMapping, error) {
	switch o.ToneMapping {
	case ToneNone:
		return opengl.ToneMappingNone, nil
	case ToneACES, "":
		return opengl.ToneMappingACES, nil
	}
	return 0, fmt.Errorf("unknown tone mapping %q", o.ToneMapping)
}
