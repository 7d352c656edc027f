package wizard

import (
	"fmt"

	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/types"
	"github.com/mrsinham/fuzzforge/internal/config"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
)

// ToSettings converts the wizard state into validated settings.
func ToSettings(state *types.State) (config.Settings, error) {
	p := fuzzball.Params{
		Diameter:   state.Diameter,
		BaseColor:  state.BaseColor,
		AlphaStart: state.AlphaStart,
		AlphaEnd:   state.AlphaEnd,
	}
	if err := p.Validate(); err != nil {
		return config.Settings{}, err
	}
	if state.Zoom < 0 {
		return config.Settings{}, fmt.Errorf("zoom must be >= 0, got %d", state.Zoom)
	}
	return config.Settings{Params: p, Zoom: state.Zoom}, nil
}

// FromSettings converts loaded settings into wizard state.
func FromSettings(s config.Settings) *types.State {
	return &types.State{
		Diameter:   s.Params.Diameter,
		BaseColor:  s.Params.BaseColor,
		AlphaStart: s.Params.AlphaStart,
		AlphaEnd:   s.Params.AlphaEnd,
		Zoom:       s.Zoom,
	}
}
