package wizard

import (
	"errors"
	"testing"

	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/types"
	"github.com/mrsinham/fuzzforge/internal/config"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
)

func TestToSettings(t *testing.T) {
	state := &types.State{Diameter: 16, BaseColor: 0x123456, AlphaStart: 200, AlphaEnd: 50, Zoom: 8}

	s, err := ToSettings(state)
	if err != nil {
		t.Fatalf("ToSettings failed: %v", err)
	}

	want := fuzzball.Params{Diameter: 16, BaseColor: 0x123456, AlphaStart: 200, AlphaEnd: 50}
	if s.Params != want {
		t.Errorf("Expected %+v, got %+v", want, s.Params)
	}
	if s.Zoom != 8 {
		t.Errorf("Expected zoom 8, got %d", s.Zoom)
	}
}

func TestToSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		state   types.State
		invalid bool
	}{
		{"zero diameter", types.State{Diameter: 0, AlphaStart: 255}, true},
		{"color too large", types.State{Diameter: 4, BaseColor: 0x1000000}, true},
		{"alpha end negative", types.State{Diameter: 4, AlphaEnd: -1}, true},
		{"negative zoom", types.State{Diameter: 4, Zoom: -2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToSettings(&tt.state)
			if err == nil {
				t.Fatal("Expected error")
			}
			if got := errors.Is(err, fuzzball.ErrInvalidParameter); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidParameter) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestFromSettings(t *testing.T) {
	s := config.Settings{
		Params: fuzzball.Params{Diameter: 7, BaseColor: 0xABCDEF, AlphaStart: 10, AlphaEnd: 240},
		Zoom:   5,
	}

	got := FromSettings(s)
	want := types.State{Diameter: 7, BaseColor: 0xABCDEF, AlphaStart: 10, AlphaEnd: 240, Zoom: 5}
	if *got != want {
		t.Errorf("Expected %+v, got %+v", want, *got)
	}
}
