package systems

import (
	"testing"

	"github.com/automoto/gemrush/components"
	cfg "github.com/automoto/gemrush/config"
)

func TestGetActionEdges(t *testing.T) {
	var input components.InputData

	input.Current[cfg.ActionConfirm] = true
	state := GetAction(&input, cfg.ActionConfirm)
	if !state.Pressed || !state.JustPressed || state.JustReleased {
		t.Errorf("fresh press: got %+v", state)
	}

	input.Previous[cfg.ActionConfirm] = true
	state = GetAction(&input, cfg.ActionConfirm)
	if !state.Pressed || state.JustPressed {
		t.Errorf("held press: got %+v", state)
	}

	input.Current[cfg.ActionConfirm] = false
	state = GetAction(&input, cfg.ActionConfirm)
	if state.Pressed || !state.JustReleased {
		t.Errorf("release: got %+v", state)
	}
}
