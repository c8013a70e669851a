package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IntroStageID identifies one stage of the scripted intro sequence.
type IntroStageID int

const (
	StageLogo IntroStageID = iota
	StageSubtitle
	StageLoading
	StageTitle
	StageDone
)

// IntroStage is one entry of the ordered stage script. A zero duration means
// the stage waits for input instead of a timer (the title screen).
type IntroStage struct {
	ID       IntroStageID
	Duration int // frames
}

// IntroData is the finite-state sequencer for the intro: an ordered stage
// list advanced by a single per-frame scheduler. Tween state drives the
// transient visuals of whichever stage is active.
type IntroData struct {
	Stages []IntroStage
	Index  int
	Timer  int // frames spent in the current stage

	LogoAlpha   *gween.Tween    // logo fade-in
	BarProgress *gween.Tween    // loading bar fill, 0..1
	Blink       *gween.Sequence // title prompt blink

	// Latest tween values, written by the update system and read by the
	// renderer so Draw never mutates tween state.
	LogoAlphaVal float32
	BarVal       float32
	BlinkVal     float32

	LastTick int // last loading decile that played a tick sound
}

// Current returns the active stage, or StageDone past the end of the script.
func (d *IntroData) Current() IntroStageID {
	if d.Index >= len(d.Stages) {
		return StageDone
	}
	return d.Stages[d.Index].ID
}

// Advance steps the scheduler by one frame. It reports whether the sequence
// moved to a new stage, in which case the previous stage's transient state is
// reset.
func (d *IntroData) Advance() bool {
	if d.Current() == StageDone {
		return false
	}
	stage := d.Stages[d.Index]
	d.Timer++
	if stage.Duration > 0 && d.Timer >= stage.Duration {
		d.Index++
		d.Timer = 0
		d.LastTick = 0
		return true
	}
	return false
}

// SkipToTitle jumps ahead to the title screen stage.
func (d *IntroData) SkipToTitle() {
	for i, stage := range d.Stages {
		if stage.ID == StageTitle {
			d.Index = i
			d.Timer = 0
			d.LastTick = 0
			return
		}
	}
	d.Index = len(d.Stages)
	d.Timer = 0
}

// Skip jumps straight past the remaining stages.
func (d *IntroData) Skip() {
	d.Index = len(d.Stages)
	d.Timer = 0
}

var Intro = donburi.NewComponentType[IntroData]()
