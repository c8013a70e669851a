package components

import "testing"

func testStages() []IntroStage {
	return []IntroStage{
		{ID: StageLogo, Duration: 3},
		{ID: StageSubtitle, Duration: 2},
		{ID: StageLoading, Duration: 2},
		{ID: StageTitle, Duration: 0},
	}
}

func TestIntroAdvancesThroughScript(t *testing.T) {
	intro := IntroData{Stages: testStages()}

	if intro.Current() != StageLogo {
		t.Fatalf("initial stage = %v, want logo", intro.Current())
	}

	// Logo runs for 3 frames
	for i := 0; i < 2; i++ {
		if intro.Advance() {
			t.Fatalf("stage changed after %d frames, want 3", i+1)
		}
	}
	if !intro.Advance() {
		t.Fatal("stage did not change after its full duration")
	}
	if intro.Current() != StageSubtitle {
		t.Errorf("stage = %v, want subtitle", intro.Current())
	}
}

func TestTitleStageWaitsForever(t *testing.T) {
	intro := IntroData{Stages: testStages(), Index: 3}

	for i := 0; i < 1000; i++ {
		if intro.Advance() {
			t.Fatal("title stage advanced on a timer")
		}
	}
	if intro.Current() != StageTitle {
		t.Errorf("stage = %v, want title", intro.Current())
	}
}

func TestSkipToTitle(t *testing.T) {
	intro := IntroData{Stages: testStages(), Timer: 2}

	intro.SkipToTitle()

	if intro.Current() != StageTitle {
		t.Errorf("stage = %v, want title", intro.Current())
	}
	if intro.Timer != 0 {
		t.Errorf("timer = %d, want reset to 0", intro.Timer)
	}
}

func TestCurrentPastEndIsDone(t *testing.T) {
	intro := IntroData{Stages: testStages()}
	intro.Skip()

	if intro.Current() != StageDone {
		t.Errorf("stage = %v, want done", intro.Current())
	}
	if intro.Advance() {
		t.Error("done sequence should not advance")
	}
}
