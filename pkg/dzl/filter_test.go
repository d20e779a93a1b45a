package dzl

import "testing"

var builtinLevels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

func TestPasses_BuiltinOrder(t *testing.T) {
	for _, threshold := range builtinLevels {
		for _, level := range builtinLevels {
			rt, _ := Rank(threshold)
			rl, _ := Rank(level)
			want := rt <= rl

			if got := Passes(threshold.Ptr(), Builtin(level)); got != want {
				t.Errorf("Passes(%s, %s) = %v, want %v", threshold, level, got, want)
			}
		}
	}
}

func TestPasses_CustomEntriesAlwaysPass(t *testing.T) {
	thresholds := []*Level{nil, LevelCustom.Ptr()}
	for _, l := range builtinLevels {
		thresholds = append(thresholds, l.Ptr())
	}

	for _, threshold := range thresholds {
		for _, label := range []string{"AUDIT", "", "ERROR"} {
			if !Passes(threshold, Labeled(label)) {
				t.Errorf("Passes(%v, custom %q) = false, want true", threshold, label)
			}
		}
	}
}

func TestPasses_NoThreshold(t *testing.T) {
	for _, l := range builtinLevels {
		if !Passes(nil, Builtin(l)) {
			t.Errorf("Passes(nil, %s) = false, want true", l)
		}
	}
}

func TestPasses_CustomThreshold(t *testing.T) {
	for _, l := range builtinLevels {
		if !Passes(LevelCustom.Ptr(), Builtin(l)) {
			t.Errorf("Passes(custom, %s) = false, want true", l)
		}
	}
}

func TestPasses_UnknownLevel(t *testing.T) {
	if Passes(LevelTrace.Ptr(), Builtin(Level("verbose"))) {
		t.Error("an unranked entry level must not pass a built-in threshold")
	}
	if !Passes(nil, Builtin(Level("verbose"))) {
		t.Error("an absent threshold passes everything")
	}
}
