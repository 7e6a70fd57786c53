package radar

import (
	"math"
	"reflect"
	"testing"
)

func TestEvaluate_FullChain(t *testing.T) {
	ev := New(Input{
		Area: Float(10), Width: Float(2), Efficiency: Float(0.5),
		Freq: Float(3000), Smin: Float(1), RCS: Float(1), Range: Float(100),
	}).Evaluate()

	want := []string{"a_eff", "gain", "power", "hor_beamwidth"}
	if !reflect.DeepEqual(ev.Computed, want) {
		t.Errorf("computed = %v, want %v", ev.Computed, want)
	}
	if len(ev.Skipped) != 0 {
		t.Errorf("skipped = %v, want none", ev.Skipped)
	}
	if ev.Params.Power == nil || ev.HorBeamwidth == nil {
		t.Fatalf("power/beamwidth missing: %+v", ev)
	}
	if !near(*ev.HorBeamwidth, 3.25) {
		t.Errorf("beamwidth = %v, want 3.25", *ev.HorBeamwidth)
	}
}

func TestEvaluate_SkipsMissing(t *testing.T) {
	ev := New(Input{Area: Float(10), Efficiency: Float(0.5)}).Evaluate()
	if !reflect.DeepEqual(ev.Computed, []string{"a_eff"}) {
		t.Errorf("computed = %v", ev.Computed)
	}
	want := []string{"gain", "power", "hor_beamwidth"}
	if !reflect.DeepEqual(ev.Skipped, want) {
		t.Errorf("skipped = %v, want %v", ev.Skipped, want)
	}
	if ev.HorBeamwidth != nil {
		t.Errorf("beamwidth = %v, want absent", *ev.HorBeamwidth)
	}
}

func TestEvaluate_KeepsSuppliedValues(t *testing.T) {
	in := powerInput()
	in.Power = Float(42)
	in.AEff = Float(7)
	ev := New(in).Evaluate()
	if *ev.Params.Power != 42 || *ev.Params.AEff != 7 {
		t.Errorf("supplied values overwritten: power=%v a_eff=%v", *ev.Params.Power, *ev.Params.AEff)
	}
	if len(ev.Computed) != 0 {
		t.Errorf("computed = %v, want none", ev.Computed)
	}
}

func TestEvaluate_GainWithoutWavelengthIsRecomputed(t *testing.T) {
	ev := New(Input{AEff: Float(5), Freq: Float(3000), Gain: Float(1)}).Evaluate()
	if !reflect.DeepEqual(ev.Computed[:1], []string{"gain"}) {
		t.Fatalf("computed = %v, want gain first", ev.Computed)
	}
	want := math.Log10(4 * math.Pi * 5 / 0.01)
	if !near(*ev.Params.Gain, want) {
		t.Errorf("gain = %v, want %v", *ev.Params.Gain, want)
	}
	if ev.Params.Wavelength == nil || !near(*ev.Params.Wavelength, 0.1) {
		t.Errorf("wavelength = %v, want 0.1", ev.Params.Wavelength)
	}
}
