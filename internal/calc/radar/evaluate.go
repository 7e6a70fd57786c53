package radar

import "errors"

// Evaluation is the outcome of deriving every quantity the inputs allow.
type Evaluation struct {
	Params       Input    `json:"params"`
	HorBeamwidth *float64 `json:"hor_beamwidth,omitempty"`
	Computed     []string `json:"computed"`
	Skipped      []string `json:"skipped"`
}

// Evaluate runs aperture, gain, power and beamwidth in dependency order.
// A step whose outputs are all present is not rerun. Gain and wavelength
// come from the same step, so a supplied gain without a wavelength is
// recomputed. Steps whose inputs are missing are listed in Skipped.
func (p *Parameters) Evaluate() Evaluation {
	ev := Evaluation{Computed: []string{}, Skipped: []string{}}

	step := func(name string, present bool, run func() (float64, error)) *float64 {
		if present {
			return nil
		}
		v, err := run()
		if errors.Is(err, ErrInvalidState) {
			ev.Skipped = append(ev.Skipped, name)
			return nil
		}
		ev.Computed = append(ev.Computed, name)
		return &v
	}

	step("a_eff", p.AEff != nil, p.EffectiveAperture)
	step("gain", p.Gain != nil && p.Wavelength != nil, p.AntennaGain)
	step("power", p.Power != nil, p.PeakTransmitPower)
	ev.HorBeamwidth = step("hor_beamwidth", false, p.HorizontalBeamwidth)

	ev.Params = p.Input()
	return ev
}
