package radar

import (
	"errors"
	"fmt"
	"math"
)

const (
	// SpeedOfLight is the rounded value the range equation is tabulated with.
	SpeedOfLight = 3e8 // m/s
	// BeamwidthFactor converts wavelength/width to degrees for the horizontal beam.
	BeamwidthFactor = 65.0
)

var ErrInvalidState = errors.New("invalid state")

// Input is the set of known quantities a radar is constructed with.
// Nil means the quantity is not known.
type Input struct {
	Area         *float64 `json:"area,omitempty" yaml:"area"`
	Height       *float64 `json:"height,omitempty" yaml:"height"`
	Width        *float64 `json:"width,omitempty" yaml:"width"`
	Efficiency   *float64 `json:"efficiency,omitempty" yaml:"efficiency"`
	AEff         *float64 `json:"a_eff,omitempty" yaml:"a_eff"`
	Freq         *float64 `json:"freq,omitempty" yaml:"freq"` // MHz
	Wavelength   *float64 `json:"wavelength,omitempty" yaml:"wavelength"`
	Gain         *float64 `json:"gain,omitempty" yaml:"gain"`
	Smin         *float64 `json:"smin,omitempty" yaml:"smin"`
	MaxDetection *float64 `json:"max_detection,omitempty" yaml:"max_detection"`
	RCS          *float64 `json:"rcs,omitempty" yaml:"rcs"`
	Range        *float64 `json:"range,omitempty" yaml:"range"`
	Power        *float64 `json:"power,omitempty" yaml:"power"`
}

// Parameters holds a radar's configuration and the quantities derived from it.
// Methods mutate the receiver; a Parameters value is not safe for concurrent use.
type Parameters Input

func Float(v float64) *float64 { return &v }

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// New builds Parameters from in. Area falls back to Height*Width only when
// Area itself was not supplied.
func New(in Input) *Parameters {
	p := Parameters(in.clone())
	if p.Area == nil && p.Height != nil && p.Width != nil {
		p.Area = Float(*p.Height * *p.Width)
	}
	return &p
}

// Input returns a copy of the current state.
func (p *Parameters) Input() Input {
	return Input(*p).clone()
}

// EffectiveAperture stores and returns area * efficiency.
func (p *Parameters) EffectiveAperture() (float64, error) {
	if p.Area == nil || p.Efficiency == nil {
		return 0, fmt.Errorf("%w: antenna effective aperture requires antenna area and efficiency", ErrInvalidState)
	}
	aEff := *p.Area * *p.Efficiency
	p.AEff = &aEff
	return aEff, nil
}

// AntennaGain derives the wavelength from Freq (MHz) and stores it together
// with log10 of the linear gain. The stored gain is one tenth of the usual dB figure.
func (p *Parameters) AntennaGain() (float64, error) {
	if p.AEff == nil || p.Freq == nil {
		return 0, fmt.Errorf("%w: antenna gain requires antenna effective aperture and frequency", ErrInvalidState)
	}
	freqHz := *p.Freq * 1e6
	wl := SpeedOfLight / freqHz

	linear := (4 * math.Pi * *p.AEff) / (wl * wl)
	gain := math.Log10(linear)

	p.Wavelength = &wl
	p.Gain = &gain
	return gain, nil
}

// PeakTransmitPower solves the range equation for transmit power.
// The result is in the unit of Smin; no kW conversion is applied.
func (p *Parameters) PeakTransmitPower() (float64, error) {
	if p.RCS == nil || p.Gain == nil || p.Smin == nil || p.Wavelength == nil || p.Range == nil {
		return 0, fmt.Errorf("%w: peak transmit power requires rcs, gain, smin, wavelength and range", ErrInvalidState)
	}
	g, wl := *p.Gain, *p.Wavelength

	// (4pi)^3 * Smin * R^4 / (G^2 * lambda^2 * sigma)
	num := math.Pow(4*math.Pi, 3) * *p.Smin * math.Pow(*p.Range, 4)
	den := g * g * wl * wl * *p.RCS
	power := num / den

	p.Power = &power
	return power, nil
}

// HorizontalBeamwidth returns the beamwidth in degrees. Nothing is stored.
func (p *Parameters) HorizontalBeamwidth() (float64, error) {
	if p.Width == nil || p.Wavelength == nil {
		return 0, fmt.Errorf("%w: horizontal beamwidth requires antenna width and wavelength", ErrInvalidState)
	}
	return BeamwidthFactor * (*p.Wavelength / *p.Width), nil
}

func (in Input) clone() Input {
	out := in
	for _, f := range Fields {
		if v := f.ptr((*Parameters)(&in)); *v != nil {
			*f.ptr((*Parameters)(&out)) = Float(**v)
		}
	}
	return out
}
