package radar

import "fmt"

// Field describes one quantity of Parameters for tabular output.
type Field struct {
	Name  string // json name
	Label string
	Unit  string
	ptr   func(p *Parameters) **float64
}

var Fields = []Field{
	{"area", "Antenna area", "m²", func(p *Parameters) **float64 { return &p.Area }},
	{"height", "Antenna height", "m", func(p *Parameters) **float64 { return &p.Height }},
	{"width", "Antenna width", "m", func(p *Parameters) **float64 { return &p.Width }},
	{"efficiency", "Aperture efficiency", "", func(p *Parameters) **float64 { return &p.Efficiency }},
	{"a_eff", "Effective aperture", "m²", func(p *Parameters) **float64 { return &p.AEff }},
	{"freq", "Frequency", "MHz", func(p *Parameters) **float64 { return &p.Freq }},
	{"wavelength", "Wavelength", "m", func(p *Parameters) **float64 { return &p.Wavelength }},
	{"gain", "Antenna gain (log10)", "", func(p *Parameters) **float64 { return &p.Gain }},
	{"smin", "Minimum detectable signal", "", func(p *Parameters) **float64 { return &p.Smin }},
	{"max_detection", "Maximum detection range", "m", func(p *Parameters) **float64 { return &p.MaxDetection }},
	{"rcs", "Radar cross-section", "m²", func(p *Parameters) **float64 { return &p.RCS }},
	{"range", "Target range", "m", func(p *Parameters) **float64 { return &p.Range }},
	{"power", "Peak transmit power", "", func(p *Parameters) **float64 { return &p.Power }},
}

func lookup(name string) (Field, error) {
	for _, f := range Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("unknown field %q", name)
}

// Get returns the value of the named field, or nil when it is absent.
func (p *Parameters) Get(name string) (*float64, error) {
	f, err := lookup(name)
	if err != nil {
		return nil, err
	}
	v := *f.ptr(p)
	if v == nil {
		return nil, nil
	}
	return Float(*v), nil
}

// Set overwrites the named field. A nil v clears it.
func (p *Parameters) Set(name string, v *float64) error {
	f, err := lookup(name)
	if err != nil {
		return err
	}
	if v != nil {
		v = Float(*v)
	}
	*f.ptr(p) = v
	return nil
}
