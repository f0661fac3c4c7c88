package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Triangles"

	// Geometry is laid out against a square of this size and scaled to fit.
	ReferenceDimension = 800.0
	CenterInset        = 75.0

	// Offsets from the center, in reference units
	PointAX, PointAY = -150.0, -100.0
	PointBX, PointBY = 150.0, 100.0
	ApexCX, ApexCY   = 150.0, -200.0
	ApexCStarX       = 250.0
	ApexCStarY       = -150.0

	// Oscillation parameters
	ApexAmplitude     = 50.0
	InitialFrequency  = 0.01
	RerollProbability = 0.005

	ApexCFrequencyMin     = 0.005
	ApexCFrequencyMax     = 0.015
	ApexCStarFrequencyMin = 0.005
	ApexCStarFrequencyMax = 0.02

	// Stroke
	StrokeWidth   = 15.0
	GradientStart = "#4A89D0"
	GradientEnd   = "#06AE3C"
	Background    = "#FFFFFF"

	// Terminal host
	TermFrameInterval = 16 * time.Millisecond
	TermUnitsPerPixel = 8.0
)

// Options holds the runtime settings. Flags override whatever Load returns.
type Options struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Title         string `json:"title"`
	Seed          uint64 `json:"seed"`
	Terminal      bool   `json:"terminal"`
	Transparent   bool   `json:"transparent"`
	HUD           bool   `json:"hud"`
	Debug         bool   `json:"debug"`
	Background    string `json:"background"`
	GradientStart string `json:"gradient_start"`
	GradientEnd   string `json:"gradient_end"`
}

// NewDefault returns the options used when no config file is present.
func NewDefault() *Options {
	return &Options{
		Width:         WindowWidth,
		Height:        WindowHeight,
		Title:         WindowTitle,
		Background:    Background,
		GradientStart: GradientStart,
		GradientEnd:   GradientEnd,
	}
}

// Load reads options from a JSON file. A missing file is not an error and
// yields the defaults. Fields absent from the file keep their default values.
func Load(filename string) (*Options, error) {
	opts := NewDefault()

	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, errors.Wrap(err, "open config")
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(opts); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", filename)
	}
	return opts, nil
}

func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", o.Width, o.Height)
	}
	for name, hex := range map[string]string{
		"background":     o.Background,
		"gradient_start": o.GradientStart,
		"gradient_end":   o.GradientEnd,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return errors.Wrapf(err, "%s colour %q", name, hex)
		}
	}
	return nil
}
