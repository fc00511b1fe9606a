package layerblit

import(
	"log"
	"math"

	"gopkg.in/yaml.v2"

	"github.com/mkreel/layerblit/pkg/lcolor"
	"github.com/mkreel/layerblit/pkg/lmath"
)

// Config describes a whole composition: output geometry, the post
// effects, and the layer stack, in the order they composite.
type Config struct {
	Verbosity    int

	Width        int
	Height       int
	FPS          float64
	Frames       int

	Background   BackgroundColor4 // RGBA, [0,1]
	Saturation   float64    // final scale-and-clamp; 1 = clamp only
	Grain        float64    // additive hash-noise dither strength; 0 = off
	Sweep        float64    // angular sector shading strength; 0 = off
	Sectors      int        // sector count for the sweep

	Placeholders bool       // generate a gradient asset when a layer file is missing

	Layers     []LayerConfig
}

// BackgroundColor4 is the YAML surface for the canvas background.
type BackgroundColor4 struct {
	R, G, B, A float64
}

// A LayerConfig is the YAML surface for one layer. Angles are in
// degrees here; the core works in radians.
type LayerConfig struct {
	Name         string
	File         string
	Fit          bool    // pre-scale the source image to the canvas resolution

	AnchorX      float64
	AnchorY      float64
	ShiftX       float64
	ShiftY       float64
	Scale        float64
	AngleDeg     float64
	Repeat       bool    // tile outside [0,1] instead of leaving the canvas untouched
	UndoGamma    bool
	Gamma        float64

	SpinDegSec   float64 // degrees/sec
	DriftXSec    float64 // UV/sec
	DriftYSec    float64
	ScaleTarget  float64
	ScaleEase    float64
	ShiftTargetX float64
	ShiftTargetY float64
	ShiftFrames  int
	ShiftSmooth  float64
}

func NewConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		FPS:        60,
		Frames:     1,
		Background: BackgroundColor4{0, 0, 0, 1},
		Saturation: 1.0,
		Sectors:    5,
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	c.normalize()
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func (c Config)BackgroundColor() lcolor.Color4 {
	return lcolor.Color4{R: c.Background.R, G: c.Background.G, B: c.Background.B, A: c.Background.A}
}

// normalize fills in the handful of values that are never sensible at
// zero. A zero scale would divide out to non-finite sample coords, so
// an unset scale means natural size.
func (c *Config)normalize() {
	if c.Width <= 0      { c.Width = 1280 }
	if c.Height <= 0     { c.Height = 720 }
	if c.FPS <= 0        { c.FPS = 60 }
	if c.Frames <= 0     { c.Frames = 1 }
	if c.Saturation <= 0 { c.Saturation = 1.0 }
	if c.Sectors <= 0    { c.Sectors = 5 }

	for i := range c.Layers {
		lc := &c.Layers[i]
		if lc.Scale == 0   { lc.Scale = 1.0 }
		if lc.Gamma == 0   { lc.Gamma = 2.2 }
		if lc.ShiftSmooth == 0 { lc.ShiftSmooth = 6.0 }
	}
}

// ToLayer expands the config entry into a Layer, converting the
// degree-based knobs to radians. The texture gets attached by the
// loader.
func (lc LayerConfig)ToLayer() Layer {
	return Layer{
		Name:         lc.Name,
		LoadFilename: lc.File,
		BlitTransform: BlitTransform{
			Anchor:    lmath.Vec2{lc.AnchorX, lc.AnchorY},
			Shift:     lmath.Vec2{lc.ShiftX, lc.ShiftY},
			Scale:     lc.Scale,
			Angle:     lc.AngleDeg * math.Pi / 180.0,
			Repeat:    lc.Repeat,
			UndoGamma: lc.UndoGamma,
			Gamma:     lc.Gamma,
		},
		Spin:        lc.SpinDegSec * math.Pi / 180.0,
		Drift:       lmath.Vec2{lc.DriftXSec, lc.DriftYSec},
		ScaleTarget: lc.ScaleTarget,
		ScaleEase:   lc.ScaleEase,
		ShiftTarget: lmath.Vec2{lc.ShiftTargetX, lc.ShiftTargetY},
		ShiftFrames: lc.ShiftFrames,
		ShiftSmooth: lc.ShiftSmooth,
	}
}
