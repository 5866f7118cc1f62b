package starflight

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds every tunable of the demo. Zero-valued sections in a YAML
// file keep their defaults.
type Config struct {
	Window     WindowConfig      `yaml:"window"`
	Loop       LoopConfig        `yaml:"loop"`
	Projection ProjectionConfig  `yaml:"projection"`
	Camera     CameraConfig      `yaml:"camera"`
	Flight     FlightConfig      `yaml:"flight"`
	Shake      ShakeConfig       `yaml:"shake"`
	Stars      StarConfig        `yaml:"stars"`
	Objects    ObjectConfig      `yaml:"objects"`
	Particles  ParticleConfig    `yaml:"particles"`
	Asteroids  AsteroidConfig    `yaml:"asteroids"`
	Nebula     NebulaConfig      `yaml:"nebula"`
	Ground     GroundConfig      `yaml:"ground"`
	Audio      AudioConfig       `yaml:"audio"`
	Seed       uint64            `yaml:"seed"`
	Keys       map[string]string `yaml:"keys"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LoopConfig struct {
	FPS      int     `yaml:"fps"`
	MaxDelta float64 `yaml:"maxDelta"`
}

type ProjectionConfig struct {
	Focal float64 `yaml:"focal"`
	Near  float64 `yaml:"near"`
	Far   float64 `yaml:"far"`
}

type CameraConfig struct {
	Pitch      float64 `yaml:"pitch"`
	FollowRate float64 `yaml:"followRate"`
	BoundsX    float64 `yaml:"boundsX"`
	BoundsY    float64 `yaml:"boundsY"`
}

type FlightConfig struct {
	MaxSpeed      float64 `yaml:"maxSpeed"`
	WarpSpeed     float64 `yaml:"warpSpeed"`
	Accel         float64 `yaml:"accel"`
	Decel         float64 `yaml:"decel"`
	StrafeSpeed   float64 `yaml:"strafeSpeed"`
	VerticalSpeed float64 `yaml:"verticalSpeed"`
	WarpRate      float64 `yaml:"warpRate"`
}

type ShakeConfig struct {
	Intensity       float64 `yaml:"intensity"`
	ImpactIntensity float64 `yaml:"impactIntensity"`
	Duration        float64 `yaml:"duration"`
	MaxOffset       float64 `yaml:"maxOffset"`
}

type StarConfig struct {
	Count     int     `yaml:"count"`
	Near      float64 `yaml:"near"`
	Far       float64 `yaml:"far"`
	ConeSlope float64 `yaml:"coneSlope"`
	MinSize   float64 `yaml:"minSize"`
	MaxSize   float64 `yaml:"maxSize"`
}

type ObjectConfig struct {
	MinScale    float64 `yaml:"minScale"`
	MaxScale    float64 `yaml:"maxScale"`
	RotateSpeed float64 `yaml:"rotateSpeed"`
	ScaleRate   float64 `yaml:"scaleRate"`
	Wireframe   bool    `yaml:"wireframe"`
}

type ParticleConfig struct {
	Max        int     `yaml:"max"`
	DropPolicy string  `yaml:"dropPolicy"`
	Rate       float64 `yaml:"rate"`
}

type AsteroidConfig struct {
	Count      int     `yaml:"count"`
	MinScale   float64 `yaml:"minScale"`
	MaxScale   float64 `yaml:"maxScale"`
	HitRadius  float64 `yaml:"hitRadius"`
	Spread     float64 `yaml:"spread"`
	Far        float64 `yaml:"far"`
	RecycleZ   float64 `yaml:"recycleZ"`
	DriftSpeed float64 `yaml:"driftSpeed"`
}

type NebulaConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"minRadius"`
	MaxRadius float64 `yaml:"maxRadius"`
	Spread    float64 `yaml:"spread"`
	Near      float64 `yaml:"near"`
	Far       float64 `yaml:"far"`
}

type GroundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Y       float64 `yaml:"y"`
	Spacing float64 `yaml:"spacing"`
	Lines   int     `yaml:"lines"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
	Dir        string  `yaml:"dir"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1200, Height: 800, Title: "Starflight"},
		Loop:   LoopConfig{FPS: 60, MaxDelta: 0.1},
		Projection: ProjectionConfig{
			Focal: 400,
			Near:  1,
			Far:   6000,
		},
		Camera: CameraConfig{
			Pitch:      0.05,
			FollowRate: 3,
			BoundsX:    3000,
			BoundsY:    1500,
		},
		Flight: FlightConfig{
			MaxSpeed:      200,
			WarpSpeed:     1500,
			Accel:         100,
			Decel:         200,
			StrafeSpeed:   200,
			VerticalSpeed: 100,
			WarpRate:      5,
		},
		Shake: ShakeConfig{
			Intensity:       1,
			ImpactIntensity: 0.6,
			Duration:        0.5,
			MaxOffset:       20,
		},
		Stars: StarConfig{
			Count:     700,
			Near:      1,
			Far:       6000,
			ConeSlope: 1,
			MinSize:   0.5,
			MaxSize:   5,
		},
		Objects: ObjectConfig{
			MinScale:    defaultMinScale,
			MaxScale:    defaultMaxScale,
			RotateSpeed: 1.8,
			ScaleRate:   0.6,
		},
		Particles: ParticleConfig{
			Max:        500,
			DropPolicy: "newest",
			Rate:       400,
		},
		Asteroids: AsteroidConfig{
			Count:      10,
			MinScale:   50,
			MaxScale:   200,
			HitRadius:  120,
			Spread:     3000,
			Far:        6000,
			RecycleZ:   -300,
			DriftSpeed: 40,
		},
		Nebula: NebulaConfig{
			Count:     5,
			MinRadius: 400,
			MaxRadius: 900,
			Spread:    4000,
			Near:      500,
			Far:       6000,
		},
		Ground: GroundConfig{
			Enabled: true,
			Y:       400,
			Spacing: 200,
			Lines:   15,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.6,
			Dir:        "sounds",
		},
		Seed: 1,
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("loop.fps", float64(c.Loop.FPS))
	positive("loop.maxDelta", c.Loop.MaxDelta)
	positive("projection.focal", c.Projection.Focal)
	positive("stars.count", float64(c.Stars.Count))
	positive("stars.far", c.Stars.Far)
	positive("particles.max", float64(c.Particles.Max))
	positive("flight.maxSpeed", c.Flight.MaxSpeed)
	positive("flight.warpSpeed", c.Flight.WarpSpeed)
	if c.Stars.Near >= c.Stars.Far {
		errs = append(errs, fmt.Errorf("stars.near %v must be below stars.far %v", c.Stars.Near, c.Stars.Far))
	}
	if c.Objects.MinScale <= 0 || c.Objects.MinScale > c.Objects.MaxScale {
		errs = append(errs, fmt.Errorf("objects scale limits [%v, %v] are invalid", c.Objects.MinScale, c.Objects.MaxScale))
	}
	if _, err := ParseDropPolicy(c.Particles.DropPolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Bindings merges the configured keys over DefaultKeys. Binding a key to
// "none" removes it.
func (c Config) Bindings() (Bindings, error) {
	names := make(map[string]string, len(DefaultKeys)+len(c.Keys))
	for k, v := range DefaultKeys {
		names[k] = v
	}
	for k, v := range c.Keys {
		names[k] = v
	}
	b := make(Bindings, len(names))
	for key, name := range names {
		if name == "none" {
			continue
		}
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		b[key] = a
	}
	return b, nil
}
