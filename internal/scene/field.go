package scene

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Ground is the height the field is centred on, below the default eye.
const Ground float32 = -3

type Cube struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

type FieldConfig struct {
	Seed      int64
	Size      int     // cubes per side
	Spacing   float32 // distance between cube centres
	Amplitude float32 // maximum height offset from Ground
}

// GenerateField lays out Size*Size cubes on a grid centred on the origin,
// lifted by three octaves of Perlin noise. The same config always gives the
// same field.
func GenerateField(cfg FieldConfig) []Cube {
	if cfg.Size <= 0 {
		return nil
	}
	p := perlin.NewPerlin(2, 2, 3, cfg.Seed)

	cubes := make([]Cube, 0, cfg.Size*cfg.Size)
	half := float32(cfg.Size-1) / 2
	for x := 0; x < cfg.Size; x++ {
		for z := 0; z < cfg.Size; z++ {
			baseY := p.Noise2D(float64(x)*0.05, float64(z)*0.05)   // Large features
			detailY := p.Noise2D(float64(x)*0.15, float64(z)*0.15) // Medium details
			fineY := p.Noise2D(float64(x)*0.3, float64(z)*0.3)     // Fine details

			h := heightFor(baseY*0.6+detailY*0.3+fineY*0.1, cfg.Amplitude)
			cubes = append(cubes, Cube{
				Position: mgl32.Vec3{
					(float32(x) - half) * cfg.Spacing,
					Ground + h,
					(float32(z) - half) * cfg.Spacing,
				},
				Color: ColorForHeight(h, cfg.Amplitude),
			})
		}
	}
	return cubes
}

// heightFor scales noise to whole units within ±amplitude.
func heightFor(noise float64, amplitude float32) float32 {
	h := math.Round(noise * 2 * float64(amplitude))
	a := float64(amplitude)
	if h < -a {
		h = -a
	}
	if h > a {
		h = a
	}
	return float32(h)
}

// ColorForHeight bands cubes into water, grass, rock and snow.
func ColorForHeight(h, amplitude float32) mgl32.Vec3 {
	if amplitude <= 0 {
		return mgl32.Vec3{0.3, 0.6, 0.15}
	}
	t := h / amplitude
	switch {
	case t < -0.25:
		return mgl32.Vec3{0.15, 0.35, 0.75}
	case t < 0.35:
		return mgl32.Vec3{0.3, 0.6, 0.15}
	case t < 0.75:
		return mgl32.Vec3{0.5, 0.45, 0.4}
	default:
		return mgl32.Vec3{0.95, 0.95, 0.97}
	}
}
