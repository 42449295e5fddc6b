package sprite3d

import (
	"fmt"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

const (
	SHAPE_CUBOID    = "cuboid"
	SHAPE_PLANE     = "plane"
	SHAPE_ELLIPSOID = "ellipsoid"
)

const (
	BLEND_OPAQUE = "opaque"
	BLEND_ALPHA  = "blend"
)

// MeshPrimitive describes one geometric element. Scale and position are
// applied to a unit shape spanning [-1, 1] on each axis, the way the
// source sprites were laid out.
type MeshPrimitive struct {
	Shape    string
	Scale    vec3d.T
	Position vec3d.T
	Name     string
}

// MaterialSpec covers the five wiring patterns the converters need: a
// textured alpha-blended surface, per-layer texture instances, a flat
// constant-color surface and a textured emissive surface.
type MaterialSpec struct {
	Texture          *Sprite
	BaseColorFactor  [4]float32
	AlphaFromTexture bool
	BlendMode        string
	EmissionStrength float32
	Name             string
}

type PrimPair struct {
	Prim MeshPrimitive
	Mtl  MaterialSpec
}

type SpriteSynth interface {
	Synthesize(layout *LayoutSpec, sprite *Sprite) []PrimPair
}

func SynthFactory(method string) SpriteSynth {
	switch method {
	case EXTRUDE:
		return &ExtrudeSynth{}
	case VOXEL:
		return &VoxelSynth{}
	case BILLBOARD:
		return &BillboardSynth{}
	case BILLBOARDDEPTH:
		return &BillboardDepthSynth{}
	case CAPSULE:
		return &CapsuleSynth{}
	}
	return nil
}

// Synthesize is a pure function of layout and sprite: identical inputs
// yield identical descriptions.
func Synthesize(layout *LayoutSpec, sprite *Sprite) ([]PrimPair, error) {
	sy := SynthFactory(layout.Method)
	if sy == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, layout.Method)
	}
	return sy.Synthesize(layout, sprite), nil
}

func texturedMaterial(sprite *Sprite, name string) MaterialSpec {
	return MaterialSpec{
		Texture:          sprite,
		BaseColorFactor:  [4]float32{1, 1, 1, 1},
		AlphaFromTexture: true,
		BlendMode:        BLEND_ALPHA,
		Name:             name,
	}
}
