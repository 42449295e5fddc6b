package sprite3d

import vec3d "github.com/flywave/go3d/float64/vec3"

// CapsuleSynth builds an ellipsoid body lifted above the origin plus a
// front-facing billboard. The body approximates a capsule with a scaled
// sphere; texture feeds both base color and emission so the sprite stays
// readable under flat lighting.
type CapsuleSynth struct {
}

func (sy *CapsuleSynth) Synthesize(layout *LayoutSpec, sprite *Sprite) []PrimPair {
	aspect := sprite.AspectRatio()
	body := MeshPrimitive{
		Shape:    SHAPE_ELLIPSOID,
		Scale:    vec3d.T{aspect * 0.6, 0.6, 1.0},
		Position: vec3d.T{0, 0, 0.5},
		Name:     "CharacterBody",
	}
	bodyMtl := texturedMaterial(sprite, "CharacterMaterial")
	bodyMtl.EmissionStrength = 0.5

	billboard := MeshPrimitive{
		Shape:    SHAPE_PLANE,
		Scale:    vec3d.T{aspect, 1.0, 1.0},
		Position: vec3d.T{0, 0.1, 0.5},
		Name:     "CharacterSprite",
	}
	return []PrimPair{
		{Prim: body, Mtl: bodyMtl},
		{Prim: billboard, Mtl: texturedMaterial(sprite, "CharacterSpriteMaterial")},
	}
}
