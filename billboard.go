package sprite3d

import vec3d "github.com/flywave/go3d/float64/vec3"

// BillboardSynth emits a single textured plane with the sprite aspect.
type BillboardSynth struct {
}

func (sy *BillboardSynth) Synthesize(layout *LayoutSpec, sprite *Sprite) []PrimPair {
	aspect := sprite.AspectRatio()
	prim := MeshPrimitive{
		Shape:    SHAPE_PLANE,
		Scale:    vec3d.T{aspect, 1.0, 1.0},
		Position: vec3d.T{0, 0, 0},
		Name:     "CharacterBillboard",
	}
	return []PrimPair{{Prim: prim, Mtl: texturedMaterial(sprite, "CharacterMaterial")}}
}

// BillboardDepthSynth adds a flat black silhouette plane behind the
// billboard, 5% larger, acting as a drop shadow.
type BillboardDepthSynth struct {
}

func (sy *BillboardDepthSynth) Synthesize(layout *LayoutSpec, sprite *Sprite) []PrimPair {
	aspect := sprite.AspectRatio()
	front := MeshPrimitive{
		Shape:    SHAPE_PLANE,
		Scale:    vec3d.T{aspect, 1.0, 1.0},
		Position: vec3d.T{0, 0, 0},
		Name:     "CharacterBillboard",
	}
	shadow := MeshPrimitive{
		Shape:    SHAPE_PLANE,
		Scale:    vec3d.T{aspect * 1.05, 1.05, 1.0},
		Position: vec3d.T{0, -layout.Depth, 0},
		Name:     "CharacterShadow",
	}
	shadowMtl := MaterialSpec{
		BaseColorFactor: [4]float32{0, 0, 0, 0.3},
		BlendMode:       BLEND_ALPHA,
		Name:            "CharacterShadowMaterial",
	}
	return []PrimPair{
		{Prim: front, Mtl: texturedMaterial(sprite, "CharacterMaterial")},
		{Prim: shadow, Mtl: shadowMtl},
	}
}
