package sprite3d

import vec3d "github.com/flywave/go3d/float64/vec3"

// ExtrudeSynth turns the sprite into a single textured cuboid with the
// image aspect on X and the extrusion depth on Z.
type ExtrudeSynth struct {
}

func (sy *ExtrudeSynth) Synthesize(layout *LayoutSpec, sprite *Sprite) []PrimPair {
	aspect := sprite.AspectRatio()
	prim := MeshPrimitive{
		Shape:    SHAPE_CUBOID,
		Scale:    vec3d.T{aspect, 1.0, layout.Depth},
		Position: vec3d.T{0, 0, 0},
		Name:     "Sprite3D",
	}
	// The texture alpha channel drives transparency on its own; the old
	// constant alpha 1.0 next to it was dead configuration.
	return []PrimPair{{Prim: prim, Mtl: texturedMaterial(sprite, "SpriteMaterial")}}
}
