package sprite3d

import (
	"fmt"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// VoxelSynth stacks textured planes along the depth axis, one material
// instance per layer over the same texture.
type VoxelSynth struct {
}

func (sy *VoxelSynth) Synthesize(layout *LayoutSpec, sprite *Sprite) []PrimPair {
	aspect := sprite.AspectRatio()
	layers := layout.LayerCount
	pairs := make([]PrimPair, 0, layers)
	for i := 0; i < layers; i++ {
		yPos := (float64(i)/float64(layers) - 0.5) * layout.Depth
		prim := MeshPrimitive{
			Shape:    SHAPE_PLANE,
			Scale:    vec3d.T{aspect, 1.0, 1.0},
			Position: vec3d.T{0, yPos, 0},
			Name:     fmt.Sprintf("SpriteLayer_%d", i),
		}
		pairs = append(pairs, PrimPair{
			Prim: prim,
			Mtl:  texturedMaterial(sprite, fmt.Sprintf("SpriteMaterial_%d", i)),
		})
	}
	return pairs
}
