package sprite3d

import (
	"fmt"
	"testing"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/stretchr/testify/require"
)

func testSprite() *Sprite {
	return &Sprite{Path: "sprite.png", Width: 800, Height: 400, MimeType: "image/png"}
}

func TestSynthesizeExtrude(t *testing.T) {
	layout, err := SelectLayout(EXTRUDE, 0.5, 0)
	require.NoError(t, err)
	sp := testSprite()

	pairs, err := Synthesize(layout, sp)
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	prim := pairs[0].Prim
	require.Equal(t, SHAPE_CUBOID, prim.Shape)
	require.Equal(t, vec3d.T{2.0, 1.0, 0.5}, prim.Scale)
	require.Equal(t, vec3d.T{0, 0, 0}, prim.Position)

	mtl := pairs[0].Mtl
	require.Same(t, sp, mtl.Texture)
	require.True(t, mtl.AlphaFromTexture)
	require.Equal(t, BLEND_ALPHA, mtl.BlendMode)
	require.Zero(t, mtl.EmissionStrength)
}

func TestSynthesizeVoxel(t *testing.T) {
	layout, err := SelectLayout(VOXEL, 0.4, 8)
	require.NoError(t, err)
	sp := testSprite()

	pairs, err := Synthesize(layout, sp)
	require.NoError(t, err)
	require.Len(t, pairs, 8)

	for i, pair := range pairs {
		require.Equal(t, SHAPE_PLANE, pair.Prim.Shape)
		want := (float64(i)/8 - 0.5) * 0.4
		require.InDelta(t, want, pair.Prim.Position[1], 1e-12)
		require.Same(t, sp, pair.Mtl.Texture)
		require.Equal(t, fmt.Sprintf("SpriteMaterial_%d", i), pair.Mtl.Name)
	}
	require.InDelta(t, -0.2, pairs[0].Prim.Position[1], 1e-12)
	// layers spread evenly across [-depth/2, depth/2]
	step := pairs[1].Prim.Position[1] - pairs[0].Prim.Position[1]
	for i := 1; i < len(pairs); i++ {
		require.InDelta(t, step, pairs[i].Prim.Position[1]-pairs[i-1].Prim.Position[1], 1e-12)
	}
}

func TestSynthesizeBillboard(t *testing.T) {
	layout, err := SelectLayout(BILLBOARD, 0.5, 0)
	require.NoError(t, err)

	pairs, err := Synthesize(layout, testSprite())
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, SHAPE_PLANE, pairs[0].Prim.Shape)
	require.Equal(t, vec3d.T{2.0, 1.0, 1.0}, pairs[0].Prim.Scale)
}

func TestSynthesizeBillboardDepth(t *testing.T) {
	layout, err := SelectLayout(BILLBOARDDEPTH, 0.1, 0)
	require.NoError(t, err)
	sp := testSprite()

	pairs, err := Synthesize(layout, sp)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	front, shadow := pairs[0], pairs[1]
	require.Same(t, sp, front.Mtl.Texture)
	require.Equal(t, vec3d.T{0, 0, 0}, front.Prim.Position)

	require.Nil(t, shadow.Mtl.Texture)
	require.Equal(t, [4]float32{0, 0, 0, 0.3}, shadow.Mtl.BaseColorFactor)
	require.Equal(t, BLEND_ALPHA, shadow.Mtl.BlendMode)
	require.InDelta(t, -0.1, shadow.Prim.Position[1], 1e-12)
	require.InDelta(t, 2.0*1.05, shadow.Prim.Scale[0], 1e-12)
	require.InDelta(t, 1.05, shadow.Prim.Scale[1], 1e-12)
}

func TestSynthesizeCapsule(t *testing.T) {
	layout, err := SelectLayout(CAPSULE, 0.5, 0)
	require.NoError(t, err)
	sp := testSprite()

	pairs, err := Synthesize(layout, sp)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	body, billboard := pairs[0], pairs[1]
	require.Equal(t, SHAPE_ELLIPSOID, body.Prim.Shape)
	require.Equal(t, vec3d.T{2.0 * 0.6, 0.6, 1.0}, body.Prim.Scale)
	require.Equal(t, vec3d.T{0, 0, 0.5}, body.Prim.Position)
	require.Equal(t, float32(0.5), body.Mtl.EmissionStrength)
	require.Same(t, sp, body.Mtl.Texture)

	require.Equal(t, SHAPE_PLANE, billboard.Prim.Shape)
	require.Equal(t, vec3d.T{0, 0.1, 0.5}, billboard.Prim.Position)
	require.Zero(t, billboard.Mtl.EmissionStrength)
}

func TestSynthesizeDeterministic(t *testing.T) {
	sp := testSprite()
	for _, method := range []string{EXTRUDE, VOXEL, BILLBOARD, BILLBOARDDEPTH, CAPSULE} {
		layout, err := SelectLayout(method, 0.5, 0)
		require.NoError(t, err)
		a, err := Synthesize(layout, sp)
		require.NoError(t, err)
		b, err := Synthesize(layout, sp)
		require.NoError(t, err)
		require.Equal(t, a, b, method)
	}
}

func TestSynthFactoryUnknown(t *testing.T) {
	require.Nil(t, SynthFactory("stack"))
	_, err := Synthesize(&LayoutSpec{Method: "stack", Depth: 0.5, LayerCount: 8}, testSprite())
	require.ErrorIs(t, err, ErrInvalidMethod)
}
