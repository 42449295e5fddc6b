package sprite3d

import "fmt"

const (
	EXTRUDE        = "extrude"
	VOXEL          = "voxel"
	BILLBOARD      = "billboard"
	BILLBOARDDEPTH = "billboard-depth"
	CAPSULE        = "capsule"
)

const (
	DefaultMethod     = EXTRUDE
	DefaultDepth      = 0.5
	DefaultLayerCount = 8

	MinDepth      = 0.1
	MaxDepth      = 2.0
	MaxLayerCount = 64
)

// LayoutSpec fixes the mesh topology for one conversion. Immutable once
// selected.
type LayoutSpec struct {
	Method     string
	Depth      float64
	LayerCount int
}

// SelectLayout validates method and parameters. Out-of-range depth is
// rejected, not clamped. A zero layerCount means DefaultLayerCount.
func SelectLayout(method string, depth float64, layerCount int) (*LayoutSpec, error) {
	switch method {
	case EXTRUDE, VOXEL, BILLBOARD, BILLBOARDDEPTH, CAPSULE:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if depth < MinDepth || depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth %g not in [%g, %g]", ErrInvalidParameter, depth, MinDepth, MaxDepth)
	}
	if layerCount == 0 {
		layerCount = DefaultLayerCount
	}
	if layerCount < 1 || layerCount > MaxLayerCount {
		return nil, fmt.Errorf("%w: layer count %d not in [1, %d]", ErrInvalidParameter, layerCount, MaxLayerCount)
	}
	return &LayoutSpec{Method: method, Depth: depth, LayerCount: layerCount}, nil
}
