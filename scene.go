package sprite3d

// Scene is the ordered set of primitive/material pairs for one export.
// Built fresh per conversion, never shared between calls.
type Scene struct {
	Pairs []PrimPair
}

func AssembleScene(pairs []PrimPair) (*Scene, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyScene
	}
	return &Scene{Pairs: pairs}, nil
}
