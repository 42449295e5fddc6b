package sprite3d

import "errors"

var (
	ErrNotFound         = errors.New("sprite3d: input file not found")
	ErrDecode           = errors.New("sprite3d: image decode failed")
	ErrInvalidMethod    = errors.New("sprite3d: unknown layout method")
	ErrInvalidParameter = errors.New("sprite3d: parameter out of range")
	ErrEmptyScene       = errors.New("sprite3d: scene has no primitives")
	ErrExport           = errors.New("sprite3d: glb export failed")
)
