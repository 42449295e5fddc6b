package sprite3d

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// ExportFlags selects what the written GLB carries. The supported set is
// fixed and validated before any I/O: textured materials require
// texcoords, nothing is probed at runtime.
type ExportFlags struct {
	Materials bool `yaml:"materials"`
	Normals   bool `yaml:"normals"`
	TexCoords bool `yaml:"texcoords"`
}

func DefaultFlags() ExportFlags {
	return ExportFlags{Materials: true, Normals: true, TexCoords: true}
}

type ExportResult struct {
	Path    string
	Size    int64
	Success bool
}

func validateFlags(scene *Scene, flags ExportFlags) error {
	if !flags.Materials || flags.TexCoords {
		return nil
	}
	for _, pair := range scene.Pairs {
		if pair.Mtl.Texture != nil {
			return fmt.Errorf("%w: textured materials require texcoords", ErrExport)
		}
	}
	return nil
}

// ExportGLB serializes the scene to outputPath, creating missing parent
// directories. The file is written to a temp path in the target
// directory and renamed on success, so a failed export leaves nothing
// behind.
func ExportGLB(scene *Scene, outputPath string, flags ExportFlags) (*ExportResult, error) {
	if scene == nil || len(scene.Pairs) == 0 {
		return nil, ErrEmptyScene
	}
	if err := validateFlags(scene, flags); err != nil {
		return nil, err
	}
	doc, err := buildDocument(scene, flags)
	if err != nil {
		return nil, err
	}
	return writeDocument(doc, outputPath)
}

func writeDocument(doc *gltf.Document, outputPath string) (*ExportResult, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", ErrExport, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".sprite3d-*.glb")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	enc := gltf.NewEncoder(tmp)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	st, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return &ExportResult{Path: outputPath, Size: st.Size(), Success: true}, nil
}
