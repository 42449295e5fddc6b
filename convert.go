package sprite3d

// Options carries the conversion parameters. Zero-valued Method, Depth
// and LayerCount fall back to the package defaults; a nil Flags means
// DefaultFlags.
type Options struct {
	Method     string
	Depth      float64
	LayerCount int
	Flags      *ExportFlags
}

// Convert runs the whole pipeline: read the sprite, select a layout,
// synthesize primitives and materials, assemble a scene and export it
// as GLB. Each call builds its own scene; nothing is shared between
// conversions.
func Convert(spritePath, outputPath string, opts Options) (*ExportResult, error) {
	if opts.Method == "" {
		opts.Method = DefaultMethod
	}
	if opts.Depth == 0 {
		opts.Depth = DefaultDepth
	}
	flags := DefaultFlags()
	if opts.Flags != nil {
		flags = *opts.Flags
	}

	layout, err := SelectLayout(opts.Method, opts.Depth, opts.LayerCount)
	if err != nil {
		return nil, err
	}
	sprite, err := LoadSprite(spritePath)
	if err != nil {
		return nil, err
	}
	pairs, err := Synthesize(layout, sprite)
	if err != nil {
		return nil, err
	}
	scene, err := AssembleScene(pairs)
	if err != nil {
		return nil, err
	}
	return ExportGLB(scene, outputPath, flags)
}
