package main

import (
	"fmt"
	"os"
	"strconv"

	sprite3d "github.com/flywave/go-sprite3d"
	"go.uber.org/zap"
)

func usage() {
	fmt.Println("Usage: sprite2glb <sprite_path> <output_path> [method] [depth]")
	fmt.Println("Methods: extrude, voxel, billboard, billboard-depth, capsule")
	fmt.Println("Example: sprite2glb sprite.png output.glb extrude 0.5")
}

func configPath() string {
	if p := os.Getenv("SPRITE3D_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("sprite3d.yaml"); err == nil {
		return "sprite3d.yaml"
	}
	return ""
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	args := os.Args[1:]
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	spritePath := args[0]
	outputPath := args[1]

	cfg, err := sprite3d.LoadConfig(configPath())
	if err != nil {
		sugar.Errorw("load config", "error", err)
		os.Exit(1)
	}
	opts := sprite3d.Options{
		Method:     cfg.Method,
		Depth:      cfg.Depth,
		LayerCount: cfg.LayerCount,
		Flags:      &cfg.Export,
	}
	if len(args) > 2 {
		opts.Method = args[2]
	}
	if len(args) > 3 {
		d, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			sugar.Errorw("bad depth argument", "value", args[3], "error", err)
			os.Exit(1)
		}
		opts.Depth = d
	}

	w, h, err := sprite3d.ReadDimensions(spritePath)
	if err != nil {
		sugar.Errorw("read sprite", "path", spritePath, "error", err)
		os.Exit(1)
	}
	sugar.Infow("loaded sprite", "path", spritePath,
		"width", w, "height", h,
		"aspect", fmt.Sprintf("%.2f", float64(w)/float64(h)))

	res, err := sprite3d.Convert(spritePath, outputPath, opts)
	if err != nil {
		sugar.Errorw("conversion failed", "path", spritePath, "error", err)
		os.Exit(1)
	}
	sugar.Infow("exported", "path", res.Path, "size", res.Size, "method", opts.Method)
}
