package main

import (
	"fmt"
	"os"

	sprite3d "github.com/flywave/go-sprite3d"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	args := os.Args[1:]
	if len(args) < 2 {
		fmt.Println("Usage: fbx2glb <input.fbx> <output.glb>")
		os.Exit(1)
	}
	inputPath := args[0]
	outputPath := args[1]

	cv := sprite3d.NewFbxToGlb()
	res, bbx, err := cv.Convert(inputPath, outputPath)
	if err != nil {
		sugar.Errorw("conversion failed", "input", inputPath, "error", err)
		os.Exit(1)
	}
	sugar.Infow("exported", "path", res.Path,
		"size_kb", fmt.Sprintf("%.2f", float64(res.Size)/1024),
		"bbox", *bbx)
}
