package sprite3d

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/tiff"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Sprite is one raster image bound for a GLB texture slot. Data always
// holds bytes in a glTF-compatible encoding (png or jpeg); other input
// formats are re-encoded to png at load time.
type Sprite struct {
	Path     string
	Width    int
	Height   int
	MimeType string
	Data     []byte
}

func (s *Sprite) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// ReadDimensions reads only the image header, never the pixel data.
func ReadDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return cfg.Width, cfg.Height, nil
}

func LoadSprite(path string) (*Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	cfg, ft, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: zero height", ErrDecode, path)
	}

	sp := &Sprite{Path: path, Width: cfg.Width, Height: cfg.Height}
	switch ft {
	case "png":
		sp.MimeType = "image/png"
		sp.Data = data
	case "jpeg", "jpg":
		sp.MimeType = "image/jpeg"
		sp.Data = data
	default:
		img, err := readImage(bytes.NewReader(data), ft)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		sp.MimeType = "image/png"
		sp.Data = buf.Bytes()
	}
	return sp, nil
}

func readImage(rd io.Reader, ft string) (image.Image, error) {
	switch ft {
	case "jpeg", "jpg":
		return jpeg.Decode(rd)
	case "png":
		return png.Decode(rd)
	case "gif":
		return gif.Decode(rd)
	case "bmp":
		return bmp.Decode(rd)
	case "webp":
		return webp.Decode(rd)
	case "tif", "tiff":
		return tiff.Decode(rd)
	default:
		return nil, fmt.Errorf("unknow format %s", ft)
	}
}
