package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG writes the master raster to path.
func WritePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}
