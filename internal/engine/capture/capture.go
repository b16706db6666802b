// Package capture writes screenshots of the rendered city to disk.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Supported formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Screenshot handles screenshot capture.
type Screenshot struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// New creates a screenshot writer. An unknown format falls back to PNG.
func New(outputDir, prefix, format string) *Screenshot {
	if format != FormatBMP {
		format = FormatPNG
	}
	return &Screenshot{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// FromPixels saves raw RGBA pixel data as read back from OpenGL.
// Rows are bottom-up, so the image is flipped vertically on copy.
func (s *Screenshot) FromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return s.FromImage(img)
}

// FromImage saves an image and returns the written path.
func (s *Screenshot) FromImage(img image.Image) (string, error) {
	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := s.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", s.format, err)
	}
	return filename, nil
}

func (s *Screenshot) encode(w io.Writer, img image.Image) error {
	if s.format == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// Filename returns the path the next screenshot would be written to.
func (s *Screenshot) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	name := fmt.Sprintf("%s_%s.%s", s.prefix, timestamp, s.format)
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}
