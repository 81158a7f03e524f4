package app

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ImageExtensions lists the file types the image loader can decode
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// ImageInfo describes an image file as it will be shown on the canvas
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// LoadImage decodes an image, applying its EXIF orientation
func LoadImage(path string) (image.Image, error) {
	if !IsImageFile(path) {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// InspectImage loads an image and reports its format and oriented size
func InspectImage(path string) (ImageInfo, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	img, err := LoadImage(path)
	if err != nil {
		return ImageInfo{}, err
	}
	bounds := img.Bounds()
	return ImageInfo{
		Path:   path,
		Format: format.String(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// IsImageFile reports whether path has a supported image extension
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
