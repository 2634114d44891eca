package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Asset is a room picture the shell was able to open.
type Asset struct {
	Ref    string
	Format string
	Width  int
	Height int
}

//
// AssetLoader resolves image references relative to a base directory.
//
type AssetLoader struct {
	baseDir string
}

func NewAssetLoader(baseDir string) *AssetLoader {
	if baseDir == "" {
		baseDir = "."
	}
	return &AssetLoader{baseDir: baseDir}
}

// Load reports false for anything it cannot open or decode. Callers keep
// showing whatever they showed before.
func (l *AssetLoader) Load(ref string) (Asset, bool) {
	if ref == "" {
		return Asset{}, false
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, ref)
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("asset", ref).Debug("Could not open image")
		return Asset{}, false
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		log.WithError(err).WithField("asset", ref).Debug("Could not decode image")
		return Asset{}, false
	}

	return Asset{Ref: ref, Format: format, Width: cfg.Width, Height: cfg.Height}, true
}
