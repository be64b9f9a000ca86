package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

var ErrUnknownTexture = errors.New("assets: unknown texture")

// textures maps the tile keys used by level descriptors to image files.
var textures = map[string]string{
	"ground":   "ground.png",
	"platform": "platform.png",
	"block":    "block.png",
	"goal":     "gorilla3.png",
	"barrel":   "barrel.png",
	"player":   "player_spritesheet.png",
	"fire":     "fire_spritesheet.png",
}

var imageCache = map[string]*ebiten.Image{}

// LoadImage loads an embedded asset by assets-relative path. Decoded images
// are cached, so repeated scene rebuilds share GPU textures.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	if img, ok := imageCache[clean]; ok {
		return img, nil
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	eimg := ebiten.NewImageFromImage(img)
	imageCache[clean] = eimg
	return eimg, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// TexturePath resolves a texture key to its embedded file name.
func TexturePath(key string) (string, error) {
	path, ok := textures[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTexture, key)
	}
	return path, nil
}

func Texture(key string) (*ebiten.Image, error) {
	path, err := TexturePath(key)
	if err != nil {
		return nil, err
	}
	return LoadImage(path)
}

// FrameRects lays out frames of w x h pixels in a sheet of sheetW x sheetH,
// left to right then top to bottom. Margin is the offset of the first frame
// from the top-left corner and spacing separates neighbouring frames.
func FrameRects(sheetW, sheetH, w, h, margin, spacing int) []image.Rectangle {
	if w <= 0 || h <= 0 {
		return nil
	}
	cols := (sheetW - margin + spacing) / (w + spacing)
	rows := (sheetH - margin + spacing) / (h + spacing)
	if cols <= 0 || rows <= 0 {
		return nil
	}
	rects := make([]image.Rectangle, 0, cols*rows)
	for r := range rows {
		y := margin + r*(h+spacing)
		for c := range cols {
			x := margin + c*(w+spacing)
			rects = append(rects, image.Rect(x, y, x+w, y+h))
		}
	}
	return rects
}

func Frames(sheet *ebiten.Image, w, h, margin, spacing int) []*ebiten.Image {
	if sheet == nil {
		return nil
	}
	b := sheet.Bounds()
	rects := FrameRects(b.Dx(), b.Dy(), w, h, margin, spacing)
	frames := make([]*ebiten.Image, 0, len(rects))
	for _, r := range rects {
		frames = append(frames, sheet.SubImage(r.Add(b.Min)).(*ebiten.Image))
	}
	return frames
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
