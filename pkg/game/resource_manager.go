package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/pkg/embedded"
)

// ResourceManager is responsible for centralized management of textures.
// It loads image files once and caches them, and also stores textures that
// are generated at runtime so every emitter can share them by name.
//
// Images are read from the embedded resources first ("assets/..." paths) and
// fall back to the file system, so a development build can load files that
// were not embedded.
//
// This implementation is NOT thread-safe. All resources must be loaded from
// the game loop goroutine (or before RunGame starts).
//
// Usage:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/images/items/platformPack_item001.png")
//	if err != nil {
//	    return err
//	}
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // path or texture name -> Image
}

// NewResourceManager creates a ResourceManager with an empty cache.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := openResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// RegisterImage 将运行时生成的图片以 name 注册到缓存
// 同名图片会被替换
func (rm *ResourceManager) RegisterImage(name string, img image.Image) *ebiten.Image {
	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[name] = ebitenImg
	return ebitenImg
}

// GetImage retrieves a previously loaded or registered image.
// Returns nil if the image is not in the cache.
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// openResource 优先从嵌入资源打开，找不到时从磁盘打开
func openResource(path string) (io.ReadCloser, error) {
	if embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}
