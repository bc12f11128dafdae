package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"path"

	"github.com/decker502/vnplayer/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// placeholderSize 缺失图片占位图尺寸
const (
	placeholderWidth  = 240
	placeholderHeight = 320
)

// ResourceManager manages loading and caching of player resources (images, fonts).
// It provides a centralized way to load assets, ensuring each resource is loaded only once.
//
// 资源查找顺序：嵌入资源（assets/ 或 data/ 前缀）→ 磁盘文件。
type ResourceManager struct {
	imageDir string

	imageCache       map[string]*ebiten.Image
	placeholderCache map[string]*ebiten.Image
	fontSourceCache  map[string]*text.GoTextFaceSource
	fontFaceCache    map[string]text.Face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - imageDir: 剧本中图片文件名的基准目录（如 "assets/images"）
func NewResourceManager(imageDir string) *ResourceManager {
	return &ResourceManager{
		imageDir:         imageDir,
		imageCache:       make(map[string]*ebiten.Image),
		placeholderCache: make(map[string]*ebiten.Image),
		fontSourceCache:  make(map[string]*text.GoTextFaceSource),
		fontFaceCache:    make(map[string]text.Face),
	}
}

// ImagePath 将剧本中的文件名转换为资源路径
//
// 示例: ImagePath("room.png") → "assets/images/room.png"
func (rm *ResourceManager) ImagePath(file string) string {
	if rm.imageDir == "" {
		return file
	}
	return path.Join(rm.imageDir, file)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG, JPEG.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.OpenFile(path)
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

	return ebitenImg, nil
}

// ScenarioImage 加载剧本引用的图片
//
// 图片缺失或损坏不会中断播放：记录警告并返回占位图。
func (rm *ResourceManager) ScenarioImage(file string) *ebiten.Image {
	img, err := rm.LoadImage(rm.ImagePath(file))
	if err == nil {
		return img
	}
	log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
	return rm.placeholder(file)
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// placeholder 返回缺失图片的占位图（同名缓存）
func (rm *ResourceManager) placeholder(file string) *ebiten.Image {
	if img, ok := rm.placeholderCache[file]; ok {
		return img
	}
	img := ebiten.NewImage(placeholderWidth, placeholderHeight)
	img.Fill(color.RGBA{R: 80, G: 80, B: 96, A: 255})
	rm.placeholderCache[file] = img
	return img
}

// LoadFont loads a font file and creates a font face of the specified size.
// Font sources are cached per path, faces per (path, size).
//
// Returns:
//   - A text.Face ready for rendering.
//   - An error if the file cannot be opened or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (text.Face, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSourceCache[path]
	if !ok {
		fontData, err := embedded.ReadAny(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		rm.fontSourceCache[path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face

	return face, nil
}

// FontOrDefault 加载字体，失败时回退到内置位图字体
//
// 内置字体只覆盖 ASCII，用于没有配置字体时仍能启动。
func (rm *ResourceManager) FontOrDefault(path string, size float64) text.Face {
	if path != "" {
		face, err := rm.LoadFont(path, size)
		if err == nil {
			return face
		}
		log.Printf("[ResourceManager] Warning: %v (using built-in font)", err)
	}
	return DefaultFace()
}

// DefaultFace 内置位图字体
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}
