package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG 在临时目录写入一张 w×h 的 PNG
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write png: %v", err)
	}
	return path
}

// TestImagePath 测试剧本文件名到资源路径的转换
func TestImagePath(t *testing.T) {
	rm := NewResourceManager("assets/images")
	if got := rm.ImagePath("room.png"); got != "assets/images/room.png" {
		t.Errorf("ImagePath = %q", got)
	}

	rm = NewResourceManager("")
	if got := rm.ImagePath("room.png"); got != "room.png" {
		t.Errorf("ImagePath without dir = %q", got)
	}
}

// TestLoadImageFromDisk 测试从磁盘加载并缓存图片
func TestLoadImageFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "room.png", 4, 3)

	rm := NewResourceManager(dir)
	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("image size = %dx%d, want 4x3", b.Dx(), b.Dy())
	}

	again, _ := rm.LoadImage(path)
	if again != img {
		t.Error("second LoadImage should return the cached image")
	}
	if rm.GetImage(path) != img {
		t.Error("GetImage should return the cached image")
	}
}

// TestScenarioImagePlaceholder 测试缺失图片返回占位图
func TestScenarioImagePlaceholder(t *testing.T) {
	dir := t.TempDir()
	rm := NewResourceManager(dir)

	img := rm.ScenarioImage("missing.png")
	if img == nil {
		t.Fatal("ScenarioImage should return a placeholder for missing files")
	}
	if b := img.Bounds(); b.Dx() != placeholderWidth || b.Dy() != placeholderHeight {
		t.Errorf("placeholder size = %dx%d", b.Dx(), b.Dy())
	}
	if rm.ScenarioImage("missing.png") != img {
		t.Error("placeholder should be cached per file")
	}

	writeTestPNG(t, dir, "bob.png", 2, 2)
	if b := rm.ScenarioImage("bob.png").Bounds(); b.Dx() != 2 {
		t.Errorf("existing image should be loaded, got width %d", b.Dx())
	}
}

// TestLoadImageCorrupt 测试损坏的图片文件
func TestLoadImageCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	rm := NewResourceManager(dir)
	if _, err := rm.LoadImage(path); err == nil {
		t.Error("expected decode error")
	}
}

// TestFontOrDefault 测试字体加载失败时回退到内置字体
func TestFontOrDefault(t *testing.T) {
	rm := NewResourceManager("")

	if face := rm.FontOrDefault("", 20); face == nil {
		t.Error("FontOrDefault with empty path should return the built-in face")
	}
	if face := rm.FontOrDefault(filepath.Join(t.TempDir(), "none.ttf"), 20); face == nil {
		t.Error("FontOrDefault with missing font should return the built-in face")
	}
	if _, err := rm.LoadFont(filepath.Join(t.TempDir(), "none.ttf"), 20); err == nil {
		t.Error("LoadFont should fail for a missing file")
	}
}
