package scenes

import (
	"image/color"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/decker502/vnplayer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// advancePressed 本帧是否有推进输入：鼠标或触摸释放、空格、回车
func advancePressed() bool {
	if released, _, _ := utils.IsPointerJustReleased(); released {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// drawCenteredText 在屏幕水平居中绘制一行文字
func drawCenteredText(screen *ebiten.Image, str string, face text.Face, y float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	width, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((config.GameWindowWidth-width)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
