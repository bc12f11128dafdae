package systems

import (
	"sort"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// StageRenderSystem 绘制舞台上的精灵（背景、立绘）
//
// 绘制顺序：LayerComponent 从小到大，同层按实体创建顺序。
// 有 FadeComponent 的实体按其 Alpha 绘制。
type StageRenderSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   float64
	screenHeight  float64
}

// NewStageRenderSystem 创建舞台渲染系统
func NewStageRenderSystem(em *ecs.EntityManager) *StageRenderSystem {
	return &StageRenderSystem{
		entityManager: em,
		screenWidth:   config.GameWindowWidth,
		screenHeight:  config.GameWindowHeight,
	}
}

// Draw 绘制所有可见精灵
func (s *StageRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		op := &ebiten.DrawImageOptions{}
		op.GeoM = s.spriteGeoM(sprite.Image, pos)
		if fade, ok := ecs.GetComponent[*components.FadeComponent](s.entityManager, id); ok {
			op.ColorScale.ScaleAlpha(float32(fade.Alpha))
		}
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sprite.Image, op)
	}
}

// drawOrder 返回需要绘制的实体（已按层级排序）
func (s *StageRenderSystem) drawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)

	visible := ids[:0]
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Hidden || sprite.Image == nil {
			continue
		}
		visible = append(visible, id)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return s.layerOf(visible[i]) < s.layerOf(visible[j])
	})
	return visible
}

func (s *StageRenderSystem) layerOf(id ecs.EntityID) int {
	if layer, ok := ecs.GetComponent[*components.LayerComponent](s.entityManager, id); ok {
		return layer.Layer
	}
	return 0
}

// spriteGeoM 根据锚点计算图像变换
func (s *StageRenderSystem) spriteGeoM(img *ebiten.Image, pos *components.PositionComponent) ebiten.GeoM {
	var geoM ebiten.GeoM
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	switch pos.Anchor {
	case components.AnchorFill:
		if w > 0 && h > 0 {
			geoM.Scale(s.screenWidth/w, s.screenHeight/h)
		}
	case components.AnchorBottomCenter:
		geoM.Translate(pos.X-w/2, pos.Y-h)
	default:
		geoM.Translate(pos.X, pos.Y)
	}
	return geoM
}
