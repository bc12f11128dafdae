package systems

import (
	"log"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/decker502/vnplayer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// numberKeys 数字键到选项编号
var numberKeys = map[ebiten.Key]int{
	ebiten.Key1: 1, ebiten.KeyNumpad1: 1,
	ebiten.Key2: 2, ebiten.KeyNumpad2: 2,
	ebiten.Key3: 3, ebiten.KeyNumpad3: 3,
	ebiten.Key4: 4, ebiten.KeyNumpad4: 4,
	ebiten.Key5: 5, ebiten.KeyNumpad5: 5,
	ebiten.Key6: 6, ebiten.KeyNumpad6: 6,
	ebiten.Key7: 7, ebiten.KeyNumpad7: 7,
	ebiten.Key8: 8, ebiten.KeyNumpad8: 8,
	ebiten.Key9: 9, ebiten.KeyNumpad9: 9,
}

// ChoiceInputSystem 选项按钮输入系统
//
// 职责：
//   - 每帧更新按钮悬停状态
//   - 鼠标左键或触摸在按钮上释放时选中该选项
//   - 数字键直接选中对应编号的选项
type ChoiceInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewChoiceInputSystem 创建选项输入系统
func NewChoiceInputSystem(em *ecs.EntityManager) *ChoiceInputSystem {
	return &ChoiceInputSystem{entityManager: em}
}

// Update 读取鼠标和键盘输入
// 返回 true 表示本帧的输入已被选项消费，场景不应再把它当作推进点击
func (s *ChoiceInputSystem) Update(deltaTime float64) bool {
	if !s.Active() {
		return false
	}

	released, x, y := utils.IsPointerJustReleased()
	if !released {
		x, y = utils.GetPointerPosition()
	}
	if s.HandlePointer(float64(x), float64(y), released) {
		return true
	}

	for key, number := range numberKeys {
		if inpututil.IsKeyJustPressed(key) && s.SelectNumber(number) {
			return true
		}
	}
	return false
}

// Active 当前是否有选项按钮
func (s *ChoiceInputSystem) Active() bool {
	return len(ecs.GetEntitiesWith1[*components.ChoiceButtonComponent](s.entityManager)) > 0
}

// HandlePointer 更新悬停状态，released 为 true 时尝试选中指针下的按钮
// 返回是否选中了某个选项
func (s *ChoiceInputSystem) HandlePointer(x, y float64, released bool) bool {
	var hovered *components.ChoiceButtonComponent

	for _, id := range s.buttons() {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clickable.IsHovered = clickable.IsEnabled &&
			utils.PointInRect(x, y, pos.X, pos.Y, clickable.Width, clickable.Height)

		if clickable.IsHovered && hovered == nil {
			hovered, _ = ecs.GetComponent[*components.ChoiceButtonComponent](s.entityManager, id)
		}
	}

	if !released || hovered == nil {
		return false
	}

	log.Printf("[ChoiceInputSystem] 点击选项 %d: %s", hovered.Number, hovered.Label)
	s.fire(hovered)
	return true
}

// SelectNumber 选中编号为 number 的启用按钮
func (s *ChoiceInputSystem) SelectNumber(number int) bool {
	for _, id := range s.buttons() {
		button, _ := ecs.GetComponent[*components.ChoiceButtonComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if button.Number != number || !clickable.IsEnabled {
			continue
		}
		log.Printf("[ChoiceInputSystem] 按键选项 %d: %s", button.Number, button.Label)
		s.fire(button)
		return true
	}
	return false
}

func (s *ChoiceInputSystem) buttons() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.ChoiceButtonComponent,
		*components.ClickableComponent,
		*components.PositionComponent,
	](s.entityManager)
}

func (s *ChoiceInputSystem) fire(button *components.ChoiceButtonComponent) {
	if button.OnSelect != nil {
		button.OnSelect(button.Number)
	}
}
