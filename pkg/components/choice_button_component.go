package components

// ChoiceButtonComponent 选项按钮
//
// 与 PositionComponent（左上角）、ClickableComponent 配合使用。
// 按钮被选中后由 ChoiceInputSystem 调用 OnSelect(Number)。
type ChoiceButtonComponent struct {
	// Number 选项编号，对应键盘数字键
	Number int
	// Label 按钮文字
	Label string
	// OnSelect 选中回调，调用后整组按钮会被舞台销毁
	OnSelect func(number int)
}
