package config

// 舞台布局配置常量
// 所有坐标使用逻辑屏幕坐标（800x600），与窗口实际大小无关

// 窗口
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600
)

// 台词框 (Dialogue Box)
const (
	// DialogueBoxX 台词框左上角 X
	DialogueBoxX = 40.0

	// DialogueBoxY 台词框左上角 Y
	DialogueBoxY = 420.0

	// DialogueBoxWidth 台词框宽度
	DialogueBoxWidth = 720.0

	// DialogueBoxHeight 台词框高度
	DialogueBoxHeight = 150.0

	// DialogueBoxPaddingX 文本区域水平内边距
	DialogueBoxPaddingX = 24.0

	// DialogueBoxPaddingY 文本区域垂直内边距
	DialogueBoxPaddingY = 20.0

	// DialogueFontSize 台词字号
	DialogueFontSize = 22.0

	// DialogueLineHeight 台词行高
	DialogueLineHeight = 32.0

	// DialogueBoxAlpha 台词框背景不透明度（0-255）
	DialogueBoxAlpha = 200
)

// 名字框 (Name Plate)
const (
	// NamePlateX 名字框左上角 X
	NamePlateX = DialogueBoxX + 12.0

	// NamePlateY 名字框左上角 Y（压在台词框上沿）
	NamePlateY = DialogueBoxY - 34.0

	// NamePlatePaddingX 名字左右留白
	NamePlatePaddingX = 16.0

	// NamePlateHeight 名字框高度
	NamePlateHeight = 36.0

	// NameFontSize 名字字号
	NameFontSize = 20.0
)

// 「点击继续」提示
const (
	// ContinueHintOffsetX 距台词框右边缘
	ContinueHintOffsetX = 36.0

	// ContinueHintOffsetY 距台词框下边缘
	ContinueHintOffsetY = 30.0

	// ContinueHintBlinkPeriod 闪烁周期（秒）
	ContinueHintBlinkPeriod = 1.0
)

// 立绘 (Character Sprite)
const (
	// CharacterBottomY 立绘底边对齐位置（台词框之下被遮挡的部分不可见）
	CharacterBottomY = float64(GameWindowHeight)

	// CharacterCenterX 立绘水平中心
	CharacterCenterX = float64(GameWindowWidth) / 2
)

// 选项按钮 (Choice Buttons)
const (
	// ChoiceButtonWidth 选项按钮宽度
	ChoiceButtonWidth = 480.0

	// ChoiceButtonHeight 选项按钮高度
	ChoiceButtonHeight = 56.0

	// ChoiceButtonSpacing 按钮之间的垂直间距
	ChoiceButtonSpacing = 20.0

	// ChoicePanelCenterY 选项面板的垂直中心
	ChoicePanelCenterY = 220.0

	// ChoiceFontSize 选项字号
	ChoiceFontSize = 22.0
)

// 渲染层级（数值越大越靠上）
const (
	LayerBackground = 0
	LayerCharacter  = 10
	LayerDialogue   = 20
	LayerChoice     = 30
)

// ChoiceButtonPosition 返回第 index 个（共 count 个）选项按钮的左上角坐标
// 按钮水平居中，整体以 ChoicePanelCenterY 垂直居中
func ChoiceButtonPosition(index, count int) (float64, float64) {
	totalHeight := float64(count)*ChoiceButtonHeight + float64(count-1)*ChoiceButtonSpacing
	startY := ChoicePanelCenterY - totalHeight/2
	x := (float64(GameWindowWidth) - ChoiceButtonWidth) / 2
	y := startY + float64(index)*(ChoiceButtonHeight+ChoiceButtonSpacing)
	return x, y
}
