package components

// DialogueBoxComponent 台词框（纯数据）
//
// 舞台写入说话人和文本，DialogueRenderSystem 负责绘制。
type DialogueBoxComponent struct {
	// Speaker 说话人，空字符串时不显示名字框
	Speaker string

	// Text 当前显示的台词（逐字追加）
	Text string

	// ShowContinueHint 是否显示"点击继续"提示
	// 由场景每帧根据解释器状态设置
	ShowContinueHint bool

	// HintElapsed 提示闪烁计时（秒）
	HintElapsed float64
}
