package interpreter

// Choice 选项按钮数据
type Choice struct {
	// Number 选项编号（对应 select<Number> 分支台词）
	Number int
	// Label 按钮上显示的文字
	Label string
}

// Surface 演出层（只写）
//
// 解释器通过它输出画面变化，从不读取其状态。
// 实现者：stage.Stage（ebiten ECS 舞台）、测试中的记录器。
type Surface interface {
	// SetBackground 切换背景图片
	SetBackground(path string)
	// SetCharacterImage 切换立绘（包括嘴型动画的逐帧切换）
	SetCharacterImage(path string)
	// ShowCharacterName 显示说话人名字，空字符串表示旁白
	ShowCharacterName(name string)
	// AppendDialogueChar 追加一个字符到台词框
	AppendDialogueChar(r rune)
	// SetDialogueText 整体替换台词框文本
	SetDialogueText(text string)
	// ShowChoices 显示选项按钮，按钮被点击时以选项编号调用 onSelect
	ShowChoices(choices []Choice, onSelect func(number int))
	// HideChoices 隐藏选项按钮
	HideChoices()
	// OnScenarioEnd 剧本播放结束
	OnScenarioEnd()
}
