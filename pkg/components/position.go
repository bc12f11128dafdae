package components

// AnchorMode 坐标锚点
type AnchorMode int

const (
	// AnchorTopLeft 坐标为图像左上角
	AnchorTopLeft AnchorMode = iota
	// AnchorBottomCenter 坐标为图像底边中点（立绘站位）
	AnchorBottomCenter
	// AnchorFill 拉伸铺满整个画面（背景），忽略坐标
	AnchorFill
)

// PositionComponent 实体在画面上的位置
type PositionComponent struct {
	X, Y   float64
	Anchor AnchorMode
}

// LayerComponent 绘制层级，数值小的先绘制
type LayerComponent struct {
	Layer int
}
