// Package scenario 提供剧本的存储与逐行指令分类
//
// 剧本是一组有序、不可变的文本行，每行对应一条指令：
//
//	set bg <file>              切换背景
//	set char <file>            切换立绘
//	set select                 选项块开始
//	<n>:<text>                 选项
//	select<n> [名字「]台词[」]  选项分支台词（仅在选中时显示）
//	[名字「]台词[」]            普通台词
//
// 分类器永远不会失败：无法识别的行按普通台词尽力显示。
package scenario

import "fmt"

// Kind 指令类型枚举
type Kind int

const (
	// KindPlainLine 普通台词（默认类型，任何无法识别的行都归为此类）
	KindPlainLine Kind = iota

	// KindSetBackground 切换背景图片
	KindSetBackground

	// KindSetCharacter 切换角色立绘
	KindSetCharacter

	// KindChoiceBlockStart 选项块开始（set select）
	KindChoiceBlockStart

	// KindChoiceOption 选项行（1:是）
	KindChoiceOption

	// KindChoiceTarget 选项分支台词（select1 名字「台词」）
	KindChoiceTarget
)

// String 返回 Kind 的字符串表示
func (k Kind) String() string {
	switch k {
	case KindPlainLine:
		return "PlainLine"
	case KindSetBackground:
		return "SetBackground"
	case KindSetCharacter:
		return "SetCharacter"
	case KindChoiceBlockStart:
		return "ChoiceBlockStart"
	case KindChoiceOption:
		return "ChoiceOption"
	case KindChoiceTarget:
		return "ChoiceTarget"
	default:
		return "Unknown"
	}
}

// Directive 单行剧本分类后的指令（值类型，创建后不再修改）
//
// 字段按 Kind 使用：
//   - SetBackground / SetCharacter: File
//   - ChoiceOption: Number, Text
//   - ChoiceTarget: Label, Number, Speaker, Text
//   - PlainLine: Speaker, Text
type Directive struct {
	Kind Kind

	// File 图片文件名（如 "room.png"）
	File string

	// Number 选项编号（ChoiceOption / ChoiceTarget）
	Number int

	// Label 分支标签（如 "select1"）
	Label string

	// Speaker 说话人名字，可为空
	Speaker string

	// Text 台词或选项文本
	Text string

	// Raw 去除首尾空白后的原始行
	Raw string
}

// String 返回便于日志输出的指令描述
func (d Directive) String() string {
	switch d.Kind {
	case KindSetBackground, KindSetCharacter:
		return fmt.Sprintf("%s(%s)", d.Kind, d.File)
	case KindChoiceBlockStart:
		return d.Kind.String()
	case KindChoiceOption:
		return fmt.Sprintf("%s(%d: %s)", d.Kind, d.Number, d.Text)
	case KindChoiceTarget:
		return fmt.Sprintf("%s(%s, %q, %q)", d.Kind, d.Label, d.Speaker, d.Text)
	default:
		return fmt.Sprintf("%s(%q, %q)", d.Kind, d.Speaker, d.Text)
	}
}

// Selectable 分支台词能否被选项选中（标签必须是 select<编号>）
func (d Directive) Selectable() bool {
	return d.Kind == KindChoiceTarget && d.Label == TargetLabel(d.Number)
}

// TargetLabel 返回选项编号对应的分支标签
//
// 示例: TargetLabel(1) == "select1"
func TargetLabel(number int) string {
	return fmt.Sprintf("%s%d", targetPrefix, number)
}
