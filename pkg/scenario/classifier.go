package scenario

import (
	"strconv"
	"strings"
)

const (
	backgroundPrefix = "set bg"
	characterPrefix  = "set char"
	choiceBlockLine  = "set select"
	targetPrefix     = "select"

	// 台词引号（日文括号）
	openQuote  = "「"
	closeQuote = "」"
)

// Classify 将一行剧本分类为指令
//
// 规则按顺序匹配，先匹配者生效：
//  1. 以 "set bg" 开头 → SetBackground（文件名为前缀之后的第一个字段）
//  2. 以 "set char" 开头 → SetCharacter
//  3. 等于 "set select" → ChoiceBlockStart
//  4. 形如 "<数字>:<文本>" → ChoiceOption
//  5. 以 "select<标签>" 加空格开头 → ChoiceTarget（标签非数字时 Number 为 0）
//  6. 其他 → PlainLine
//
// 该函数不会返回错误，格式错误的行按普通台词处理。
func Classify(line string) Directive {
	line = strings.TrimSpace(line)
	d := Directive{Raw: line}

	switch {
	case strings.HasPrefix(line, backgroundPrefix):
		d.Kind = KindSetBackground
		d.File = fieldAfter(line, backgroundPrefix)

	case strings.HasPrefix(line, characterPrefix):
		d.Kind = KindSetCharacter
		d.File = fieldAfter(line, characterPrefix)

	case line == choiceBlockLine:
		d.Kind = KindChoiceBlockStart

	default:
		if number, text, ok := parseOption(line); ok {
			d.Kind = KindChoiceOption
			d.Number = number
			d.Text = text
			return d
		}
		if label, number, rest, ok := parseTarget(line); ok {
			d.Kind = KindChoiceTarget
			d.Label = label
			d.Number = number
			d.Speaker, d.Text = SplitSpeech(rest)
			return d
		}
		d.Kind = KindPlainLine
		d.Speaker, d.Text = SplitSpeech(line)
	}

	return d
}

// SplitSpeech 按「拆分说话人与台词
//
// 输入: "アリス「こんにちは」"
// 输出: ("アリス", "こんにちは")
//
// 没有「时说话人为空，台词为整行。
func SplitSpeech(s string) (speaker, text string) {
	s = strings.TrimSpace(s)
	before, after, found := strings.Cut(s, openQuote)
	if !found {
		return "", s
	}
	after = strings.Replace(after, closeQuote, "", 1)
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// fieldAfter 返回前缀之后的第一个空白分隔字段，不存在时返回空字符串
//
// 示例: fieldAfter("set bg room.png", "set bg") == "room.png"
func fieldAfter(line, prefix string) string {
	fields := strings.Fields(strings.TrimPrefix(line, prefix))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseOption 解析 "<数字>:<文本>" 格式的选项行
func parseOption(line string) (int, string, bool) {
	if len(line) < 2 || line[0] < '0' || line[0] > '9' || line[1] != ':' {
		return 0, "", false
	}
	return int(line[0] - '0'), strings.TrimSpace(line[2:]), true
}

// parseTarget 解析 "select<标签> <剩余部分>" 格式的分支台词行
//
// 以 select 开头且含空格的行都是分支台词，标签为空格前的整个单词。
// 标签后缀不是数字时 number 为 0，这样的行不会被任何选项选中。
func parseTarget(line string) (label string, number int, rest string, ok bool) {
	if !strings.HasPrefix(line, targetPrefix) {
		return "", 0, "", false
	}
	label, rest, found := strings.Cut(line, " ")
	if !found {
		return "", 0, "", false
	}
	if n, err := strconv.Atoi(label[len(targetPrefix):]); err == nil && n >= 0 {
		number = n
	}
	return label, number, rest, true
}
