package scenario

import "fmt"

// Severity 检查结果的严重程度
type Severity int

const (
	// SeverityWarning 可以播放，但部分内容不会显示
	SeverityWarning Severity = iota
	// SeverityError 播放时必然出现无法推进的选项
	SeverityError
)

// String 返回 Severity 的字符串表示
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue 剧本检查发现的问题
type Issue struct {
	// Line 源文件行号（从 1 开始，空行也计数）
	Line     int
	Severity Severity
	Message  string
}

// String 返回 "行号: 级别: 描述"
func (i Issue) String() string {
	return fmt.Sprintf("%d: %s: %s", i.Line, i.Severity, i.Message)
}

// Validate 检查剧本结构
//
// 解释器对格式错误的剧本不会崩溃，只会静默跳过无法显示的内容；
// Validate 把这些会被跳过的内容提前报告出来。
//
// 检查项：
//   - set bg / set char 缺少文件名
//   - 选项行出现在选项块之外
//   - 选项块没有任何选项
//   - 同一选项块内编号重复
//   - 选项没有对应的 select<n> 分支台词
//   - 分支台词的标签不是 select<编号>，永远不会显示
func Validate(s *Script) []Issue {
	var issues []Issue
	report := func(index int, sev Severity, format string, args ...any) {
		issues = append(issues, Issue{Line: s.SourceLine(index), Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	for i := 0; i < s.Len(); i++ {
		d, _ := s.At(i)
		switch d.Kind {
		case KindSetBackground, KindSetCharacter:
			if d.File == "" {
				report(i, SeverityWarning, "%q has no file name", d.Raw)
			}

		case KindChoiceOption:
			report(i, SeverityWarning, "option %d outside of a choice block is skipped", d.Number)

		case KindChoiceTarget:
			reportUnselectable(i, d, report)

		case KindChoiceBlockStart:
			end := validateBlock(s, i, report)
			// 跳过块内已检查的行，循环末尾会再 +1
			i = end - 1
		}
	}

	return issues
}

// validateBlock 检查从 start 开始的选项块，返回块结束位置（恢复点）
func validateBlock(s *Script, start int, report func(int, Severity, string, ...any)) int {
	seen := make(map[int]bool)
	targets := make(map[string]bool)
	var options []Directive
	var optionLines []int

	end := start + 1
	for ; end < s.Len(); end++ {
		d, _ := s.At(end)
		if d.Kind == KindChoiceOption {
			if seen[d.Number] {
				report(end, SeverityWarning, "duplicate option number %d in choice block", d.Number)
			}
			seen[d.Number] = true
			options = append(options, d)
			optionLines = append(optionLines, end)
			continue
		}
		if d.Kind == KindChoiceTarget {
			targets[d.Label] = true
			reportUnselectable(end, d, report)
			continue
		}
		break
	}

	if len(options) == 0 {
		report(start, SeverityWarning, "choice block has no options")
		return end
	}

	for idx, opt := range options {
		label := TargetLabel(opt.Number)
		if targets[label] {
			continue
		}
		if _, ok := s.FindTarget(label, end); ok {
			continue
		}
		report(optionLines[idx], SeverityError, "option %d has no %q line", opt.Number, label)
	}

	return end
}

func reportUnselectable(index int, d Directive, report func(int, Severity, string, ...any)) {
	if !d.Selectable() {
		report(index, SeverityWarning, "%q is never shown: label %q has no option number", d.Raw, d.Label)
	}
}
