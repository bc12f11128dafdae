package scenario

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/vnplayer/pkg/embedded"
)

// ErrEmptyScript 剧本中没有任何指令行
var ErrEmptyScript = errors.New("scenario: script has no directives")

// utf8BOM Windows 记事本保存的 UTF-8 文件可能带有 BOM
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Script 剧本存储（有序、不可变）
//
// 每行在创建时分类一次并缓存，解释器只读访问。
// 行号从 0 开始，Len() 表示剧本结束位置。
type Script struct {
	lines      []string
	directives []Directive
	// sourceLines 每行在源文件中的行号（从 1 开始）
	sourceLines []int
}

// NewScript 从原始行创建剧本
// 每行去除首尾空白；空行保留（按空台词处理），需要过滤时使用 Parse
func NewScript(lines []string) *Script {
	s := &Script{
		lines:       make([]string, len(lines)),
		directives:  make([]Directive, len(lines)),
		sourceLines: make([]int, len(lines)),
	}
	for i, line := range lines {
		s.lines[i] = strings.TrimSpace(line)
		s.directives[i] = Classify(s.lines[i])
		s.sourceLines[i] = i + 1
	}
	return s
}

// Parse 从 reader 读取剧本文本
//
// 处理规则：
//   - 去除 UTF-8 BOM 和行尾 \r
//   - 每行去除首尾空白
//   - 丢弃空行（空行不是指令）
//
// 返回：
//   - *Script: 剧本实例
//   - error: 读取失败或没有任何指令（ErrEmptyScript）
func Parse(r io.Reader) (*Script, error) {
	var lines []string
	var sourceLines []int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if first {
			raw = bytes.TrimPrefix(raw, utf8BOM)
			first = false
		}
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		lines = append(lines, line)
		sourceLines = append(sourceLines, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyScript
	}

	script := NewScript(lines)
	script.sourceLines = sourceLines
	return script, nil
}

// Load 加载剧本文件
// 路径以 "data/" 开头时优先读取嵌入资源，否则从磁盘读取
// 空行在加载时丢弃，播放时不会消耗一次点击
func Load(path string) (*Script, error) {
	file, err := embedded.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer file.Close()

	script, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}
	return script, nil
}

// Len 返回剧本行数
func (s *Script) Len() int {
	return len(s.lines)
}

// Line 返回第 i 行原始文本（已去除首尾空白），越界返回空字符串
func (s *Script) Line(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

// SourceLine 返回第 i 行在源文件中的行号（从 1 开始），越界返回 0
func (s *Script) SourceLine(i int) int {
	if i < 0 || i >= len(s.sourceLines) {
		return 0
	}
	return s.sourceLines[i]
}

// At 返回第 i 行的指令
func (s *Script) At(i int) (Directive, bool) {
	if i < 0 || i >= len(s.directives) {
		return Directive{}, false
	}
	return s.directives[i], true
}

// FindTarget 从 from 开始查找第一条标签为 label 的分支台词
func (s *Script) FindTarget(label string, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s.directives); i++ {
		d := s.directives[i]
		if d.Kind == KindChoiceTarget && d.Label == label {
			return i, true
		}
	}
	return -1, false
}
