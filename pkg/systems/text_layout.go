package systems

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// wrapText 按像素宽度逐字换行
// 台词没有空格分词（日文、中文），所以按字符而不是按单词断行
func wrapText(textStr string, face text.Face, maxWidth float64) []string {
	if face == nil || textStr == "" {
		return nil
	}

	var lines []string
	var currentLine string

	for _, r := range textStr {
		if r == '\n' {
			lines = append(lines, currentLine)
			currentLine = ""
			continue
		}
		testLine := currentLine + string(r)
		if measureTextWidth(testLine, face) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = string(r)
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// measureTextWidth 测量单行文本宽度
func measureTextWidth(textStr string, face text.Face) float64 {
	if face == nil {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}
