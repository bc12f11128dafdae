package systems

import (
	"strings"
	"testing"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

func TestHintVisible(t *testing.T) {
	tests := []struct {
		name    string
		show    bool
		elapsed float64
		want    bool
	}{
		{name: "未启用", show: false, elapsed: 0, want: false},
		{name: "周期前半段", show: true, elapsed: 0.2, want: true},
		{name: "周期后半段", show: true, elapsed: 0.7, want: false},
		{name: "第二个周期", show: true, elapsed: 1.1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := &components.DialogueBoxComponent{ShowContinueHint: tt.show, HintElapsed: tt.elapsed}
			if got := hintVisible(box); got != tt.want {
				t.Errorf("hintVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDialogueRenderSystemUpdateHintTimer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDialogueRenderSystem(em, nil, nil)

	id := em.CreateEntity()
	box := &components.DialogueBoxComponent{ShowContinueHint: true}
	ecs.AddComponent(em, id, box)

	system.Update(0.25)
	system.Update(0.25)
	if box.HintElapsed != 0.5 {
		t.Errorf("HintElapsed = %v, want 0.5", box.HintElapsed)
	}

	box.ShowContinueHint = false
	system.Update(0.25)
	if box.HintElapsed != 0 {
		t.Errorf("HintElapsed = %v, want reset to 0", box.HintElapsed)
	}
}

func TestWrapText(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{name: "空文本", input: "", maxWidth: 100, want: nil},
		{name: "不需要换行", input: "abc", maxWidth: 100, want: []string{"abc"}},
		{name: "按宽度换行", input: "abcdef", maxWidth: 21, want: []string{"abc", "def"}},
		{name: "显式换行", input: "ab\ncd", maxWidth: 100, want: []string{"ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.input, face, tt.maxWidth)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("wrapText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrapTextNilFace(t *testing.T) {
	if got := wrapText("abc", nil, 10); got != nil {
		t.Errorf("wrapText with nil face = %q, want nil", got)
	}
}
