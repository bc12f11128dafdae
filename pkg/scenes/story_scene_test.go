package scenes

import (
	"testing"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/decker502/vnplayer/pkg/interpreter"
	"github.com/decker502/vnplayer/pkg/scenario"
)

const frame = 1.0 / 60

func newTestStoryScene(t *testing.T, lines []string) (*StoryScene, *int) {
	t.Helper()
	cfg := config.DefaultPlayerConfig()
	cfg.FadeMs = 0
	cfg.CharDelayMs = 10
	ended := 0
	scene := NewStoryScene(game.NewResourceManager(t.TempDir()), nil, cfg, scenario.NewScript(lines), func() { ended++ })
	return scene, &ended
}

// runFrames 推进若干帧（无输入）
func runFrames(s *StoryScene, n int) {
	for i := 0; i < n; i++ {
		s.step(frame, false)
	}
}

func TestStorySceneBeginOnce(t *testing.T) {
	scene, _ := newTestStoryScene(t, []string{"A「one」", "B「two」"})

	scene.Begin()
	scene.Begin()
	runFrames(scene, 30)

	if scene.Stage().Text() != "one" {
		t.Errorf("text = %q, want one", scene.Stage().Text())
	}
	if scene.Interpreter().Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", scene.Interpreter().Cursor())
	}
}

func TestStorySceneClickFlow(t *testing.T) {
	scene, ended := newTestStoryScene(t, []string{
		"set bg room.png",
		"Alice「Which way?」",
		"set select",
		"1:Left",
		"2:Right",
		"select1 Alice「Left it is.」",
		"select2 Alice「Right it is.」",
		"Bob「Meet again.」",
	})

	scene.Begin()
	// 逐字显示中点击：立即显示全部
	scene.step(frame, true)
	if scene.Stage().Text() != "Which way?" {
		t.Fatalf("text after force complete = %q", scene.Stage().Text())
	}
	if scene.Interpreter().State() != interpreter.StateIdle {
		t.Fatalf("state = %v, want Idle", scene.Interpreter().State())
	}

	scene.step(frame, true)
	if scene.Interpreter().State() != interpreter.StateAwaitingChoice {
		t.Fatalf("state = %v, want AwaitingChoice", scene.Interpreter().State())
	}

	// 选择期间的推进点击被忽略
	scene.step(frame, true)
	if scene.Stage().ChoiceCount() != 2 {
		t.Fatalf("choices = %d, want 2", scene.Stage().ChoiceCount())
	}

	if !scene.choiceInputSystem.SelectNumber(1) {
		t.Fatal("SelectNumber(1) should hit a button")
	}
	runFrames(scene, 60)
	if scene.Stage().Text() != "Left it is." {
		t.Errorf("text = %q, want branch line", scene.Stage().Text())
	}

	scene.step(frame, true)
	runFrames(scene, 60)
	if scene.Stage().Speaker() != "Bob" {
		t.Errorf("speaker = %q, want Bob", scene.Stage().Speaker())
	}

	scene.step(frame, true)
	scene.step(frame, true)
	if *ended != 1 {
		t.Errorf("onEnd called %d times, want 1", *ended)
	}
}

func TestStorySceneContinueHint(t *testing.T) {
	scene, _ := newTestStoryScene(t, []string{"A「abc」"})

	scene.Begin()
	scene.step(frame, false)
	if scene.Stage().ContinueHint() {
		t.Error("hint should be hidden while revealing")
	}

	runFrames(scene, 30)
	if !scene.Stage().ContinueHint() {
		t.Error("hint should show once the line is complete")
	}
}

func TestStorySceneRestart(t *testing.T) {
	scene, _ := newTestStoryScene(t, []string{"set char alice_closed.png", "A「abc」"})

	scene.Begin()
	runFrames(scene, 30)
	scene.Restart()

	if scene.Interpreter().Cursor() != 0 || scene.Stage().Text() != "" || scene.Stage().Character() != "" {
		t.Error("Restart should clear stage and rewind cursor")
	}

	scene.Begin()
	runFrames(scene, 30)
	if scene.Stage().Text() != "abc" {
		t.Errorf("text after restart = %q, want abc", scene.Stage().Text())
	}
}

func TestTitleSceneStart(t *testing.T) {
	started := 0
	scene := NewTitleScene(game.NewResourceManager(""), config.DefaultPlayerConfig(), func() { started++ })

	scene.step(frame, false)
	if started != 0 {
		t.Error("should not start without input")
	}
	scene.step(frame, true)
	if started != 1 {
		t.Errorf("onStart called %d times, want 1", started)
	}
}

func TestEndSceneReturn(t *testing.T) {
	returned := 0
	scene := NewEndScene(game.NewResourceManager(""), config.DefaultPlayerConfig(), func() { returned++ })

	scene.step(false)
	scene.step(true)
	if returned != 1 {
		t.Errorf("onReturn called %d times, want 1", returned)
	}
}
