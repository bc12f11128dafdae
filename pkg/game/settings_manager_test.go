package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
// HOME 指向临时目录，测试结束后自动清理
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", filepath.Join(os.Getenv("HOME"), ".local", "share"))

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("vnplayer_test_%s_%d", testName, time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.TextSpeed != 1.0 {
		t.Errorf("TextSpeed: got %v, want 1.0", settings.TextSpeed)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetTextSpeed(2.0)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().TextSpeed != 2.0 {
		t.Errorf("TextSpeed = %v, want 2.0", sm.GetSettings().TextSpeed)
	}
}

// TestSettingsManagerSaveAndLoad 测试保存后重新加载
func TestSettingsManagerSaveAndLoad(t *testing.T) {
	manager := createTestGdataManager(t, "save_load")

	sm := NewSettingsManager(manager)
	sm.SetTextSpeed(1.5)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	got := reloaded.GetSettings()
	if got.TextSpeed != 1.5 || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v, want textSpeed=1.5 fullscreen=true", got)
	}
}

// TestSettingsManagerCorruptData 测试存档损坏时回退到默认设置
func TestSettingsManagerCorruptData(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("textSpeed: [")); err != nil {
		t.Fatalf("failed to write corrupt data: %v", err)
	}

	sm := NewSettingsManager(manager)
	if sm.GetSettings().TextSpeed != 1.0 {
		t.Errorf("TextSpeed = %v, want default 1.0", sm.GetSettings().TextSpeed)
	}
}

// TestSetTextSpeedClamp 测试文字速度范围限制
func TestSetTextSpeedClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "正常值", input: 2.0, want: 2.0},
		{name: "过小", input: 0.1, want: MinTextSpeed},
		{name: "过大", input: 10, want: MaxTextSpeed},
		{name: "零值视为默认", input: 0, want: 1.0},
		{name: "负值视为默认", input: -3, want: 1.0},
	}

	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetTextSpeed(tt.input)
			if got := sm.GetSettings().TextSpeed; got != tt.want {
				t.Errorf("SetTextSpeed(%v) → %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestCharDelay 测试文字速度换算
func TestCharDelay(t *testing.T) {
	sm := NewSettingsManager(nil)

	if got := sm.CharDelay(50 * time.Millisecond); got != 50*time.Millisecond {
		t.Errorf("CharDelay at 1.0x = %v, want 50ms", got)
	}

	sm.SetTextSpeed(2.0)
	if got := sm.CharDelay(50 * time.Millisecond); got != 25*time.Millisecond {
		t.Errorf("CharDelay at 2.0x = %v, want 25ms", got)
	}

	sm.SetTextSpeed(MaxTextSpeed)
	if got := sm.CharDelay(time.Millisecond); got != time.Millisecond {
		t.Errorf("CharDelay must not drop below 1ms, got %v", got)
	}
}
