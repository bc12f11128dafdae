package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/vnplayer/pkg/config"
)

func TestLoadPlayerConfigDefaults(t *testing.T) {
	t.Setenv(config.EnvScript, "")
	t.Setenv(config.EnvCharDelay, "")

	cfg, err := LoadPlayerConfig(Config{})
	if err != nil {
		t.Fatalf("LoadPlayerConfig failed: %v", err)
	}
	if cfg.Script != config.DefaultPlayerConfig().Script {
		t.Errorf("Script = %q, want default", cfg.Script)
	}
}

func TestLoadPlayerConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(path, []byte("script: from_file.txt\ncharDelayMs: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		envScript  string
		envDelay   string
		flagScript string
		wantScript string
		wantDelay  int
	}{
		{name: "仅配置文件", wantScript: "from_file.txt", wantDelay: 40},
		{name: "环境变量覆盖配置文件", envScript: "from_env.txt", envDelay: "20", wantScript: "from_env.txt", wantDelay: 20},
		{name: "命令行参数优先", envScript: "from_env.txt", flagScript: "from_flag.txt", wantScript: "from_flag.txt", wantDelay: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvScript, tt.envScript)
			t.Setenv(config.EnvCharDelay, tt.envDelay)

			cfg, err := LoadPlayerConfig(Config{ConfigPath: path, ScriptPath: tt.flagScript})
			if err != nil {
				t.Fatalf("LoadPlayerConfig failed: %v", err)
			}
			if cfg.Script != tt.wantScript {
				t.Errorf("Script = %q, want %q", cfg.Script, tt.wantScript)
			}
			if cfg.CharDelayMs != tt.wantDelay {
				t.Errorf("CharDelayMs = %d, want %d", cfg.CharDelayMs, tt.wantDelay)
			}
		})
	}
}

func TestLoadPlayerConfigErrors(t *testing.T) {
	t.Run("指定的配置文件不存在", func(t *testing.T) {
		_, err := LoadPlayerConfig(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
		if err == nil {
			t.Error("expected error for missing explicit config")
		}
	})

	t.Run("环境变量不是数字", func(t *testing.T) {
		t.Setenv(config.EnvCharDelay, "fast")
		_, err := LoadPlayerConfig(Config{})
		if err == nil {
			t.Error("expected error for invalid env value")
		}
	})
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if out := SetupLogging(false, ""); out != io.Discard {
		t.Error("quiet mode should discard logs")
	}
	if out := SetupLogging(true, ""); out != os.Stderr {
		t.Error("verbose mode should log to stderr")
	}

	logFile := filepath.Join(t.TempDir(), "vnplayer.log")
	SetupLogging(false, logFile)
	log.Printf("[Test] hello")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "[Test] hello") {
		t.Errorf("log file = %q", string(data))
	}
}
