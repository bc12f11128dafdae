package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/decker502/vnplayer/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultPlayerConfigPath 嵌入的默认播放器配置
const DefaultPlayerConfigPath = "data/player.yaml"

// 环境变量覆盖（可写在 .env 中）
const (
	EnvScript        = "VNPLAYER_SCRIPT"
	EnvFont          = "VNPLAYER_FONT"
	EnvCharDelay     = "VNPLAYER_CHAR_DELAY_MS"
	EnvMouthInterval = "VNPLAYER_MOUTH_INTERVAL_MS"
)

// PlayerConfig 播放器配置
//
// 配置文件位置: data/player.yaml（可通过 --config 指定磁盘文件）
type PlayerConfig struct {
	// Title 窗口标题
	Title string `yaml:"title"`

	// Script 剧本路径（"data/" 开头优先读取嵌入资源）
	Script string `yaml:"script"`

	// ImageDir 图片目录，剧本中的文件名相对于此目录
	ImageDir string `yaml:"imageDir"`

	// Font 字体文件路径，为空或加载失败时使用内置位图字体（仅 ASCII）
	Font string `yaml:"font"`

	// CharDelayMs 逐字显示间隔（毫秒）
	CharDelayMs int `yaml:"charDelayMs"`

	// MouthIntervalMs 嘴型切换间隔（毫秒）
	MouthIntervalMs int `yaml:"mouthIntervalMs"`

	// FadeMs 背景切换与选项面板的淡入时长（毫秒），0 表示不淡入
	FadeMs int `yaml:"fadeMs"`
}

// DefaultPlayerConfig 返回默认配置
func DefaultPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		Title:           "vnplayer",
		Script:          "data/scenario.txt",
		ImageDir:        "assets/images",
		Font:            "",
		CharDelayMs:     50,
		MouthIntervalMs: 150,
		FadeMs:          300,
	}
}

// LoadPlayerConfig 加载播放器配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/player.yaml"）
//
// 返回:
//   - *PlayerConfig: 配置
//   - error: 读取、解析或验证失败
func LoadPlayerConfig(path string) (*PlayerConfig, error) {
	data, err := embedded.ReadAny(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config: %w", err)
	}
	return ParsePlayerConfig(data)
}

// ParsePlayerConfig 从 YAML 数据解析配置
func ParsePlayerConfig(data []byte) (*PlayerConfig, error) {
	cfg := DefaultPlayerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse player config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv 使用环境变量覆盖配置
//
// 返回:
//   - error: 数值型变量无法解析或覆盖后的配置无效
func (c *PlayerConfig) ApplyEnv() error {
	if v := os.Getenv(EnvScript); v != "" {
		c.Script = v
	}
	if v := os.Getenv(EnvFont); v != "" {
		c.Font = v
	}
	if v := os.Getenv(EnvCharDelay); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCharDelay, err)
		}
		c.CharDelayMs = n
	}
	if v := os.Getenv(EnvMouthInterval); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMouthInterval, err)
		}
		c.MouthIntervalMs = n
	}
	return c.Validate()
}

// Validate 验证配置有效性
func (c *PlayerConfig) Validate() error {
	if c.Script == "" {
		return fmt.Errorf("script path is empty")
	}
	if c.CharDelayMs <= 0 {
		return fmt.Errorf("charDelayMs must be positive, got %d", c.CharDelayMs)
	}
	if c.MouthIntervalMs < 0 {
		return fmt.Errorf("mouthIntervalMs must not be negative, got %d", c.MouthIntervalMs)
	}
	if c.FadeMs < 0 {
		return fmt.Errorf("fadeMs must not be negative, got %d", c.FadeMs)
	}
	return nil
}

// CharDelay 逐字显示间隔
func (c *PlayerConfig) CharDelay() time.Duration {
	return time.Duration(c.CharDelayMs) * time.Millisecond
}

// MouthInterval 嘴型切换间隔
func (c *PlayerConfig) MouthInterval() time.Duration {
	return time.Duration(c.MouthIntervalMs) * time.Millisecond
}

// FadeSeconds 淡入时长（秒），供 gween 使用
func (c *PlayerConfig) FadeSeconds() float32 {
	return float32(c.FadeMs) / 1000
}
