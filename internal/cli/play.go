package cli

import (
	"fmt"
	"log"

	"github.com/decker502/vnplayer/pkg/app"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newPlayCommand(opts *globalOptions) *cobra.Command {
	var skipTitle bool

	cmd := &cobra.Command{
		Use:   "play [script]",
		Short: "播放剧本",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{
				Verbose:    opts.verbose,
				LogFile:    opts.logFile,
				ConfigPath: opts.configPath,
				SkipTitle:  skipTitle,
			}
			if len(args) == 1 {
				cfg.ScriptPath = args[0]
			}
			return runPlayer(cfg)
		},
	}
	cmd.Flags().BoolVar(&skipTitle, "skip-title", false, "跳过标题画面，直接开始播放")
	return cmd
}

func runPlayer(cfg app.Config) error {
	player, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("播放器初始化失败: %w", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(player.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(player.Fullscreen())

	log.Printf("[main] 启动 %s", player.Title())
	if err := ebiten.RunGame(player); err != nil {
		return fmt.Errorf("播放器异常退出: %w", err)
	}
	return nil
}
