// Package cli 定义 vnplayer 命令行
//
//	vnplayer                 播放默认剧本（等同 vnplayer play）
//	vnplayer play [script]   播放剧本
//	vnplayer check <script>  检查剧本结构
//	vnplayer dump <script>   打印每一行的分类结果
package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/decker502/vnplayer/pkg/embedded"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalOptions 所有子命令共用的参数
type globalOptions struct {
	verbose    bool
	logFile    string
	configPath string
}

// NewRootCommand 创建根命令
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "vnplayer",
		Short: "vnplayer - 文字冒险剧本播放器",
		Long: `vnplayer 播放纯文本剧本：背景和立绘切换、逐字显示台词、
说话时的嘴型动画，以及汇合到同一位置的二选一分支。`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "启用详细日志输出")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "日志写入文件（按大小轮转）")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "播放器配置文件（默认使用内置 data/player.yaml）")

	play := newPlayCommand(opts)
	rootCmd.RunE = play.RunE
	rootCmd.Flags().AddFlagSet(play.Flags())

	rootCmd.AddCommand(play)
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newDumpCommand())
	return rootCmd
}

// Execute 初始化嵌入资源并运行命令行
func Execute(assets, data fs.FS) {
	// .env 文件可选，用于设置 VNPLAYER_* 环境变量
	_ = godotenv.Load()

	embedded.Init(assets, data)

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
