package cli

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"

	"github.com/decker502/vnplayer/pkg/embedded"
	"github.com/decker502/vnplayer/pkg/reveal"
	"github.com/decker502/vnplayer/pkg/scenario"
	"github.com/spf13/cobra"
)

// errScriptInvalid check 命令发现错误级问题
var errScriptInvalid = errors.New("script has errors")

func newCheckCommand() *cobra.Command {
	var imageDir string

	cmd := &cobra.Command{
		Use:   "check <script>",
		Short: "检查剧本结构和引用的图片（缺少分支台词、孤立选项、缺失图片等）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			issues := scenario.Validate(script)
			if imageDir != "" {
				issues = append(issues, checkImages(script, imageDir, assetExists)...)
				sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
			}
			return printIssues(cmd, args[0], issues)
		},
	}
	cmd.Flags().StringVar(&imageDir, "image-dir", "", "检查剧本引用的图片是否存在于该目录（如 assets/images）")
	return cmd
}

// assetExists 嵌入资源或磁盘文件存在
func assetExists(p string) bool {
	if embedded.Exists(p) {
		return true
	}
	_, err := os.Stat(p)
	return err == nil
}

// checkImages 报告 set bg / set char 引用但不存在的图片
// 立绘名以 _closed 结尾时同时检查张嘴图
func checkImages(script *scenario.Script, imageDir string, exists func(string) bool) []scenario.Issue {
	var issues []scenario.Issue
	missing := func(i int, file string) {
		issues = append(issues, scenario.Issue{
			Line:     script.SourceLine(i),
			Severity: scenario.SeverityWarning,
			Message:  fmt.Sprintf("image %q not found in %s", file, imageDir),
		})
	}

	for i := 0; i < script.Len(); i++ {
		d, _ := script.At(i)
		if d.Kind != scenario.KindSetBackground && d.Kind != scenario.KindSetCharacter {
			continue
		}
		if d.File == "" {
			continue
		}
		if !exists(path.Join(imageDir, d.File)) {
			missing(i, d.File)
		}
		if d.Kind != scenario.KindSetCharacter {
			continue
		}
		if _, open, ok := reveal.MouthPair(d.File); ok && !exists(path.Join(imageDir, open)) {
			missing(i, open)
		}
	}
	return issues
}

// printIssues 输出检查结果，有错误级问题时返回 errScriptInvalid
func printIssues(cmd *cobra.Command, scriptPath string, issues []scenario.Issue) error {
	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, okStyle.Render("✓ "+scriptPath+": no problems found"))
		return nil
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s: %d problem(s)", scriptPath, len(issues))))
	errorCount := 0
	for _, issue := range issues {
		style := warningStyle
		if issue.Severity == scenario.SeverityError {
			style = errorStyle
			errorCount++
		}
		fmt.Fprintln(out, style.Render(issue.String()))
	}

	if errorCount > 0 {
		return fmt.Errorf("%w: %d error(s)", errScriptInvalid, errorCount)
	}
	return nil
}
