package cli

import (
	"fmt"
	"strings"

	"github.com/decker502/vnplayer/pkg/scenario"
	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <script>",
		Short: "打印剧本每一行的分类结果",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			dumpScript(cmd, script)
			return nil
		},
	}
}

func dumpScript(cmd *cobra.Command, script *scenario.Script) {
	out := cmd.OutOrStdout()
	for i := 0; i < script.Len(); i++ {
		d, _ := script.At(i)
		fmt.Fprintln(out,
			lineNoStyle.Render(fmt.Sprint(script.SourceLine(i)))+
				kindStyle.Render(d.Kind.String())+
				" "+describe(d))
	}
}

// describe 返回指令的关键字段
func describe(d scenario.Directive) string {
	var fields []string
	switch d.Kind {
	case scenario.KindSetBackground, scenario.KindSetCharacter:
		fields = append(fields, "file="+d.File)
	case scenario.KindChoiceOption:
		fields = append(fields, fmt.Sprintf("number=%d", d.Number), "label="+d.Text)
	case scenario.KindChoiceTarget:
		fields = append(fields, "label="+d.Label)
		fallthrough
	case scenario.KindPlainLine:
		if d.Speaker != "" {
			fields = append(fields, "speaker="+d.Speaker)
		}
		fields = append(fields, fmt.Sprintf("text=%q", d.Text))
	}
	return strings.Join(fields, " ")
}
