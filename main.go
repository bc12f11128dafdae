package main

import "github.com/decker502/vnplayer/internal/cli"

func main() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	cli.Execute(assetsFS, dataFS)
}
