package app

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志文件轮转参数
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// SetupLogging 配置标准库 log 的输出
//
//   - verbose=false 且未指定日志文件：丢弃所有日志
//   - 指定日志文件：写入按大小轮转的文件（verbose 时同时输出到标准错误）
//   - 其余情况：输出到标准错误
//
// 返回实际使用的 writer，便于测试和关闭
func SetupLogging(verbose bool, logFile string) io.Writer {
	var out io.Writer
	switch {
	case logFile != "":
		rotating := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		out = rotating
		if verbose {
			out = io.MultiWriter(os.Stderr, rotating)
		}
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	case verbose:
		out = os.Stderr
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	default:
		out = io.Discard
		log.SetFlags(0)
	}
	log.SetOutput(out)
	return out
}
