// Package logging 配置全局 slog 日志器。
// 终端下使用 tinter 彩色输出，非终端（如 systemd 服务）输出 JSON。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format 日志输出格式
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat 解析格式字符串，未知值回退为 FormatAuto
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "tint":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// ParseLevel 解析级别字符串，解析失败默认 Info
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// IsTTY 判断写入目标是否为终端
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Setup 配置全局 slog 日志器，应在命令行参数解析后调用一次
func Setup(format Format, level slog.Level) {
	w := os.Stderr
	useTint := format == FormatText || (format == FormatAuto && IsTTY(w))

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(h))
}
