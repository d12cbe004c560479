// Package logger 结构化日志。
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel 解析日志级别（不区分大小写），未知级别返回 false。
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// New 创建写入 w 的 JSON 日志。
// 未知级别按 info 处理，并记录一条警告。
func New(level string, w io.Writer) *slog.Logger {
	lv, ok := ParseLevel(level)
	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv}))
	if !ok {
		log.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return log
}

// Discard 丢弃所有输出的日志。
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
