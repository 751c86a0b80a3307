package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewLogger 根据日志配置创建*slog.Logger,并设置为默认logger
// 设计说明:
// 1. format=json输出结构化JSON(生产环境),其余输出文本格式并带源码位置(开发环境)
// 2. output支持stdout、stderr或文件路径(追加写入)
// 3. level不区分大小写,未知值按info处理
func NewLogger(cfg *config.Config) (*slog.Logger, error) {
	w, err := openOutput(cfg.Log.Output)
	if err != nil {
		return nil, err
	}

	logger := New(cfg.Log, w)
	slog.SetDefault(logger)
	return logger, nil
}

// New 使用指定Writer创建logger(测试中写入bytes.Buffer)
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func openOutput(output string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		return f, nil
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
