package clipboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/janbajc/clipboard-history-linux/history"
	"github.com/janbajc/clipboard-history-linux/model"
)

// ErrorBackoff 某一轮读取失败后的额外等待时间，避免对故障工具的重试风暴
const ErrorBackoff = 5 * time.Second

// Monitor 剪贴板监听器。单 goroutine 轮询网关，把新内容交给历史存储，
// 去重和大小限制都由存储负责。
type Monitor struct {
	store    *history.Store
	gateway  Gateway
	interval time.Duration // 轮询间隔
	backoff  time.Duration // 失败后的等待时间
}

// NewMonitor 创建剪贴板监听器
func NewMonitor(store *history.Store, gateway Gateway, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = time.Second
	}
	return &Monitor{
		store:    store,
		gateway:  gateway,
		interval: interval,
		backoff:  ErrorBackoff,
	}
}

// Run 阻塞运行轮询循环，直到 ctx 取消。
// 启动时先记住当前剪贴板内容，启动前就存在的内容不会被当作新条目。
func (m *Monitor) Run(ctx context.Context) {
	if text, err := m.gateway.Read(); err == nil {
		m.store.MarkSeen(text)
	}

	slog.Info("剪贴板监控已启动",
		"backend", m.gateway.Name(),
		"interval", m.interval,
		"location", m.store.Location(),
	)

	for {
		wait := m.interval
		if !m.checkOnce() {
			wait = m.backoff
		}

		select {
		case <-ctx.Done():
			slog.Info("剪贴板监控已停止")
			return
		case <-time.After(wait):
		}
	}
}

// checkOnce 执行一轮检查，返回本轮是否成功（失败则调用方延长等待）
func (m *Monitor) checkOnce() bool {
	text, err := m.gateway.Read()
	if err != nil {
		slog.Warn("读取剪贴板失败，延长等待后重试", "error", err, "backoff", m.backoff)
		return false
	}

	if m.store.Insert(text) {
		slog.Info("已记录新内容", "preview", model.DisplayPreview(text))
	}
	return true
}
