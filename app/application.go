// Package app 组装配置、存储、历史核心与各运行模式。
// 守护进程与图形界面是两个独立进程，只通过历史文件和系统剪贴板间接共享状态。
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/janbajc/clipboard-history-linux/clipboard"
	"github.com/janbajc/clipboard-history-linux/config"
	"github.com/janbajc/clipboard-history-linux/history"
	"github.com/janbajc/clipboard-history-linux/model"
	"github.com/janbajc/clipboard-history-linux/storage"
	"github.com/janbajc/clipboard-history-linux/ui"
)

// Application 应用程序核心
type Application struct {
	config  *config.AppConfig
	backend storage.Storage
	store   *history.Store
	window  *ui.Window
}

// New 创建应用实例。maxItems 大于零时覆盖配置文件中的容量。
func New(maxItems int) (*Application, error) {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if maxItems > 0 {
		cfg.Storage.MaxItems = maxItems
	}

	// 创建存储后端
	backend, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("创建存储失败: %w", err)
	}

	return &Application{
		config:  cfg,
		backend: backend,
		store:   history.Load(backend, cfg.Storage.MaxItems),
	}, nil
}

// Close 释放存储资源
func (a *Application) Close() {
	a.backend.Close()
}

// RunDaemon 以守护进程模式运行：轮询剪贴板并记录历史，直到 ctx 取消
func (a *Application) RunDaemon(ctx context.Context) error {
	gateway := clipboard.NewSystemGateway()
	if err := gateway.Check(); err != nil {
		return err
	}

	interval := time.Duration(a.config.PollIntervalMs) * time.Millisecond
	monitor := clipboard.NewMonitor(a.store, gateway, interval)
	monitor.Run(ctx)
	return nil
}

// RunGUI 打开历史选择窗口
func (a *Application) RunGUI() error {
	gateway := clipboard.NewSystemGateway()
	if err := gateway.Check(); err != nil {
		return err
	}

	// 先捕获当前活动窗口，粘贴时需要切回去
	paster := clipboard.NewPaster(a.config.PasteKey)

	fyneApp := fyneapp.New()
	a.window = ui.NewWindow(fyneApp, a.store, gateway, paster, &a.config.Storage, a.handleSaveSettings)
	a.window.ShowAndRun()
	return nil
}

// RunList 把历史记录打印到文本流
func (a *Application) RunList(w io.Writer) error {
	entries := a.store.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "暂无剪贴板历史记录")
		return nil
	}

	fmt.Fprintf(w, "剪贴板历史（%d 条）：\n", len(entries))
	fmt.Fprintln(w, "--------------------------------------------------")
	for i, entry := range entries {
		fmt.Fprintf(w, "%d. [%s] %s\n\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			model.DisplayPreview(entry.Content),
		)
	}
	return nil
}

// RunClear 清空全部历史
func (a *Application) RunClear(w io.Writer) error {
	a.store.Clear()
	fmt.Fprintln(w, "剪贴板历史已清空")
	return nil
}

// handleSaveSettings 处理设置保存：写回配置文件并按新配置重建存储
func (a *Application) handleSaveSettings(newStorageCfg *config.StorageConfig) {
	// 更新并保存配置
	a.config.Storage = *newStorageCfg
	config.Save(a.config)

	// 关闭当前存储
	a.backend.Close()

	// 重新创建存储
	newBackend, err := storage.NewStorage(newStorageCfg)
	if err != nil {
		return
	}
	a.backend = newBackend
	a.store = history.Load(newBackend, newStorageCfg.MaxItems)

	// 重新加载历史记录
	if a.window != nil {
		a.window.UpdateHistory(a.store)
	}
}
