package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/janbajc/clipboard-history-linux/clipboard"
	"github.com/janbajc/clipboard-history-linux/config"
	"github.com/janbajc/clipboard-history-linux/history"
	"github.com/janbajc/clipboard-history-linux/model"
	"github.com/janbajc/clipboard-history-linux/ui/component"
)

// Window 应用主窗口。选中一条历史即写回剪贴板、切回原窗口模拟粘贴并关闭。
type Window struct {
	fyne.Window
	app            fyne.App
	store          *history.Store
	gateway        clipboard.Gateway
	paster         *clipboard.Paster
	historyList    *component.HistoryList
	searchBar      *component.SearchBar
	settingsPanel  *component.SettingsPanel
	contentTabs    *container.AppTabs
	onSaveSettings func(*config.StorageConfig)
}

// NewWindow 创建主窗口
func NewWindow(
	app fyne.App,
	store *history.Store,
	gateway clipboard.Gateway,
	paster *clipboard.Paster,
	storageCfg *config.StorageConfig,
	onSaveSettings func(*config.StorageConfig),
) *Window {
	win := app.NewWindow("剪贴板历史管理器")
	win.Resize(fyne.NewSize(600, 400))

	w := &Window{
		Window:         win,
		app:            app,
		store:          store,
		gateway:        gateway,
		paster:         paster,
		onSaveSettings: onSaveSettings,
	}

	// 初始化UI
	w.initUI(storageCfg)

	return w
}

// 初始化UI
func (w *Window) initUI(storageCfg *config.StorageConfig) {
	// 创建搜索框
	w.searchBar = component.NewSearchBar(func(text string) {
		w.applyFilter(text)
	})

	// 创建历史列表
	w.historyList = component.NewHistoryList(func(entry *model.HistoryEntry) {
		w.applyEntry(entry)
	})

	// 操作按钮
	refreshBtn := widget.NewButtonWithIcon("刷新", theme.ViewRefreshIcon(), func() {
		w.Refresh()
	})
	clearBtn := widget.NewButtonWithIcon("清空历史", theme.DeleteIcon(), func() {
		w.clearHistory()
	})
	buttons := container.NewHBox(refreshBtn, clearBtn)

	// 主内容区域
	historyContent := container.NewBorder(
		w.searchBar,
		buttons,
		nil, nil,
		w.historyList,
	)

	// 设置面板
	w.settingsPanel = component.NewSettingsPanel(w.Window, storageCfg, w.onSaveSettings)

	// 创建标签页
	w.contentTabs = container.NewAppTabs(
		container.NewTabItemWithIcon("历史记录", theme.HistoryIcon(), historyContent),
		container.NewTabItemWithIcon("设置", theme.SettingsIcon(), w.settingsPanel),
	)

	// 设置主内容
	w.SetContent(w.contentTabs)

	// 加载初始数据
	w.applyFilter("")
}

// applyEntry 把选中的条目写回剪贴板并模拟粘贴
func (w *Window) applyEntry(entry *model.HistoryEntry) {
	if err := w.gateway.Write(entry.Content); err != nil {
		slog.Warn("写入剪贴板失败", "error", err)
		dialog.ShowInformation("复制失败", "无法写入系统剪贴板", w.Window)
		return
	}

	// 抑制守护进程对本次写入的重复捕获
	w.store.MarkSeen(entry.Content)

	if w.paster != nil {
		w.paster.RestoreAndPaste()
	}
	w.Close()
}

// Refresh 重新从后端加载历史（守护进程可能已经更新了文件）
func (w *Window) Refresh() {
	w.store.Reload()
	w.applyFilter(w.searchBar.Keyword())
}

// applyFilter 按关键字过滤并更新列表
func (w *Window) applyFilter(keyword string) {
	entries := w.store.Entries()
	if keyword == "" {
		w.historyList.UpdateEntries(entries)
		return
	}

	keyword = strings.ToLower(keyword)
	var results []*model.HistoryEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Content), keyword) {
			results = append(results, entry)
		}
	}
	w.historyList.UpdateEntries(results)
}

// clearHistory 确认后清空全部历史
func (w *Window) clearHistory() {
	dialog.ShowConfirm("确认", "清空所有剪贴板历史？", func(ok bool) {
		if !ok {
			return
		}
		w.store.Clear()
		w.applyFilter(w.searchBar.Keyword())
	}, w.Window)
}

// UpdateHistory 存储后端变更后用新的存储刷新界面（设置保存后由应用层调用）
func (w *Window) UpdateHistory(store *history.Store) {
	w.store = store
	w.applyFilter(w.searchBar.Keyword())
}
