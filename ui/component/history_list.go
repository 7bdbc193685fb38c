package component

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/janbajc/clipboard-history-linux/model"
)

// HistoryList 历史记录列表组件。每行显示单行化的预览和相对时间，
// 选中一行即触发回调（写回剪贴板并关闭窗口）。
type HistoryList struct {
	*widget.List
	entries  []*model.HistoryEntry      // 当前显示的条目
	onSelect func(*model.HistoryEntry) // 选择回调
}

// NewHistoryList 创建历史记录列表
func NewHistoryList(onSelect func(*model.HistoryEntry)) *HistoryList {
	list := &HistoryList{
		onSelect: onSelect,
	}

	list.List = widget.NewList(
		func() int {
			return len(list.entries)
		},
		func() fyne.CanvasObject {
			return list.createRow()
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			list.updateRow(i, o)
		},
	)

	list.OnSelected = func(i widget.ListItemID) {
		if i >= 0 && i < len(list.entries) && list.onSelect != nil {
			entry := list.entries[i]
			list.Unselect(i)
			list.onSelect(entry)
		}
	}

	return list
}

// UpdateEntries 更新列表内容并重建界面
func (l *HistoryList) UpdateEntries(entries []*model.HistoryEntry) {
	l.entries = entries

	fyne.Do(func() {
		l.Refresh()
		l.UnselectAll()
	})
}

// 创建行控件
func (l *HistoryList) createRow() fyne.CanvasObject {
	preview := widget.NewLabel("")
	preview.Truncation = fyne.TextTruncateEllipsis

	timestamp := widget.NewLabel("")
	timestamp.TextStyle = fyne.TextStyle{Italic: true}

	row := container.NewVBox(
		preview,
		timestamp,
	)

	// 添加分隔线
	return container.NewVBox(
		row,
		canvas.NewLine(color.Gray{Y: 200}),
	)
}

// 更新行控件
func (l *HistoryList) updateRow(i int, o fyne.CanvasObject) {
	if i < 0 || i >= len(l.entries) {
		return
	}

	entry := l.entries[i]
	box := o.(*fyne.Container)
	row := box.Objects[0].(*fyne.Container)

	previewLabel := row.Objects[0].(*widget.Label)
	timeLabel := row.Objects[1].(*widget.Label)

	previewText := model.DisplayPreview(entry.Content)
	timeText := formatTime(entry.Timestamp)

	fyne.Do(func() {
		previewLabel.SetText(previewText)
		timeLabel.SetText(timeText)
	})
}

// 格式化时间显示
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return fmt.Sprintf("%d秒前", int(diff.Seconds()))
	} else if diff < time.Hour {
		return fmt.Sprintf("%d分钟前", int(diff.Minutes()))
	} else if diff < 24*time.Hour {
		return fmt.Sprintf("%d小时前", int(diff.Hours()))
	} else if diff < 7*24*time.Hour {
		return fmt.Sprintf("%d天前", int(diff.Hours()/24))
	}

	return t.Format("2006-01-02 15:04")
}
