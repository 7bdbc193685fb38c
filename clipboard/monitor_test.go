package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janbajc/clipboard-history-linux/history"
	"github.com/janbajc/clipboard-history-linux/model"
)

// fakeGateway 内存剪贴板网关。texts 是依次返回的读取结果，读完后停在最后一个值。
type fakeGateway struct {
	text    string
	texts   []string
	reads   int
	readErr error
	written []string
}

func (f *fakeGateway) Read() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	if len(f.texts) > 0 {
		i := f.reads
		if i >= len(f.texts) {
			i = len(f.texts) - 1
		}
		f.reads++
		return f.texts[i], nil
	}
	return f.text, nil
}

func (f *fakeGateway) Write(text string) error {
	f.written = append(f.written, text)
	f.text = text
	return nil
}

func (f *fakeGateway) Name() string { return "fake" }

type nopBackend struct {
	entries []*model.HistoryEntry
}

func (n *nopBackend) SaveEntries(entries []*model.HistoryEntry) error {
	n.entries = entries
	return nil
}
func (n *nopBackend) LoadEntries() ([]*model.HistoryEntry, error) { return nil, nil }
func (n *nopBackend) Location() string                            { return "memory" }
func (n *nopBackend) Close() error                                { return nil }

func TestCheckOnceRecordsNewContent(t *testing.T) {
	store := history.Load(&nopBackend{}, 10)
	gateway := &fakeGateway{text: "hello"}
	m := NewMonitor(store, gateway, time.Second)

	require.True(t, m.checkOnce())

	require.Equal(t, 1, store.Len())
	assert.Equal(t, "hello", store.Entries()[0].Content)
}

func TestCheckOnceIgnoresUnchangedContent(t *testing.T) {
	store := history.Load(&nopBackend{}, 10)
	gateway := &fakeGateway{text: "same"}
	m := NewMonitor(store, gateway, time.Second)

	m.checkOnce()
	m.checkOnce()
	m.checkOnce()

	assert.Equal(t, 1, store.Len())
}

func TestCheckOnceReportsReadFailure(t *testing.T) {
	store := history.Load(&nopBackend{}, 10)
	gateway := &fakeGateway{readErr: errors.New("工具超时")}
	m := NewMonitor(store, gateway, time.Second)

	// 读取失败：本轮不成功，调用方延长等待
	assert.False(t, m.checkOnce())
	assert.Equal(t, 0, store.Len())

	// 故障恢复后继续正常记录
	gateway.readErr = nil
	gateway.text = "recovered"
	assert.True(t, m.checkOnce())
	assert.Equal(t, 1, store.Len())
}

func TestRunPrimesWithCurrentClipboard(t *testing.T) {
	store := history.Load(&nopBackend{}, 10)
	gateway := &fakeGateway{text: "已有内容"}
	m := NewMonitor(store, gateway, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	m.Run(ctx)

	// 启动前就在剪贴板里的内容不应被当作新条目
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "已有内容", store.LastSeen())
}

func TestRunRecordsChange(t *testing.T) {
	store := history.Load(&nopBackend{}, 10)
	// 第一次读取发生在启动记忆阶段，之后剪贴板内容发生变化
	gateway := &fakeGateway{texts: []string{"", "复制的文本"}}
	m := NewMonitor(store, gateway, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	m.Run(ctx)

	require.Equal(t, 1, store.Len())
	assert.Equal(t, "复制的文本", store.Entries()[0].Content)
}

func TestNewMonitorDefaultsInterval(t *testing.T) {
	m := NewMonitor(history.Load(&nopBackend{}, 10), &fakeGateway{}, 0)

	assert.Equal(t, time.Second, m.interval)
}
