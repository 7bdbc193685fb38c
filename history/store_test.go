package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janbajc/clipboard-history-linux/model"
)

// memoryBackend 内存存储后端，用于隔离测试历史语义
type memoryBackend struct {
	entries   []*model.HistoryEntry
	saveCount int
	loadErr   error
	saveErr   error
}

func (m *memoryBackend) SaveEntries(entries []*model.HistoryEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append([]*model.HistoryEntry(nil), entries...)
	m.saveCount++
	return nil
}

func (m *memoryBackend) LoadEntries() ([]*model.HistoryEntry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.entries, nil
}

func (m *memoryBackend) Location() string { return "memory" }
func (m *memoryBackend) Close() error     { return nil }

// contents 按顺序取出全部条目内容
func contents(s *Store) []string {
	var out []string
	for _, entry := range s.Entries() {
		out = append(out, entry.Content)
	}
	return out
}

func TestInsertRecordsEntry(t *testing.T) {
	backend := &memoryBackend{}
	s := Load(backend, 10)

	require.True(t, s.Insert("hello"))

	require.Equal(t, []string{"hello"}, contents(s))
	entry := s.Entries()[0]
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, "hello", entry.Preview)
	assert.Equal(t, "hello", s.LastSeen())
	assert.Equal(t, 1, backend.saveCount)
}

func TestInsertSuppressesConsecutiveDuplicate(t *testing.T) {
	s := Load(&memoryBackend{}, 10)

	require.True(t, s.Insert("a"))
	assert.False(t, s.Insert("a"))

	assert.Equal(t, []string{"a"}, contents(s))
}

func TestInsertDedupAndPromote(t *testing.T) {
	s := Load(&memoryBackend{}, 10)

	s.Insert("a")
	s.Insert("b")
	s.Insert("c")
	require.Equal(t, []string{"c", "b", "a"}, contents(s))

	// 重新插入已存在的内容：旧条目删除，新条目提升到最前
	require.True(t, s.Insert("b"))
	assert.Equal(t, []string{"b", "c", "a"}, contents(s))
	assert.Equal(t, 3, s.Len())
}

func TestCapacityEvictsOldest(t *testing.T) {
	s := Load(&memoryBackend{}, 2)

	s.Insert("x")
	s.Insert("y")
	s.Insert("z")

	assert.Equal(t, []string{"z", "y"}, contents(s))
}

func TestInsertRejectsOversizeContent(t *testing.T) {
	s := Load(&memoryBackend{}, 10)
	s.Insert("before")

	huge := strings.Repeat("x", 2*1024*1024)
	assert.False(t, s.Insert(huge))

	assert.Equal(t, []string{"before"}, contents(s))
	assert.Equal(t, "before", s.LastSeen())
}

func TestInsertRejectsEmptyContent(t *testing.T) {
	s := Load(&memoryBackend{}, 10)

	assert.False(t, s.Insert(""))

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.LastSeen())
}

func TestMarkSeenSuppressesInsert(t *testing.T) {
	s := Load(&memoryBackend{}, 10)

	s.MarkSeen("existing")
	assert.False(t, s.Insert("existing"))
	assert.Equal(t, 0, s.Len())

	// 不同内容仍正常记录
	assert.True(t, s.Insert("fresh"))
}

func TestClearEmptiesAndPersists(t *testing.T) {
	backend := &memoryBackend{}
	s := Load(backend, 10)
	s.Insert("a")
	s.Insert("b")

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, backend.entries)
}

func TestLoadFailureYieldsEmptyStore(t *testing.T) {
	backend := &memoryBackend{loadErr: assert.AnError}

	s := Load(backend, 10)

	assert.Equal(t, 0, s.Len())
	// 加载失败后仍可正常插入
	assert.True(t, s.Insert("recovered"))
}

func TestLoadTrimsToCapacity(t *testing.T) {
	backend := &memoryBackend{entries: []*model.HistoryEntry{
		model.NewHistoryEntry("c"),
		model.NewHistoryEntry("b"),
		model.NewHistoryEntry("a"),
	}}

	s := Load(backend, 2)

	assert.Equal(t, []string{"c", "b"}, contents(s))
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	backend := &memoryBackend{saveErr: assert.AnError}
	s := Load(backend, 10)

	// 持久化失败不向上传播，内存中的历史仍然有效
	assert.True(t, s.Insert("kept"))
	assert.Equal(t, []string{"kept"}, contents(s))
}

func TestReloadPicksUpBackendChanges(t *testing.T) {
	backend := &memoryBackend{}
	s := Load(backend, 10)
	s.Insert("old")

	// 模拟另一个进程更新了后端数据
	backend.entries = []*model.HistoryEntry{model.NewHistoryEntry("external")}
	s.Reload()

	assert.Equal(t, []string{"external"}, contents(s))
}
