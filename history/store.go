// Package history 实现有界去重的剪贴板历史（MRU 列表）。
// Store 由调用方持有并在单个 goroutine 内使用：守护进程是唯一的持续写入者，
// 图形界面/终端模式只做偶发读写，进程间仅通过历史文件间接共享。
package history

import (
	"log/slog"

	"github.com/janbajc/clipboard-history-linux/config"
	"github.com/janbajc/clipboard-history-linux/model"
	"github.com/janbajc/clipboard-history-linux/storage"
)

// Store 剪贴板历史存储
type Store struct {
	backend  storage.Storage
	entries  []*model.HistoryEntry // 有序列表，最新的在前
	capacity int                   // 最大保留条数
	lastSeen string                // 上次捕获的原始内容，用于抑制轮询产生的重复插入
}

// Load 从持久化后端加载历史并构造 Store。
// 文件缺失、不可读或内容损坏都不视为致命错误：记录警告并从空历史开始。
func Load(backend storage.Storage, capacity int) *Store {
	if capacity <= 0 {
		capacity = config.DefaultMaxItems
	}

	s := &Store{
		backend:  backend,
		capacity: capacity,
	}

	entries, err := backend.LoadEntries()
	if err != nil {
		slog.Warn("加载历史记录失败，从空历史开始", "location", backend.Location(), "error", err)
		return s
	}

	if len(entries) > capacity {
		entries = entries[:capacity]
	}
	s.entries = entries
	return s
}

// Insert 插入新内容，返回是否实际记录了新条目。
// 空内容、与上次捕获相同的内容直接忽略；超过大小上限的内容记录一条日志后忽略。
// 其余情况执行去重提升：删除内容相同的旧条目，新条目插到最前，截断到容量上限，
// 随后整体持久化并更新 lastSeen。
func (s *Store) Insert(content string) bool {
	if content == "" || content == s.lastSeen {
		return false
	}

	if len(content) > model.MaxContentSize {
		slog.Info("跳过超大剪贴板内容", "size", len(content), "limit", model.MaxContentSize)
		return false
	}

	// 去重：移除内容相同的旧条目（线性扫描，容量不过几百条）
	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.Content != content {
			kept = append(kept, entry)
		}
	}

	// 插入到开头
	entry := model.NewHistoryEntry(content)
	s.entries = append([]*model.HistoryEntry{entry}, kept...)

	// 限制数量，最旧的先被淘汰
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}

	s.Save()
	s.lastSeen = content
	return true
}

// Clear 清空全部历史并持久化
func (s *Store) Clear() {
	s.entries = []*model.HistoryEntry{}
	s.Save()
}

// Save 将当前历史写回后端。写入失败只记录日志：
// 内存中的历史在本进程生命周期内仍是权威数据。
func (s *Store) Save() {
	if err := s.backend.SaveEntries(s.entries); err != nil {
		slog.Error("保存历史记录失败", "location", s.backend.Location(), "error", err)
	}
}

// Reload 重新从后端加载历史。图形界面刷新时使用：
// 守护进程可能在另一个进程里更新了历史文件。加载失败保留内存中的旧数据。
func (s *Store) Reload() {
	entries, err := s.backend.LoadEntries()
	if err != nil {
		slog.Warn("刷新历史记录失败，保留当前数据", "location", s.backend.Location(), "error", err)
		return
	}
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	s.entries = entries
}

// MarkSeen 更新 lastSeen 而不插入条目。
// 守护进程启动时用它记住当前剪贴板内容，避免把启动前的内容当作新条目；
// 主动写入剪贴板后也用它抑制对自身写入的重复捕获。
func (s *Store) MarkSeen(content string) {
	s.lastSeen = content
}

// Entries 返回全部历史记录，最新的在前
func (s *Store) Entries() []*model.HistoryEntry {
	return s.entries
}

// Len 返回当前条数
func (s *Store) Len() int {
	return len(s.entries)
}

// Capacity 返回最大保留条数
func (s *Store) Capacity() int {
	return s.capacity
}

// LastSeen 返回上次捕获的原始内容
func (s *Store) LastSeen() string {
	return s.lastSeen
}

// Location 返回底层存储位置描述
func (s *Store) Location() string {
	return s.backend.Location()
}
