package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/janbajc/clipboard-history-linux/config"
	"github.com/janbajc/clipboard-history-linux/model"
)

// JSONStorage JSON文件存储实现
type JSONStorage struct {
	config   *config.StorageConfig
	filePath string
}

// NewJSONStorage 创建JSON存储实例
func NewJSONStorage(cfg *config.StorageConfig) (*JSONStorage, error) {
	// 确定存储路径 - 优先使用用户自定义路径
	storagePath := cfg.JSONPath

	// 如果未启用自定义路径或路径为空，使用默认路径
	if !cfg.CustomPath || storagePath == "" {
		storagePath = config.DefaultStoragePath()
	}

	// 确保存储目录存在
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, err
	}

	return &JSONStorage{
		config:   cfg,
		filePath: filepath.Join(storagePath, "history.json"),
	}, nil
}

// SaveEntries 保存全部历史记录。先写临时文件再重命名，
// 进程中途被终止也不会留下写了一半的历史文件。
func (s *JSONStorage) SaveEntries(entries []*model.HistoryEntry) error {
	// 确保不超过最大数量
	if s.config.MaxItems > 0 && len(entries) > s.config.MaxItems {
		entries = entries[:s.config.MaxItems]
	}
	if entries == nil {
		entries = []*model.HistoryEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("历史记录序列化失败: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("替换历史文件失败: %w", err)
	}
	return nil
}

// LoadEntries 加载全部历史记录。文件不存在视为空历史；
// 旧版本文件缺失的字段（preview、id）在此补齐。
func (s *JSONStorage) LoadEntries() ([]*model.HistoryEntry, error) {
	var entries []*model.HistoryEntry

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return entries, nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("历史文件解析失败: %w", err)
	}

	for _, entry := range entries {
		entry.Normalize()
	}

	// 按时间降序，最新的在前
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries, nil
}

// Location 返回历史文件路径
func (s *JSONStorage) Location() string {
	return s.filePath
}

// Close 关闭存储
func (s *JSONStorage) Close() error {
	return nil
}
