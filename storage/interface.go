package storage

import "github.com/janbajc/clipboard-history-linux/model"

// Storage 持久化后端接口。去重、截断等历史语义由 history 包负责，
// 后端只做整体读写；历史文件始终整文件替换，不做增量写入。
type Storage interface {
	// SaveEntries 保存全部历史记录（整体替换）
	SaveEntries(entries []*model.HistoryEntry) error

	// LoadEntries 加载全部历史记录，按时间降序
	LoadEntries() ([]*model.HistoryEntry, error)

	// Location 返回后端的存储位置描述（文件路径或数据库地址）
	Location() string

	// 关闭存储
	Close() error
}
