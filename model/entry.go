package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreviewLength 预览文本的最大字符数（按字符计，不按字节）
const PreviewLength = 100

// MaxContentSize 单条内容的大小上限（1 MiB），超过则拒绝入库
const MaxContentSize = 1 << 20

// HistoryEntry 表示一条剪贴板历史记录
type HistoryEntry struct {
	ID        string         `json:"id,omitempty" gorm:"primaryKey"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Preview   string         `json:"preview"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// NewHistoryEntry 创建新的历史记录项，捕获时间取当前时刻，预览在此一次性派生
func NewHistoryEntry(content string) *HistoryEntry {
	return &HistoryEntry{
		ID:        uuid.NewString(),
		Content:   content,
		Timestamp: time.Now(),
		Preview:   MakePreview(content),
	}
}

// MakePreview 派生存储用预览：取前 PreviewLength 个字符，截断时追加省略号
func MakePreview(content string) string {
	runes := []rune(content)
	if len(runes) > PreviewLength {
		return string(runes[:PreviewLength]) + "..."
	}
	return content
}

// Normalize 补齐旧版本文件缺失的字段（向前兼容，见存储层说明）
func (e *HistoryEntry) Normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Preview == "" && e.Content != "" {
		e.Preview = MakePreview(e.Content)
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
}

// DisplayPreview 派生单行显示用预览：换行、制表符折叠为空格后再截断。
// 终端列表和图形界面统一使用该规则，与存储的 Preview 字段相互独立。
func DisplayPreview(content string) string {
	return MakePreview(strings.Join(strings.Fields(content), " "))
}
