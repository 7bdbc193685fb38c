package driver

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/janbajc/clipboard-history-linux/config"
	"github.com/janbajc/clipboard-history-linux/model"
)

// MySQLStorage MySQL存储实现（使用GORM）
type MySQLStorage struct {
	config *config.StorageConfig
	db     *gorm.DB
	dsn    string
}

// NewMySQLStorage 创建MySQL存储实例
func NewMySQLStorage(cfg *config.StorageConfig) (*MySQLStorage, error) {
	// 构建DSN
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.MySQL.User,
		cfg.MySQL.Password,
		cfg.MySQL.Host,
		cfg.MySQL.Port,
		cfg.MySQL.Database,
	)

	// 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("无法连接到MySQL数据库: %w", err)
	}

	// 自动迁移表结构
	if err := db.AutoMigrate(&model.HistoryEntry{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	return &MySQLStorage{
		config: cfg,
		db:     db,
		dsn:    fmt.Sprintf("mysql://%s:%d/%s", cfg.MySQL.Host, cfg.MySQL.Port, cfg.MySQL.Database),
	}, nil
}

// SaveEntries 保存全部历史记录（事务内整体替换，与JSON后端语义一致）
func (s *MySQLStorage) SaveEntries(entries []*model.HistoryEntry) error {
	if s.config.MaxItems > 0 && len(entries) > s.config.MaxItems {
		entries = entries[:s.config.MaxItems]
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// 先清空旧数据
		if err := tx.Unscoped().Where("1 = 1").Delete(&model.HistoryEntry{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		// 批量插入新数据
		return tx.Create(entries).Error
	})
}

// LoadEntries 加载全部历史记录，按时间降序
func (s *MySQLStorage) LoadEntries() ([]*model.HistoryEntry, error) {
	var entries []*model.HistoryEntry

	query := s.db.Order("timestamp DESC")
	if s.config.MaxItems > 0 {
		query = query.Limit(s.config.MaxItems)
	}

	if result := query.Find(&entries); result.Error != nil {
		return nil, result.Error
	}

	for _, entry := range entries {
		entry.Normalize()
	}

	return entries, nil
}

// Location 返回数据库地址
func (s *MySQLStorage) Location() string {
	return s.dsn
}

// Close 关闭存储
func (s *MySQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
