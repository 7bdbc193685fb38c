package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// StorageType 存储类型
type StorageType string

const (
	StorageTypeJSON  StorageType = "json"
	StorageTypeMySQL StorageType = "mysql"
)

// 默认值
const (
	DefaultMaxItems       = 100
	DefaultPollIntervalMs = 1000
	DefaultPasteKey       = "ctrl+shift+v"

	appDirName = "clipboard-history"
)

// StorageConfig 存储配置
type StorageConfig struct {
	Type       StorageType `json:"type"`
	JSONPath   string      `json:"jsonPath"`
	CustomPath bool        `json:"customPath"` // 是否使用自定义路径
	MySQL      MySQLConfig `json:"mySQL"`
	MaxItems   int         `json:"maxItems"`
}

// MySQLConfig MySQL数据库配置
type MySQLConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// AppConfig 应用配置
type AppConfig struct {
	Storage        StorageConfig `json:"storage"`
	PollIntervalMs int           `json:"pollIntervalMs"` // 守护进程轮询间隔（毫秒）
	PasteKey       string        `json:"pasteKey"`       // 粘贴模拟使用的组合键
}

// configPath 配置文件路径
func configPath() string {
	appDataDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "config.json")
	}

	configDir := filepath.Join(appDataDir, appDirName)
	err = os.MkdirAll(configDir, 0755)
	if err != nil {
		slog.Warn("创建配置目录失败，将使用当前目录", "error", err)
		return filepath.Join(".", "config.json")
	}
	return filepath.Join(configDir, "config.json")
}

// DefaultStoragePath 默认的历史记录存储目录
func DefaultStoragePath() string {
	appDataDir, _ := os.UserConfigDir()
	return filepath.Join(appDataDir, appDirName, "history")
}

func Load() (*AppConfig, error) {
	path := configPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

func Save(config *AppConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		slog.Error("配置序列化为JSON失败", "error", err)
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}

// applyDefaults 补齐缺失或非法的配置项
func (c *AppConfig) applyDefaults() {
	if c.Storage.Type == "" {
		c.Storage.Type = StorageTypeJSON
	}
	if c.Storage.MaxItems <= 0 {
		c.Storage.MaxItems = DefaultMaxItems
	}
	if !c.Storage.CustomPath || c.Storage.JSONPath == "" {
		c.Storage.JSONPath = DefaultStoragePath()
	}
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = DefaultPollIntervalMs
	}
	if c.PasteKey == "" {
		c.PasteKey = DefaultPasteKey
	}
}

// 默认配置
func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Storage: StorageConfig{
			Type: StorageTypeJSON,
			MySQL: MySQLConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "",
				Database: "clipboard",
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}
