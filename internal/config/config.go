// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
)

// 当前配置的单例实例
var (
	currentConfig *AppConfig
	configMutex   sync.RWMutex
	configFile    string
)

// AppConfig 包含应用程序的所有配置
type AppConfig struct {
	Port      string `json:"port"`
	DataDir   string `json:"data_dir"`
	StaticDir string `json:"static_dir"`
	ExportDir string `json:"export_dir"`
	UploadDir string `json:"upload_dir"`
	LogDir    string `json:"log_dir"`
	DebugMode bool   `json:"debug_mode"`

	// 导出相关配置
	AppURL         string `json:"app_url"`          // 二维码指向的访问地址
	FontPath       string `json:"font_path"`        // 渲染卡片用的中文字体
	MaxUploadBytes int64  `json:"max_upload_bytes"` // 上传二维码图片的大小上限
}

// Config 存储应用基础配置
type Config struct {
	Port      string
	DataDir   string
	StaticDir string
	ExportDir string
	UploadDir string
	LogDir    string
	DebugMode bool

	AppURL         string
	FontPath       string
	MaxUploadBytes int64
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	// 尝试加载.env文件（可选）
	godotenv.Load()

	dataDir := getEnvPath("DATA_DIR", "data")

	config := &Config{
		Port:      getEnv("PORT", "8080"),
		DataDir:   dataDir,
		StaticDir: getEnvPath("STATIC_DIR", "static"),
		ExportDir: getEnvPath("EXPORT_DIR", filepath.Join(dataDir, "exports")),
		UploadDir: getEnvPath("UPLOAD_DIR", filepath.Join(dataDir, "uploads")),
		LogDir:    getEnvPath("LOG_DIR", "logs"),
		DebugMode: getEnvBool("DEBUG_MODE", true),

		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
		FontPath:       getEnv("FONT_PATH", "static/fonts/NotoSansSC-Regular.ttf"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 2<<20),
	}

	return config, nil
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvPath 获取环境变量表示的路径，如果不存在则返回默认值
func getEnvPath(key, defaultValue string) string {
	path := getEnv(key, defaultValue)

	// 确保目录存在
	if _, err := os.Stat(path); os.IsNotExist(err) {
		err = os.MkdirAll(path, 0755)
		if err != nil {
			fmt.Printf("警告: 创建目录失败 %s: %v\n", path, err)
		}
	}

	return path
}

// getEnvBool 获取布尔类型环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt64 获取整数类型环境变量
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var parsed int64
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		return defaultValue
	}
	return parsed
}

// InitConfig 初始化配置管理器
func InitConfig(dataDir string) error {
	configFile = filepath.Join(dataDir, "config.json")

	baseConfig, err := Load()
	if err != nil {
		return err
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	currentConfig = &AppConfig{
		Port:           baseConfig.Port,
		DataDir:        baseConfig.DataDir,
		StaticDir:      baseConfig.StaticDir,
		ExportDir:      baseConfig.ExportDir,
		UploadDir:      baseConfig.UploadDir,
		LogDir:         baseConfig.LogDir,
		DebugMode:      baseConfig.DebugMode,
		AppURL:         baseConfig.AppURL,
		FontPath:       baseConfig.FontPath,
		MaxUploadBytes: baseConfig.MaxUploadBytes,
	}

	// 尝试从文件加载已保存的配置
	if _, err := os.Stat(configFile); !os.IsNotExist(err) {
		data, err := os.ReadFile(configFile)
		if err == nil {
			var savedConfig AppConfig
			if json.Unmarshal(data, &savedConfig) == nil {
				// 合并配置：目录和端口始终以环境为准，
				// 保留文件中的导出相关设置
				savedConfig.Port = baseConfig.Port
				savedConfig.DataDir = baseConfig.DataDir
				savedConfig.StaticDir = baseConfig.StaticDir
				savedConfig.ExportDir = baseConfig.ExportDir
				savedConfig.UploadDir = baseConfig.UploadDir
				savedConfig.LogDir = baseConfig.LogDir
				savedConfig.DebugMode = baseConfig.DebugMode

				if savedConfig.AppURL == "" {
					savedConfig.AppURL = baseConfig.AppURL
				}
				if savedConfig.FontPath == "" {
					savedConfig.FontPath = baseConfig.FontPath
				}
				if savedConfig.MaxUploadBytes == 0 {
					savedConfig.MaxUploadBytes = baseConfig.MaxUploadBytes
				}

				currentConfig = &savedConfig
			}
		}
	}

	// 保存初始配置到文件
	return SaveConfig()
}

// GetCurrentConfig 返回当前配置的副本
func GetCurrentConfig() *AppConfig {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if currentConfig == nil {
		// 紧急情况，返回一个基本配置
		baseConfig, _ := Load()
		return &AppConfig{
			Port:           baseConfig.Port,
			DataDir:        baseConfig.DataDir,
			StaticDir:      baseConfig.StaticDir,
			ExportDir:      baseConfig.ExportDir,
			UploadDir:      baseConfig.UploadDir,
			LogDir:         baseConfig.LogDir,
			DebugMode:      baseConfig.DebugMode,
			AppURL:         baseConfig.AppURL,
			FontPath:       baseConfig.FontPath,
			MaxUploadBytes: baseConfig.MaxUploadBytes,
		}
	}

	configCopy := *currentConfig
	return &configCopy
}

// SaveConfig 保存当前配置到文件
func SaveConfig() error {
	if currentConfig == nil {
		return fmt.Errorf("没有配置可保存")
	}

	dir := filepath.Dir(configFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}

	data, err := json.MarshalIndent(currentConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	return os.WriteFile(configFile, data, 0644)
}
