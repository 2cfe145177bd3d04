// internal/models/export.go
package models

import (
	"time"
)

// ShareCard 分享卡片的自定义内容
type ShareCard struct {
	SessionID   string    `json:"session_id"`
	DisplayName string    `json:"display_name,omitempty"` // 最长20个字符
	QRImagePath string    `json:"qr_image_path,omitempty"`
	Tagline     string    `json:"tagline"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExportRequest 导出一页报告为图片的请求
type ExportRequest struct {
	PageIndex int `json:"page_index"`
}

// ExportResult 导出结果
type ExportResult struct {
	SessionID string    `json:"session_id"`
	PageIndex int       `json:"page_index"`
	FilePath  string    `json:"file_path"` // 导出文件路径
	FileURL   string    `json:"file_url"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}
