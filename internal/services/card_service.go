// internal/services/card_service.go
package services

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/storage"
	"github.com/cat-xierluo/falvren2025/internal/utils"
)

// 展示名称的长度上限（按字符数计）
const maxDisplayNameRunes = 20

// 卡片标语的长度上限（按字符数计）
const maxTaglineRunes = 50

// 上传目录（相对存储根目录）
const uploadSubDir = "uploads"

// CardService 分享卡片定制：展示名称与联系二维码
type CardService struct {
	reportService  *ReportService
	storage        *storage.FileStorage
	maxUploadBytes int64
	logger         *utils.Logger

	mu    sync.RWMutex
	cards map[string]*models.ShareCard
}

// NewCardService 创建分享卡片服务
func NewCardService(reportService *ReportService, fileStorage *storage.FileStorage, maxUploadBytes int64) *CardService {
	return &CardService{
		reportService:  reportService,
		storage:        fileStorage,
		maxUploadBytes: maxUploadBytes,
		logger:         utils.GetLogger(),
		cards:          make(map[string]*models.ShareCard),
	}
}

// Card 返回会话的卡片定制，未定制过时返回空卡片
func (s *CardService) Card(sessionID string) (*models.ShareCard, error) {
	if _, err := s.reportService.GetSession(sessionID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if card, exists := s.cards[sessionID]; exists {
		copied := *card
		return &copied, nil
	}
	return &models.ShareCard{SessionID: sessionID}, nil
}

// SetDisplayName 设置卡片上的展示名称
func (s *CardService) SetDisplayName(sessionID, name string) (*models.ShareCard, error) {
	if _, err := s.reportService.GetSession(sessionID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxDisplayNameRunes {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("展示名称超过 %d 个字符", maxDisplayNameRunes), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.cardLocked(sessionID)
	card.DisplayName = name
	card.UpdatedAt = time.Now()

	copied := *card
	return &copied, nil
}

// SetTagline 设置卡片上的标语，空串表示恢复导出时随机标语
func (s *CardService) SetTagline(sessionID, tagline string) (*models.ShareCard, error) {
	if _, err := s.reportService.GetSession(sessionID); err != nil {
		return nil, err
	}

	tagline = strings.TrimSpace(tagline)
	if utf8.RuneCountInString(tagline) > maxTaglineRunes {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("标语超过 %d 个字符", maxTaglineRunes), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.cardLocked(sessionID)
	card.Tagline = tagline
	card.UpdatedAt = time.Now()

	copied := *card
	return &copied, nil
}

// SaveQRImage 校验并保存上传的联系二维码图片。
// 只接受 png/jpeg，超过大小上限直接拒绝。
func (s *CardService) SaveQRImage(sessionID, originalName string, data []byte) (*models.ShareCard, error) {
	if _, err := s.reportService.GetSession(sessionID); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, apperrors.NewValidationError("上传内容为空", nil)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("图片超过大小上限 %d 字节", s.maxUploadBytes), nil)
	}

	// 按文件内容判断类型，不信任扩展名
	contentType := http.DetectContentType(data)
	var ext string
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	default:
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("不支持的图片类型: %s，仅支持 png/jpeg", contentType), nil)
	}

	filename := sessionID + "_qr" + ext
	if err := s.storage.SaveFile(uploadSubDir, filename, data); err != nil {
		return nil, apperrors.WrapError(err, "保存二维码图片失败", apperrors.ErrorTypeError)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.cardLocked(sessionID)
	card.QRImagePath = s.storage.FullPath(uploadSubDir, filename)
	card.UpdatedAt = time.Now()

	s.logger.Info("联系二维码已更新", map[string]interface{}{
		"session_id": sessionID,
		"file":       filepath.Base(card.QRImagePath),
		"source":     originalName,
		"size":       len(data),
	})

	copied := *card
	return &copied, nil
}

// Drop 清理会话的卡片定制与上传文件
func (s *CardService) Drop(sessionID string) {
	s.mu.Lock()
	card, exists := s.cards[sessionID]
	delete(s.cards, sessionID)
	s.mu.Unlock()

	if exists && card.QRImagePath != "" {
		if err := s.storage.DeleteFile(uploadSubDir, filepath.Base(card.QRImagePath)); err != nil {
			s.logger.Warn("清理二维码图片失败", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}
}

// cardLocked 取出或初始化卡片，调用方持有写锁
func (s *CardService) cardLocked(sessionID string) *models.ShareCard {
	card, exists := s.cards[sessionID]
	if !exists {
		card = &models.ShareCard{SessionID: sessionID}
		s.cards[sessionID] = card
	}
	return card
}
