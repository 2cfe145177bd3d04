// internal/services/export_service.go
package services

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
	"github.com/cat-xierluo/falvren2025/internal/storage"
	"github.com/cat-xierluo/falvren2025/internal/utils"
)

// 卡片画布的逻辑尺寸与导出缩放倍数
const (
	cardWidth   = 390
	cardHeight  = 700
	exportScale = 3
)

// ExportService 分享卡片导出管线。
// 把解析好的报告页渲染成PNG图片并落盘，渲染细节对调用方不可见，
// 任何渲染环节的失败对外都收敛为同一个导出失败错误。
type ExportService struct {
	reportService *ReportService
	flowService   *FlowService
	cardService   *CardService
	catalog       *catalog.Catalog
	rand          rng.Source
	storage       *storage.FileStorage
	logger        *utils.Logger

	appURL       string
	fontPath     string
	exportSubDir string

	// 每个会话同一时刻只允许一次导出
	mu       sync.Mutex
	inFlight map[string]bool
}

// NewExportService 创建导出服务。
// exportDir 必须位于存储根目录之下，/exports 静态路由与落盘路径才能一致。
func NewExportService(
	reportService *ReportService,
	flowService *FlowService,
	cardService *CardService,
	cat *catalog.Catalog,
	src rng.Source,
	fileStorage *storage.FileStorage,
	exportDir, appURL, fontPath string,
) (*ExportService, error) {
	rel, err := filepath.Rel(fileStorage.BaseDir, exportDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("导出目录必须位于数据目录内: %s", exportDir)
	}

	return &ExportService{
		reportService: reportService,
		flowService:   flowService,
		cardService:   cardService,
		catalog:       cat,
		rand:          src,
		storage:       fileStorage,
		logger:        utils.GetLogger(),
		appURL:        appURL,
		fontPath:      fontPath,
		exportSubDir:  rel,
		inFlight:      make(map[string]bool),
	}, nil
}

// ExportPage 把指定页渲染为PNG并保存
func (s *ExportService) ExportPage(sessionID string, pageIndex int) (*models.ExportResult, error) {
	// 1. 验证会话
	session, err := s.reportService.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	// 2. 并发导出保护：同会话的并发调用直接拒绝
	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return nil, apperrors.NewConflictError("该会话已有导出任务在进行", nil)
	}
	s.inFlight[sessionID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	// 3. 取出格式化后的页内容
	page, err := s.flowService.BuildPage(sessionID, pageIndex)
	if err != nil {
		if apperrors.IsValidationError(err) || apperrors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, s.exportFailed(sessionID, pageIndex, err)
	}

	card, err := s.cardService.Card(sessionID)
	if err != nil {
		return nil, s.exportFailed(sessionID, pageIndex, err)
	}

	// 4. 渲染画布
	img, err := s.renderCard(page, card)
	if err != nil {
		return nil, s.exportFailed(sessionID, pageIndex, err)
	}

	// 5. 编码并落盘
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, s.exportFailed(sessionID, pageIndex, err)
	}

	filename := fmt.Sprintf("%s_k%d_p%d.png", sessionID, session.ReportKey, pageIndex)
	if err := s.storage.SaveFile(s.exportSubDir, filename, buf.Bytes()); err != nil {
		return nil, s.exportFailed(sessionID, pageIndex, err)
	}

	result := &models.ExportResult{
		SessionID: sessionID,
		PageIndex: pageIndex,
		FilePath:  s.storage.FullPath(s.exportSubDir, filename),
		FileURL:   "/exports/" + filename,
		Width:     cardWidth * exportScale,
		Height:    cardHeight * exportScale,
		CreatedAt: time.Now(),
	}

	s.logger.Info("页面导出完成", map[string]interface{}{
		"session_id": sessionID,
		"page_index": pageIndex,
		"file":       filename,
	})

	return result, nil
}

// exportFailed 把任意内部失败收敛为统一的导出失败错误
func (s *ExportService) exportFailed(sessionID string, pageIndex int, cause error) error {
	s.logger.Error("页面导出失败", map[string]interface{}{
		"session_id": sessionID,
		"page_index": pageIndex,
		"error":      cause.Error(),
	})
	return apperrors.NewProcessingError("导出失败", cause)
}

// renderCard 把单页内容画到卡片画布上
func (s *ExportService) renderCard(page *models.Page, card *models.ShareCard) (image.Image, error) {
	dc := gg.NewContext(cardWidth*exportScale, cardHeight*exportScale)
	dc.Scale(exportScale, exportScale)

	// 深色背景
	dc.SetHexColor("#0a0a0a")
	dc.DrawRectangle(0, 0, cardWidth, cardHeight)
	dc.Fill()

	if err := s.drawPageBody(dc, page); err != nil {
		return nil, err
	}
	if err := s.drawFooter(dc, card); err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// drawPageBody 按页面类型绘制主体内容
func (s *ExportService) drawPageBody(dc *gg.Context, page *models.Page) error {
	const bodyWidth = cardWidth - 48

	switch page.Kind {
	case models.PageIdentity:
		if err := s.setFont(dc, 16); err != nil {
			return err
		}
		dc.SetHexColor("#9ca3af")
		dc.DrawStringAnchored("法律人年度报告", cardWidth/2, 120, 0.5, 0.5)

		if err := s.setFont(dc, 20); err != nil {
			return err
		}
		dc.SetHexColor("#f5f5f5")
		lines := []string{
			fmt.Sprintf("今年工作了 %d 天", intOrZero(page.WorkDays)),
			fmt.Sprintf("完整休息的周末 %.1f 个", floatOrZero(page.FullRestWeekends)),
			fmt.Sprintf("对明年的信任值 %d%%", intOrZero(page.TrustInNextYear)),
		}
		for i, line := range lines {
			dc.DrawStringAnchored(line, cardWidth/2, 220+float64(i)*56, 0.5, 0.5)
		}

	case models.PageScene:
		if err := s.setFont(dc, 13); err != nil {
			return err
		}
		dc.SetHexColor("#9ca3af")
		dc.DrawStringAnchored(page.CategoryName, cardWidth/2, 96, 0.5, 0.5)

		if err := s.setFont(dc, 20); err != nil {
			return err
		}
		dc.SetHexColor("#f5f5f5")
		dc.DrawStringWrapped(stripBold(page.MainText),
			cardWidth/2, 260, 0.5, 0.5, bodyWidth, 1.6, gg.AlignCenter)

		if page.Subtext != "" {
			if err := s.setFont(dc, 13); err != nil {
				return err
			}
			dc.SetHexColor("#9ca3af")
			dc.DrawStringWrapped(stripBold(page.Subtext),
				cardWidth/2, 380, 0.5, 0.5, bodyWidth, 1.5, gg.AlignCenter)
		}
		if page.SoulText != "" {
			if err := s.setFont(dc, 14); err != nil {
				return err
			}
			dc.SetHexColor("#d1d5db")
			dc.DrawStringWrapped(stripBold(page.SoulText),
				cardWidth/2, 460, 0.5, 0.5, bodyWidth, 1.5, gg.AlignCenter)
		}

	case models.PageConclusion, models.PageShare:
		if err := s.setFont(dc, 22); err != nil {
			return err
		}
		dc.SetHexColor("#f5f5f5")
		dc.DrawStringWrapped(stripBold(page.MainText),
			cardWidth/2, 240, 0.5, 0.5, bodyWidth, 1.6, gg.AlignCenter)

		if page.Subtext != "" {
			if err := s.setFont(dc, 14); err != nil {
				return err
			}
			dc.SetHexColor("#9ca3af")
			dc.DrawStringWrapped(stripBold(page.Subtext),
				cardWidth/2, 340, 0.5, 0.5, bodyWidth, 1.5, gg.AlignCenter)
		}
		if page.Narration != "" {
			if err := s.setFont(dc, 12); err != nil {
				return err
			}
			dc.SetHexColor("#6b7280")
			dc.DrawStringWrapped(page.Narration,
				cardWidth/2, 430, 0.5, 0.5, bodyWidth, 1.5, gg.AlignCenter)
		}

	case models.PagePromote:
		if err := s.setFont(dc, 20); err != nil {
			return err
		}
		dc.SetHexColor("#f5f5f5")
		dc.DrawStringWrapped("生成你自己的年度报告",
			cardWidth/2, 280, 0.5, 0.5, bodyWidth, 1.6, gg.AlignCenter)
	}

	return nil
}

// drawFooter 绘制底部分隔线、二维码与作者标语
func (s *ExportService) drawFooter(dc *gg.Context, card *models.ShareCard) error {
	const footerTop = cardHeight - 120

	// 分隔线
	dc.SetRGBA(1, 1, 1, 0.1)
	dc.DrawRectangle(24, footerTop, cardWidth-48, 1)
	dc.Fill()

	// 站点二维码
	qr, err := qrcode.New(s.appURL, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("生成站点二维码失败: %w", err)
	}
	qrImg := qr.Image(56 * exportScale)
	s.drawImageFit(dc, qrImg, 24, footerTop+20, 56)

	// 上传的联系二维码画在站点码右侧
	if card.QRImagePath != "" {
		contactImg, err := gg.LoadImage(card.QRImagePath)
		if err != nil {
			return fmt.Errorf("读取联系二维码失败: %w", err)
		}
		s.drawImageFit(dc, contactImg, 92, footerTop+20, 56)
	}

	// 展示名称与标语
	if err := s.setFont(dc, 13); err != nil {
		return err
	}
	dc.SetHexColor("#f5f5f5")
	name := card.DisplayName
	if name == "" {
		name = "一位法律人"
	}
	dc.DrawString(name, 164, footerTop+40)

	if err := s.setFont(dc, 11); err != nil {
		return err
	}
	dc.SetHexColor("#6b7280")
	tagline := card.Tagline
	if tagline == "" {
		tagline = s.catalog.RandomTagline(s.rand)
	}
	dc.DrawStringWrapped(tagline, 164, footerTop+52, 0, 0, cardWidth-188, 1.4, gg.AlignLeft)

	return nil
}

// drawImageFit 把图片缩放到目标边长的正方形内绘制
func (s *ExportService) drawImageFit(dc *gg.Context, img image.Image, x, y, size float64) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	sx := size / float64(bounds.Dx())
	sy := size / float64(bounds.Dy())

	dc.Push()
	dc.Translate(x, y)
	dc.Scale(sx, sy)
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}

func (s *ExportService) setFont(dc *gg.Context, points float64) error {
	if err := dc.LoadFontFace(s.fontPath, points); err != nil {
		return fmt.Errorf("加载字体失败: %w", err)
	}
	return nil
}

// stripBold 渲染时去掉文本中的加粗标记
func stripBold(text string) string {
	return strings.ReplaceAll(text, "**", "")
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
