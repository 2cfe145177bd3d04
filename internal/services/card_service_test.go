package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
	"github.com/cat-xierluo/falvren2025/internal/storage"
)

func newTestCardService(t *testing.T, maxUploadBytes int64) (*CardService, *ReportService) {
	t.Helper()
	fileStorage, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	reportService := NewReportService(catalog.Default(), rng.NewSeeded(1))
	return NewCardService(reportService, fileStorage, maxUploadBytes), reportService
}

// pngBytes 生成一张最小的有效PNG图片
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCardDefaults(t *testing.T) {
	cards, reports := newTestCardService(t, 1<<20)
	session := reports.CreateSession(models.UserFacets{})

	card, err := cards.Card(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, card.SessionID)
	assert.Empty(t, card.DisplayName)
	assert.Empty(t, card.QRImagePath)

	_, err = cards.Card("missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSetDisplayName(t *testing.T) {
	cards, reports := newTestCardService(t, 1<<20)
	session := reports.CreateSession(models.UserFacets{})

	t.Run("正常设置", func(t *testing.T) {
		card, err := cards.SetDisplayName(session.ID, "  张律师  ")
		require.NoError(t, err)
		assert.Equal(t, "张律师", card.DisplayName)
	})

	t.Run("20个字符刚好合法", func(t *testing.T) {
		name := strings.Repeat("律", 20)
		card, err := cards.SetDisplayName(session.ID, name)
		require.NoError(t, err)
		assert.Equal(t, name, card.DisplayName)
	})

	t.Run("超过20个字符拒绝", func(t *testing.T) {
		_, err := cards.SetDisplayName(session.ID, strings.Repeat("律", 21))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("清空名称", func(t *testing.T) {
		card, err := cards.SetDisplayName(session.ID, "")
		require.NoError(t, err)
		assert.Empty(t, card.DisplayName)
	})
}

func TestSetTagline(t *testing.T) {
	cards, reports := newTestCardService(t, 1<<20)
	session := reports.CreateSession(models.UserFacets{})

	t.Run("正常设置并在查询时保留", func(t *testing.T) {
		card, err := cards.SetTagline(session.ID, "  祝明年案子都顺利  ")
		require.NoError(t, err)
		assert.Equal(t, "祝明年案子都顺利", card.Tagline)

		fresh, err := cards.Card(session.ID)
		require.NoError(t, err)
		assert.Equal(t, "祝明年案子都顺利", fresh.Tagline)
	})

	t.Run("50个字符刚好合法", func(t *testing.T) {
		tagline := strings.Repeat("律", 50)
		card, err := cards.SetTagline(session.ID, tagline)
		require.NoError(t, err)
		assert.Equal(t, tagline, card.Tagline)
	})

	t.Run("超过50个字符拒绝", func(t *testing.T) {
		_, err := cards.SetTagline(session.ID, strings.Repeat("律", 51))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("清空标语", func(t *testing.T) {
		card, err := cards.SetTagline(session.ID, "")
		require.NoError(t, err)
		assert.Empty(t, card.Tagline)
	})

	t.Run("会话不存在", func(t *testing.T) {
		_, err := cards.SetTagline("missing", "标语")
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSaveQRImage(t *testing.T) {
	cards, reports := newTestCardService(t, 1<<20)
	session := reports.CreateSession(models.UserFacets{})

	t.Run("保存PNG", func(t *testing.T) {
		card, err := cards.SaveQRImage(session.ID, "wechat.png", pngBytes(t))
		require.NoError(t, err)
		require.NotEmpty(t, card.QRImagePath)
		assert.True(t, strings.HasSuffix(card.QRImagePath, ".png"))

		_, statErr := os.Stat(card.QRImagePath)
		assert.NoError(t, statErr)
	})

	t.Run("空内容拒绝", func(t *testing.T) {
		_, err := cards.SaveQRImage(session.ID, "empty.png", nil)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("非图片内容拒绝", func(t *testing.T) {
		_, err := cards.SaveQRImage(session.ID, "fake.png", []byte("plain text, not an image"))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("超过大小上限拒绝", func(t *testing.T) {
		small, sessions := newTestCardService(t, 8)
		s := sessions.CreateSession(models.UserFacets{})
		_, err := small.SaveQRImage(s.ID, "big.png", pngBytes(t))
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("会话不存在", func(t *testing.T) {
		_, err := cards.SaveQRImage("missing", "wechat.png", pngBytes(t))
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestCardDrop(t *testing.T) {
	cards, reports := newTestCardService(t, 1<<20)
	session := reports.CreateSession(models.UserFacets{})

	card, err := cards.SaveQRImage(session.ID, "wechat.png", pngBytes(t))
	require.NoError(t, err)

	cards.Drop(session.ID)

	// 卡片定制和上传文件都被清掉
	fresh, err := cards.Card(session.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.QRImagePath)

	_, statErr := os.Stat(card.QRImagePath)
	assert.True(t, os.IsNotExist(statErr))
}
