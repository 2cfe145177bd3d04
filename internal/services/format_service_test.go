package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cat-xierluo/falvren2025/internal/models"
)

func intPtr(n int) *int { return &n }

func TestFormatMainText(t *testing.T) {
	f := NewFormatService()

	t.Run("替换全部已解析占位符", func(t *testing.T) {
		generated := &models.GeneratedScene{
			Scene: models.Scene{
				Template: "你接了 **{number}** 个电话\n最晚的一个在 {time}",
			},
			RandomNumber: intPtr(1024),
			RandomTime:   "3:47",
		}

		assert.Equal(t, "你接了 **1024** 个电话\n最晚的一个在 3:47",
			f.FormatMainText(generated))
	})

	t.Run("未解析的占位符原样保留", func(t *testing.T) {
		generated := &models.GeneratedScene{
			Scene: models.Scene{Template: "你备注了 {name}"},
		}

		assert.Equal(t, "你备注了 {name}", f.FormatMainText(generated))
	})

	t.Run("加粗标记透传", func(t *testing.T) {
		generated := &models.GeneratedScene{
			Scene:        models.Scene{Template: "**{city}** 出差最多"},
			RandomCity:   "苏州",
			RandomNumber: intPtr(3),
		}

		assert.Equal(t, "**苏州** 出差最多", f.FormatMainText(generated))
	})

	t.Run("同一占位符多次出现都被替换", func(t *testing.T) {
		generated := &models.GeneratedScene{
			Scene:      models.Scene{Template: "{city}，还是{city}"},
			RandomCity: "杭州",
		}

		assert.Equal(t, "杭州，还是杭州", f.FormatMainText(generated))
	})
}

func TestFormatIsIdempotent(t *testing.T) {
	f := NewFormatService()
	generated := &models.GeneratedScene{
		Scene: models.Scene{
			Template: "打了 {number} 次，约 {ratio}% 没下文",
			Subtext:  "其中 {ratio}% 在 {time} 之后",
			SoulText: "文件叫 {filename}",
		},
		RandomNumber:   intPtr(800),
		RandomRatio:    intPtr(45),
		RandomTime:     "4:12",
		RandomFileName: "合同终版final2.docx",
	}

	// 随机值都在生成期定好，重复格式化结果不变
	first := f.FormatMainText(generated)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, f.FormatMainText(generated))
	}
	assert.Equal(t, f.FormatSubtext(generated), f.FormatSubtext(generated))
	assert.Equal(t, "其中 45% 在 4:12 之后", f.FormatSubtext(generated))
	assert.Equal(t, "文件叫 合同终版final2.docx", f.FormatSoulText(generated))
}

func TestFormatEmptyTexts(t *testing.T) {
	f := NewFormatService()
	generated := &models.GeneratedScene{
		Scene: models.Scene{Template: "只有主文案"},
	}

	assert.Equal(t, "只有主文案", f.FormatMainText(generated))
	assert.Empty(t, f.FormatSubtext(generated))
	assert.Empty(t, f.FormatSoulText(generated))
}

func TestFormatConfidenceAndCityTokens(t *testing.T) {
	f := NewFormatService()
	generated := &models.GeneratedScene{
		Scene: models.Scene{
			Template: "信心从 {start}% 掉到 {end}%",
			Subtext:  "靠 {cityDrink} 和 {cityFood} 撑着",
		},
		ConfidenceStart: intPtr(80),
		ConfidenceEnd:   intPtr(40),
		CityDrink:       "蜜雪冰城",
		CityFood:        "小笼包",
	}

	assert.Equal(t, "信心从 80% 掉到 40%", f.FormatMainText(generated))
	assert.Equal(t, "靠 蜜雪冰城 和 小笼包 撑着", f.FormatSubtext(generated))
}
