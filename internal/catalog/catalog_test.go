package catalog

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
}

func TestDefaultCatalogContents(t *testing.T) {
	cat := Default()

	assert.NotEmpty(t, cat.Narrations)
	assert.NotEmpty(t, cat.Conclusions)
	assert.NotEmpty(t, cat.Names)
	assert.NotEmpty(t, cat.AvailableCities)
	assert.NotEmpty(t, cat.FileNamePrefixes)
	assert.NotEmpty(t, cat.LitigationFilePrefixes)
	assert.NotEmpty(t, cat.NonLitigationFilePrefixes)
	assert.NotEmpty(t, cat.FileNameSuffixes)
	assert.NotEmpty(t, cat.AINames)
	assert.NotEmpty(t, cat.Taglines)
	assert.NotEmpty(t, cat.HighFrequencyPhrases)

	// 彩蛋城市必须在可选城市列表里，否则永远触发不了
	assert.Contains(t, cat.AvailableCities, cat.EasterEggCity)
}

func TestSceneByID(t *testing.T) {
	cat := Default()

	t.Run("已知场景", func(t *testing.T) {
		scene, found := cat.SceneByID("system_12368_calls")
		require.True(t, found)
		assert.Equal(t, models.CategorySystem12368, scene.Category)
		assert.True(t, scene.HasRandomNumber)
		require.NotNil(t, scene.NumberRange)
	})

	t.Run("未知场景", func(t *testing.T) {
		_, found := cat.SceneByID("no_such_scene")
		assert.False(t, found)
	})
}

func TestScenesByCategory(t *testing.T) {
	cat := Default()

	for _, category := range models.AllCategories {
		scenes := cat.ScenesByCategory(category)
		assert.NotEmpty(t, scenes, "类别 %s 没有场景", category)
		for _, s := range scenes {
			assert.Equal(t, category, s.Category)
		}
	}
}

func TestValidateRejectsBrokenCatalog(t *testing.T) {
	t.Run("空内容库", func(t *testing.T) {
		cat := &Catalog{}
		assert.Error(t, cat.Validate())
	})

	t.Run("重复ID", func(t *testing.T) {
		cat := Default()
		cat.Scenes = append(cat.Scenes, cat.Scenes[0])
		assert.Error(t, cat.Validate())
	})

	t.Run("数字范围缺失", func(t *testing.T) {
		cat := Default()
		cat.Scenes = append(cat.Scenes, models.Scene{
			ID:              "broken_number",
			Category:        models.CategoryPhone,
			Template:        "测试",
			HasRandomNumber: true,
		})
		assert.Error(t, cat.Validate())
	})

	t.Run("彩蛋场景不存在", func(t *testing.T) {
		cat := Default()
		cat.EasterEggSceneID = "no_such_scene"
		assert.Error(t, cat.Validate())
	})
}

func TestRandomTagline(t *testing.T) {
	cat := Default()
	src := rng.NewSeeded(1)

	for i := 0; i < 100; i++ {
		assert.Contains(t, cat.Taglines, cat.RandomTagline(src))
	}
}

func TestDailyTagline(t *testing.T) {
	cat := Default()

	day := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	// 同一天结果稳定
	first := cat.DailyTagline(day)
	assert.Equal(t, first, cat.DailyTagline(day.Add(5*time.Hour)))
	assert.Contains(t, cat.Taglines, first)

	// 按年内天数轮换，相邻两天取相邻条目
	next := cat.DailyTagline(day.AddDate(0, 0, 1))
	idx := (day.YearDay() - 1) % len(cat.Taglines)
	assert.Equal(t, cat.Taglines[idx], first)
	assert.Equal(t, cat.Taglines[(idx+1)%len(cat.Taglines)], next)
}

func TestUserTagline(t *testing.T) {
	cat := Default()

	t.Run("同一用户结果稳定", func(t *testing.T) {
		assert.Equal(t, cat.UserTagline("user_42"), cat.UserTagline("user_42"))
	})

	t.Run("结果来自固定语录池", func(t *testing.T) {
		for _, id := range []string{"", "a", "律师张三", "user_42", strings.Repeat("x", 100)} {
			assert.Contains(t, cat.Taglines, cat.UserTagline(id))
		}
	})

	t.Run("哈希溢出到最小负数时不越界", func(t *testing.T) {
		// 该字符串的31进制哈希恰好是 math.MinInt32，取负仍为负数
		id := "polygenelubricants"
		var hash int32
		for _, r := range id {
			hash = hash<<5 - hash + int32(r)
		}
		require.Equal(t, int32(math.MinInt32), hash)

		assert.NotPanics(t, func() {
			assert.Contains(t, cat.Taglines, cat.UserTagline(id))
		})
	})
}
