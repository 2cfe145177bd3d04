package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
)

func newTestReportService(seed int64) *ReportService {
	return NewReportService(catalog.Default(), rng.NewSeeded(seed))
}

func sceneCategories(report *models.GeneratedReport) map[models.SceneCategory]int {
	counts := make(map[models.SceneCategory]int)
	for _, s := range report.Scenes {
		counts[s.Scene.Category]++
	}
	return counts
}

func TestGenerateReportMandatoryCategories(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{
			BusinessArea: models.BusinessLitigation,
		})

		counts := sceneCategories(report)
		assert.Equal(t, 1, counts[models.CategorySystem12368], "seed %d", seed)
		assert.Equal(t, 1, counts[models.CategoryLateNight], "seed %d", seed)
		assert.Equal(t, 1, counts[models.CategoryDocuments], "seed %d", seed)
	}
}

func TestGenerateReportNonLitigationSkips12368(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{
			BusinessArea: models.BusinessNonLitigation,
		})

		counts := sceneCategories(report)
		assert.Zero(t, counts[models.CategorySystem12368], "seed %d", seed)
		assert.Equal(t, 1, counts[models.CategoryLateNight], "seed %d", seed)
		assert.Equal(t, 1, counts[models.CategoryDocuments], "seed %d", seed)
	}
}

func TestGenerateReportSceneCount(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{})

		// 必选3条 + 可选4-5条 + AI追加0-2条
		assert.GreaterOrEqual(t, len(report.Scenes), 7, "seed %d", seed)
		assert.LessOrEqual(t, len(report.Scenes), 10, "seed %d", seed)
	}
}

func TestGenerateReportNoDuplicateScenes(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{})

		seen := make(map[string]bool)
		for _, s := range report.Scenes {
			assert.False(t, seen[s.Scene.ID], "seed %d 场景重复: %s", seed, s.Scene.ID)
			seen[s.Scene.ID] = true
		}
	}
}

func TestGenerateReportRandomAreaExcludesNegative(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{
			BusinessArea: models.BusinessRandom,
		})

		for _, s := range report.Scenes {
			assert.False(t, s.Scene.Negative,
				"seed %d 随机维度出现否定场景: %s", seed, s.Scene.ID)
		}
	}
}

func TestGenerateReportAreaRestriction(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{
			BusinessArea: models.BusinessLitigation,
		})

		for _, s := range report.Scenes {
			if s.Scene.BusinessArea == "" || s.Scene.BusinessArea == models.BusinessRandom {
				continue
			}
			assert.Equal(t, models.BusinessLitigation, s.Scene.BusinessArea,
				"seed %d 诉讼维度选中了 %s 场景: %s", seed, s.Scene.BusinessArea, s.Scene.ID)
		}
	}
}

func TestGenerateReportSuzhouEasterEgg(t *testing.T) {
	triggered := false
	for seed := int64(0); seed < 200; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{City: "苏州"})

		for _, s := range report.Scenes {
			if s.Scene.Category != models.CategoryTravel {
				continue
			}
			// 苏州用户只要抽中出行类别，必须展示彩蛋场景
			assert.Equal(t, "travel_suzhou_easter_egg", s.Scene.ID, "seed %d", seed)
			triggered = true
		}
	}
	require.True(t, triggered, "200个种子里出行类别从未被选中")
}

func TestGenerateReportIdentityStats(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		svc := newTestReportService(seed)
		report := svc.GenerateReport(models.UserFacets{})

		assert.GreaterOrEqual(t, report.WorkDays, 295)
		assert.LessOrEqual(t, report.WorkDays, 335)

		assert.GreaterOrEqual(t, report.FullRestWeekends, 1.0)
		assert.LessOrEqual(t, report.FullRestWeekends, 4.5)
		assert.Zero(t, math.Mod(report.FullRestWeekends*2, 1),
			"整周末数只能以0.5为步长")

		assert.GreaterOrEqual(t, report.TrustInNextYear, 8)
		assert.LessOrEqual(t, report.TrustInNextYear, 18)
	}
}

func TestGenerateReportResolvesFacets(t *testing.T) {
	svc := newTestReportService(1)

	t.Run("指定城市原样保留", func(t *testing.T) {
		report := svc.GenerateReport(models.UserFacets{City: "北京"})
		assert.Equal(t, "北京", report.City)
	})

	t.Run("随机城市从支持列表里选", func(t *testing.T) {
		cat := catalog.Default()
		for _, city := range []string{"", "随机"} {
			report := svc.GenerateReport(models.UserFacets{City: city})
			assert.Contains(t, cat.AvailableCities, report.City)
		}
	})

	t.Run("空维度折算为随机", func(t *testing.T) {
		report := svc.GenerateReport(models.UserFacets{})
		assert.Equal(t, models.GenderRandom, report.Gender)
		assert.Equal(t, models.BusinessRandom, report.BusinessArea)
	})
}

func TestGenerateSceneData(t *testing.T) {
	svc := newTestReportService(7)
	cat := svc.catalog

	t.Run("随机数字落在声明范围内", func(t *testing.T) {
		scene, found := cat.SceneByID("system_12368_calls")
		require.True(t, found)

		for i := 0; i < 50; i++ {
			generated := svc.generateSceneData(scene, "北京", models.BusinessLitigation)
			require.NotNil(t, generated.RandomNumber)
			assert.GreaterOrEqual(t, *generated.RandomNumber, scene.NumberRange.Min)
			assert.LessOrEqual(t, *generated.RandomNumber, scene.NumberRange.Max)

			// 日均次数按年工作日换算并四舍五入
			require.NotNil(t, generated.DailyCount)
			expected := int(math.Round(float64(*generated.RandomNumber) / 250))
			assert.Equal(t, expected, *generated.DailyCount)
		}
	})

	t.Run("深夜时间落在凌晨3到5点", func(t *testing.T) {
		timePattern := regexp.MustCompile(`^[3-5]:[0-5][0-9]$`)
		for i := 0; i < 50; i++ {
			assert.Regexp(t, timePattern, svc.randomLateNightTime())
		}
	})

	t.Run("文件名带后缀和扩展名", func(t *testing.T) {
		for _, area := range []models.BusinessArea{
			models.BusinessLitigation,
			models.BusinessNonLitigation,
			models.BusinessRandom,
		} {
			name := svc.randomFileName(area)
			assert.True(t, strings.HasSuffix(name, ".docx"), "文件名: %s", name)
		}
	})

	t.Run("信心指数起止范围", func(t *testing.T) {
		scene, found := cat.SceneByID("cognition_confidence")
		require.True(t, found)

		for i := 0; i < 50; i++ {
			generated := svc.generateSceneData(scene, "北京", models.BusinessRandom)
			require.NotNil(t, generated.ConfidenceStart)
			require.NotNil(t, generated.ConfidenceEnd)
			assert.GreaterOrEqual(t, *generated.ConfidenceStart, 72)
			assert.LessOrEqual(t, *generated.ConfidenceStart, 85)
			assert.GreaterOrEqual(t, *generated.ConfidenceEnd, 35)
			assert.LessOrEqual(t, *generated.ConfidenceEnd, 48)
		}
	})

	t.Run("副文本引用比例时生成期掷骰", func(t *testing.T) {
		withRatio := false
		for _, scene := range cat.Scenes {
			if !strings.Contains(scene.Subtext, "{ratio}") {
				continue
			}
			withRatio = true
			generated := svc.generateSceneData(scene, "北京", models.BusinessRandom)
			require.NotNil(t, generated.RandomRatio)
			assert.GreaterOrEqual(t, *generated.RandomRatio, 30)
			assert.LessOrEqual(t, *generated.RandomRatio, 60)
		}
		require.True(t, withRatio, "内容库里没有引用比例占位符的场景")
	})

	t.Run("城市饮品只给深夜饮品场景", func(t *testing.T) {
		scene, found := cat.SceneByID("late_night_drink")
		require.True(t, found)

		var city string
		for c, feature := range cat.CityFeatures {
			if feature.Drink != "" {
				city = c
				break
			}
		}
		require.NotEmpty(t, city, "内容库里没有带饮品的城市")

		generated := svc.generateSceneData(scene, city, models.BusinessRandom)
		assert.NotEmpty(t, generated.CityDrink)

		other, found := cat.SceneByID("late_night_email")
		require.True(t, found)
		generated = svc.generateSceneData(other, city, models.BusinessRandom)
		assert.Empty(t, generated.CityDrink)
	})
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestReportService(9)

	session := svc.CreateSession(models.UserFacets{City: "上海"})
	require.NotEmpty(t, session.ID)
	assert.Equal(t, 1, session.ReportKey)
	assert.Equal(t, "上海", session.Report.City)
	assert.Equal(t, 1, svc.SessionCount())

	t.Run("查询已有会话", func(t *testing.T) {
		got, err := svc.GetSession(session.ID)
		require.NoError(t, err)
		assert.Same(t, session, got)
	})

	t.Run("查询不存在的会话", func(t *testing.T) {
		_, err := svc.GetSession("missing")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("重新生成递增报告键", func(t *testing.T) {
		restarted, err := svc.RestartSession(session.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, restarted.ReportKey)
		assert.Equal(t, "上海", restarted.Report.City)
	})

	t.Run("销毁会话", func(t *testing.T) {
		require.NoError(t, svc.DropSession(session.ID))
		assert.Zero(t, svc.SessionCount())

		err := svc.DropSession(session.ID)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestRestartSessionKeepsFacets(t *testing.T) {
	svc := newTestReportService(11)
	session := svc.CreateSession(models.UserFacets{
		City:         "深圳",
		BusinessArea: models.BusinessNonLitigation,
	})

	for i := 0; i < 5; i++ {
		restarted, err := svc.RestartSession(session.ID)
		require.NoError(t, err)
		assert.Equal(t, "深圳", restarted.Report.City)
		assert.Equal(t, models.BusinessNonLitigation, restarted.Report.BusinessArea)
		assert.Equal(t, i+2, restarted.ReportKey, fmt.Sprintf("第%d次重新生成", i+1))
	}
}
