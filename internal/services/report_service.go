// internal/services/report_service.go
package services

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cat-xierluo/falvren2025/internal/catalog"
	apperrors "github.com/cat-xierluo/falvren2025/internal/errors"
	"github.com/cat-xierluo/falvren2025/internal/models"
	"github.com/cat-xierluo/falvren2025/internal/rng"
	"github.com/cat-xierluo/falvren2025/internal/utils"
)

// 城市哨兵值，表示"随机抽一个支持的城市"
const randomCitySentinel = "随机"

// 计算日均拨打次数时假定的年工作日数
const workDaysPerYear = 250

// ReportService 年度报告生成引擎与会话管理
type ReportService struct {
	catalog *catalog.Catalog
	rand    rng.Source
	logger  *utils.Logger

	mu       sync.RWMutex
	sessions map[string]*models.ReportSession
}

// NewReportService 创建报告服务
func NewReportService(cat *catalog.Catalog, src rng.Source) *ReportService {
	return &ReportService{
		catalog:  cat,
		rand:     src,
		logger:   utils.GetLogger(),
		sessions: make(map[string]*models.ReportSession),
	}
}

// GenerateReport 按用户维度生成一份完整年度报告。
// 选择过程：必选类别各取一条，可选类别洗牌后取4-5条，
// AI冲突类别按单次掷骰追加0-2条，首条固定、其余洗牌。
func (s *ReportService) GenerateReport(facets models.UserFacets) *models.GeneratedReport {
	city := s.resolveCity(facets.City)
	area := facets.BusinessArea
	if area == "" {
		area = models.BusinessRandom
	}
	gender := facets.Gender
	if gender == "" {
		gender = models.GenderRandom
	}

	var selected []models.GeneratedScene

	// 必选类别各选1条；非诉维度下跳过 12368 系统类别
	for _, category := range s.catalog.MandatoryCategories {
		if area == models.BusinessNonLitigation && category == models.CategorySystem12368 {
			continue
		}
		candidates := s.eligibleScenes(s.catalog.ScenesByCategory(category), area)
		if len(candidates) == 0 {
			s.logger.Warn("必选类别无可用场景，已跳过", map[string]interface{}{
				"category":      string(category),
				"business_area": string(area),
			})
			continue
		}
		scene := rng.Pick(s.rand, candidates)
		selected = append(selected, s.generateSceneData(scene, city, area))
	}

	// 可选类别洗牌后取前4-5个，每类别最多1条
	shuffled := rng.Shuffle(s.rand, s.catalog.OptionalCategories)
	optionalCount := rng.Between(s.rand, 4, 5)
	if optionalCount > len(shuffled) {
		optionalCount = len(shuffled)
	}
	for i := 0; i < optionalCount; i++ {
		category := shuffled[i]

		// 彩蛋城市选中 travel 类别时强制展示彩蛋场景
		if category == models.CategoryTravel && city == s.catalog.EasterEggCity {
			if scene, found := s.catalog.SceneByID(s.catalog.EasterEggSceneID); found {
				selected = append(selected, s.generateSceneData(scene, city, area))
				continue
			}
		}

		candidates := s.eligibleScenes(s.catalog.ScenesByCategory(category), area)
		if len(candidates) == 0 {
			s.logger.Warn("可选类别无可用场景，已跳过", map[string]interface{}{
				"category":      string(category),
				"business_area": string(area),
			})
			continue
		}
		scene := rng.Pick(s.rand, candidates)
		selected = append(selected, s.generateSceneData(scene, city, area))
	}

	// AI冲突场景：单次掷骰，10%概率2条，20%概率1条
	aiRoll := s.rand.Float64()
	aiCount := 0
	switch {
	case aiRoll < 0.1:
		aiCount = 2
	case aiRoll < 0.3:
		aiCount = 1
	}
	if aiCount > 0 {
		aiCandidates := s.eligibleScenes(s.catalog.ScenesByCategory(models.CategoryAIConflict), area)
		shuffledAI := rng.Shuffle(s.rand, aiCandidates)
		if aiCount > len(shuffledAI) {
			aiCount = len(shuffledAI)
		}
		for i := 0; i < aiCount; i++ {
			selected = append(selected, s.generateSceneData(shuffledAI[i], city, area))
		}
	}

	// 首条固定在最前，其余洗牌
	if len(selected) > 1 {
		rest := rng.Shuffle(s.rand, selected[1:])
		selected = append([]models.GeneratedScene{selected[0]}, rest...)
	}

	return &models.GeneratedReport{
		Scenes:          selected,
		SystemNarration: rng.Pick(s.rand, s.catalog.Narrations),
		Conclusion:      rng.Pick(s.rand, s.catalog.Conclusions),

		WorkDays:         rng.Between(s.rand, 295, 335),
		FullRestWeekends: s.randomFullRestWeekends(),
		TrustInNextYear:  rng.Between(s.rand, 8, 18),

		City:         city,
		Gender:       gender,
		BusinessArea: area,
	}
}

// resolveCity 解析城市维度：空或"随机"抽一个支持的城市，其余原样使用
func (s *ReportService) resolveCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" || city == randomCitySentinel {
		return rng.Pick(s.rand, s.catalog.AvailableCities)
	}
	return city
}

// eligibleScenes 过滤当前业务领域下可用的场景。
// 随机维度只排除否定内容；指定领域时场景的领域限制必须兼容，
// 否定内容只有在场景限制与指定领域一致时才可出现。
func (s *ReportService) eligibleScenes(scenes []models.Scene, area models.BusinessArea) []models.Scene {
	var result []models.Scene
	for _, scene := range scenes {
		if area == models.BusinessRandom {
			if scene.Negative {
				continue
			}
			result = append(result, scene)
			continue
		}

		if scene.BusinessArea != "" && scene.BusinessArea != models.BusinessRandom && scene.BusinessArea != area {
			continue
		}
		if scene.Negative && scene.BusinessArea != area {
			continue
		}
		result = append(result, scene)
	}
	return result
}

// generateSceneData 为选中的场景解析全部随机值
func (s *ReportService) generateSceneData(scene models.Scene, city string, area models.BusinessArea) models.GeneratedScene {
	generated := models.GeneratedScene{Scene: scene}

	if scene.HasRandomNumber && scene.NumberRange != nil {
		n := rng.Between(s.rand, scene.NumberRange.Min, scene.NumberRange.Max)
		generated.RandomNumber = &n

		// 12368拨打场景额外换算日均次数
		if scene.ID == "system_12368_calls" {
			daily := int(math.Round(float64(n) / float64(workDaysPerYear)))
			generated.DailyCount = &daily
		}
	}

	// 副文本引用比例占位符时在生成期掷骰，保证格式化无副作用
	if strings.Contains(scene.Subtext, "{ratio}") {
		ratio := rng.Between(s.rand, 30, 60)
		generated.RandomRatio = &ratio
	}

	if scene.HasRandomTime {
		generated.RandomTime = s.randomLateNightTime()
	}
	if scene.HasRandomName {
		generated.RandomName = rng.Pick(s.rand, s.catalog.Names)
	}
	if scene.HasRandomCity {
		generated.RandomCity = city
	}
	if scene.HasRandomFileName {
		generated.RandomFileName = s.randomFileName(area)
	}
	if scene.ID == "ai_first_lawyer" {
		generated.RandomAIName = rng.Pick(s.rand, s.catalog.AINames)
	}

	// 城市特色内容：只在模板实际引用对应占位符时填充
	if feature, ok := s.catalog.CityFeatures[city]; ok {
		if scene.ID == "late_night_drink" && feature.Drink != "" {
			generated.CityDrink = feature.Drink
		}
		if strings.Contains(scene.Template, "{cityFood}") && feature.Food != "" {
			generated.CityFood = feature.Food
		}
		if strings.Contains(scene.Template, "{citySpot}") && feature.Spot != "" {
			generated.CitySpot = feature.Spot
		}
		if strings.Contains(scene.Template, "{easterEgg}") && feature.EasterEgg != "" {
			generated.EasterEgg = feature.EasterEgg
		}
	}

	if scene.ID == "cognition_confidence" {
		start := rng.Between(s.rand, 72, 85)
		end := rng.Between(s.rand, 35, 48)
		generated.ConfidenceStart = &start
		generated.ConfidenceEnd = &end
	}

	return generated
}

// randomLateNightTime 生成凌晨3-5点之间的时间串
func (s *ReportService) randomLateNightTime() string {
	hour := rng.Between(s.rand, 3, 5)
	minute := rng.Between(s.rand, 0, 59)
	return fmt.Sprintf("%d:%02d", hour, minute)
}

// randomFileName 按业务领域拼装文件名
func (s *ReportService) randomFileName(area models.BusinessArea) string {
	var prefixes []string
	switch area {
	case models.BusinessLitigation:
		prefixes = s.catalog.LitigationFilePrefixes
	case models.BusinessNonLitigation:
		prefixes = s.catalog.NonLitigationFilePrefixes
	default:
		// 随机维度：一半概率用两个领域的合并池，一半用通用池
		if s.rand.Float64() > 0.5 {
			prefixes = append(append([]string{}, s.catalog.LitigationFilePrefixes...),
				s.catalog.NonLitigationFilePrefixes...)
		} else {
			prefixes = s.catalog.FileNamePrefixes
		}
	}

	prefix := rng.Pick(s.rand, prefixes)
	suffix := rng.Pick(s.rand, s.catalog.FileNameSuffixes)
	return prefix + suffix + ".docx"
}

// randomFullRestWeekends 1-4个整周末，一半概率再加半个
func (s *ReportService) randomFullRestWeekends() float64 {
	weekends := float64(rng.Between(s.rand, 1, 4))
	if s.rand.Float64() > 0.5 {
		weekends += 0.5
	}
	return weekends
}

// ========== 会话管理 ==========

// CreateSession 生成报告并建立新会话
func (s *ReportService) CreateSession(facets models.UserFacets) *models.ReportSession {
	report := s.GenerateReport(facets)

	session := &models.ReportSession{
		ID:        uuid.New().String(),
		Report:    report,
		Facets:    facets,
		ReportKey: 1,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("报告会话已创建", map[string]interface{}{
		"session_id":    session.ID,
		"city":          report.City,
		"business_area": string(report.BusinessArea),
		"scene_count":   len(report.Scenes),
	})

	return session
}

// GetSession 查询会话
func (s *ReportService) GetSession(sessionID string) (*models.ReportSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("报告会话不存在: %s", sessionID), nil)
	}
	return session, nil
}

// RestartSession 用原有维度重新生成报告，报告键递增
func (s *ReportService) RestartSession(sessionID string) (*models.ReportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("报告会话不存在: %s", sessionID), nil)
	}

	session.Report = s.GenerateReport(session.Facets)
	session.ReportKey++

	s.logger.Info("报告会话已重新生成", map[string]interface{}{
		"session_id": session.ID,
		"report_key": session.ReportKey,
	})

	return session, nil
}

// DropSession 销毁会话
func (s *ReportService) DropSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sessionID]; !exists {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("报告会话不存在: %s", sessionID), nil)
	}
	delete(s.sessions, sessionID)
	return nil
}

// SessionCount 当前会话数
func (s *ReportService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
