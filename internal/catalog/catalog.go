// internal/catalog/catalog.go
package catalog

import (
	"fmt"

	"github.com/cat-xierluo/falvren2025/internal/models"
)

// Catalog 内容库：全部可选场景模板及其随机化所需的数据池。
// 启动时构建一次，之后只读，通过参数注入生成引擎。
type Catalog struct {
	Scenes      []models.Scene
	Narrations  []models.SystemNarration
	Conclusions []models.Conclusion

	// 数据池
	Names                    []string
	AvailableCities          []string
	CityFeatures             map[string]models.CityFeature
	FileNamePrefixes         []string
	LitigationFilePrefixes   []string
	NonLitigationFilePrefixes []string
	FileNameSuffixes         []string
	EmailSubjects            []string
	AINames                  []string
	Taglines                 []string
	HighFrequencyPhrases     []models.PhrasePair

	// 必选/可选类别
	MandatoryCategories []models.SceneCategory
	OptionalCategories  []models.SceneCategory

	// 彩蛋：特定城市在 travel 类别下强制选中的场景
	EasterEggCity    string
	EasterEggSceneID string
}

// Default 构建内置内容库
func Default() *Catalog {
	return &Catalog{
		Scenes:      defaultScenes(),
		Narrations:  defaultNarrations(),
		Conclusions: defaultConclusions(),

		Names:                     defaultNames(),
		AvailableCities:           defaultCities(),
		CityFeatures:              defaultCityFeatures(),
		FileNamePrefixes:          defaultFilePrefixes(),
		LitigationFilePrefixes:    litigationFilePrefixes(),
		NonLitigationFilePrefixes: nonLitigationFilePrefixes(),
		FileNameSuffixes:          defaultFileSuffixes(),
		EmailSubjects:             defaultEmailSubjects(),
		AINames:                   defaultAINames(),
		Taglines:                  defaultTaglines(),
		HighFrequencyPhrases:      defaultPhrases(),

		MandatoryCategories: []models.SceneCategory{
			models.CategorySystem12368,
			models.CategoryLateNight,
			models.CategoryDocuments,
		},
		OptionalCategories: []models.SceneCategory{
			models.CategoryPhone,
			models.CategoryTravel,
			models.CategoryTimeDisorder,
			models.CategoryIndustryJargon,
			models.CategoryCognitionChange,
			models.CategoryIdentityOverflow,
		},

		EasterEggCity:    "苏州",
		EasterEggSceneID: "travel_suzhou_easter_egg",
	}
}

// ScenesByCategory 返回指定类别的全部场景
func (c *Catalog) ScenesByCategory(category models.SceneCategory) []models.Scene {
	var result []models.Scene
	for _, s := range c.Scenes {
		if s.Category == category {
			result = append(result, s)
		}
	}
	return result
}

// SceneByID 按ID查找场景
func (c *Catalog) SceneByID(id string) (models.Scene, bool) {
	for _, s := range c.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return models.Scene{}, false
}

// Validate 校验内容库的一致性。
// 服务启动时调用一次，拒绝会导致生成阶段无场景可选的内容库。
func (c *Catalog) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("内容库为空")
	}

	seen := make(map[string]bool, len(c.Scenes))
	for _, s := range c.Scenes {
		if s.ID == "" {
			return fmt.Errorf("场景缺少ID: %+v", s.Category)
		}
		if seen[s.ID] {
			return fmt.Errorf("场景ID重复: %s", s.ID)
		}
		seen[s.ID] = true

		if !models.IsValidCategory(s.Category) {
			return fmt.Errorf("场景 %s 的类别未知: %s", s.ID, s.Category)
		}
		if s.Template == "" {
			return fmt.Errorf("场景 %s 缺少模板文本", s.ID)
		}
		if s.HasRandomNumber {
			if s.NumberRange == nil {
				return fmt.Errorf("场景 %s 声明了随机数字但缺少范围", s.ID)
			}
			if s.NumberRange.Min > s.NumberRange.Max {
				return fmt.Errorf("场景 %s 的数字范围无效: [%d, %d]",
					s.ID, s.NumberRange.Min, s.NumberRange.Max)
			}
		}
	}

	// 每个必选类别必须至少保留一条无限制且非否定的场景，
	// 否则某些维度组合下会出现空候选列表
	for _, category := range c.MandatoryCategories {
		ok := false
		for _, s := range c.ScenesByCategory(category) {
			if !s.Negative && (s.BusinessArea == "" || s.BusinessArea == models.BusinessRandom) {
				ok = true
				break
			}
		}
		// system_12368 类别允许只有业务领域专属场景，
		// 因为非诉维度下该类别整体跳过，诉讼维度下有诉讼专属条目
		if !ok && category != models.CategorySystem12368 {
			return fmt.Errorf("必选类别 %s 缺少无限制场景", category)
		}
	}

	if c.EasterEggSceneID != "" {
		if _, found := c.SceneByID(c.EasterEggSceneID); !found {
			return fmt.Errorf("彩蛋场景不存在: %s", c.EasterEggSceneID)
		}
	}

	return nil
}
