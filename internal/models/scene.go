// internal/models/scene.go
package models

// SceneCategory 场景类别
type SceneCategory string

const (
	CategoryPhone            SceneCategory = "phone"
	CategorySystem12368      SceneCategory = "system_12368"
	CategoryLateNight        SceneCategory = "late_night"
	CategoryTravel           SceneCategory = "travel"
	CategoryDocuments        SceneCategory = "documents"
	CategoryTimeDisorder     SceneCategory = "time_disorder"
	CategoryIndustryJargon   SceneCategory = "industry_jargon"
	CategoryCognitionChange  SceneCategory = "cognition_change"
	CategoryIdentityOverflow SceneCategory = "identity_overflow"
	CategoryAIConflict       SceneCategory = "ai_conflict"
)

// AllCategories 全部场景类别（固定顺序）
var AllCategories = []SceneCategory{
	CategoryPhone,
	CategorySystem12368,
	CategoryLateNight,
	CategoryTravel,
	CategoryDocuments,
	CategoryTimeDisorder,
	CategoryIndustryJargon,
	CategoryCognitionChange,
	CategoryIdentityOverflow,
	CategoryAIConflict,
}

// BusinessArea 业务领域
type BusinessArea string

const (
	BusinessLitigation    BusinessArea = "litigation"     // 诉讼
	BusinessNonLitigation BusinessArea = "non_litigation" // 非诉
	BusinessRandom        BusinessArea = "random"
)

// Gender 性别选项（目前仅用于界面分支，不影响场景选择）
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderRandom Gender = "random"
)

// NumberRange 随机数字的闭区间范围
type NumberRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Scene 场景库条目：一条带随机化契约的年度"事实"模板
type Scene struct {
	ID       string        `json:"id"`
	Category SceneCategory `json:"category"`
	Template string        `json:"template"`
	Subtext  string        `json:"subtext,omitempty"`   // 小字补充
	SoulText string        `json:"soul_text,omitempty"` // 点睛句

	HasRandomNumber   bool         `json:"has_random_number,omitempty"`
	NumberRange       *NumberRange `json:"number_range,omitempty"`
	NumberSuffix      string       `json:"number_suffix,omitempty"`
	HasRandomTime     bool         `json:"has_random_time,omitempty"`
	HasRandomName     bool         `json:"has_random_name,omitempty"`
	HasRandomCity     bool         `json:"has_random_city,omitempty"`
	HasRandomFileName bool         `json:"has_random_file_name,omitempty"`

	BusinessArea BusinessArea `json:"business_area,omitempty"` // 业务领域限制（可选）
	Negative     bool         `json:"negative,omitempty"`      // 否定内容，纯随机选择时排除
}

// CategoryName 返回类别的中文名称
func CategoryName(category SceneCategory) string {
	names := map[SceneCategory]string{
		CategoryPhone:            "沟通记录",
		CategorySystem12368:      "系统通讯",
		CategoryLateNight:        "深夜时刻",
		CategoryTravel:           "差旅数据",
		CategoryDocuments:        "文档统计",
		CategoryTimeDisorder:     "时间感知",
		CategoryIndustryJargon:   "行业语言",
		CategoryCognitionChange:  "认知变化",
		CategoryIdentityOverflow: "身份边界",
		CategoryAIConflict:       "AI 时代冲突",
	}
	return names[category]
}

// CategoryIcon 返回类别的图标
func CategoryIcon(category SceneCategory) string {
	icons := map[SceneCategory]string{
		CategoryPhone:            "📞",
		CategorySystem12368:      "📱",
		CategoryLateNight:        "🌙",
		CategoryTravel:           "✈️",
		CategoryDocuments:        "📄",
		CategoryTimeDisorder:     "⏰",
		CategoryIndustryJargon:   "💬",
		CategoryCognitionChange:  "🧠",
		CategoryIdentityOverflow: "👤",
		CategoryAIConflict:       "🤖",
	}
	return icons[category]
}

// IsValidCategory 检查类别是否合法
func IsValidCategory(category SceneCategory) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}
