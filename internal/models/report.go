// internal/models/report.go
package models

import (
	"time"
)

// UserFacets 用户选择的生成维度
type UserFacets struct {
	City         string       `json:"city,omitempty"`          // 城市，空或"随机"表示随机
	Gender       Gender       `json:"gender,omitempty"`        // 目前不影响选择逻辑
	BusinessArea BusinessArea `json:"business_area,omitempty"` // 业务领域
}

// GeneratedScene 一次生成中被选中的场景及其已解析的随机值
type GeneratedScene struct {
	Scene Scene `json:"scene"`

	RandomNumber   *int   `json:"random_number,omitempty"`
	DailyCount     *int   `json:"daily_count,omitempty"` // 平均每天次数
	RandomTime     string `json:"random_time,omitempty"`
	RandomName     string `json:"random_name,omitempty"`
	RandomCity     string `json:"random_city,omitempty"`
	RandomFileName string `json:"random_file_name,omitempty"`
	RandomAIName   string `json:"random_ai_name,omitempty"`
	RandomRatio    *int   `json:"random_ratio,omitempty"`

	// 城市特色内容，只在模板引用对应占位符时填充
	CityDrink string `json:"city_drink,omitempty"`
	CityFood  string `json:"city_food,omitempty"`
	CitySpot  string `json:"city_spot,omitempty"`
	EasterEgg string `json:"easter_egg,omitempty"`

	ConfidenceStart *int `json:"confidence_start,omitempty"`
	ConfidenceEnd   *int `json:"confidence_end,omitempty"`
}

// SystemNarration 系统旁白
type SystemNarration struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Conclusion 年终结论
type Conclusion struct {
	ID       string `json:"id"`
	MainText string `json:"main_text"`
	SubText  string `json:"sub_text"`
}

// GeneratedReport 一次会话的完整年度报告
type GeneratedReport struct {
	Scenes          []GeneratedScene `json:"scenes"`
	SystemNarration SystemNarration  `json:"system_narration"`
	Conclusion      Conclusion       `json:"conclusion"`

	// 身份统计
	WorkDays         int     `json:"work_days"`
	FullRestWeekends float64 `json:"full_rest_weekends"`
	TrustInNextYear  int     `json:"trust_in_next_year"`

	// 解析后的生成维度
	City         string       `json:"city"`
	Gender       Gender       `json:"gender"`
	BusinessArea BusinessArea `json:"business_area"`
}

// TotalPages 报告总页数：身份页 + 场景页 + 结论页 + 分享页 + 推广页
func (r *GeneratedReport) TotalPages() int {
	return 1 + len(r.Scenes) + 3
}

// ReportSession 一次报告会话
type ReportSession struct {
	ID        string           `json:"id"`
	Report    *GeneratedReport `json:"report"`
	Facets    UserFacets       `json:"facets"`
	ReportKey int              `json:"report_key"` // 重新生成时递增
	CreatedAt time.Time        `json:"created_at"`
}

// FlowState 页面流转状态
type FlowState string

const (
	FlowNotStarted FlowState = "not_started"
	FlowViewing    FlowState = "viewing"
)

// PageKind 页面类型
type PageKind string

const (
	PageIdentity   PageKind = "identity"
	PageScene      PageKind = "scene"
	PageConclusion PageKind = "conclusion"
	PageShare      PageKind = "share"
	PagePromote    PageKind = "promote"
)

// Page 分页后的单页内容（文本已完成占位符替换）
type Page struct {
	Index        int           `json:"index"`
	Kind         PageKind      `json:"kind"`
	Category     SceneCategory `json:"category,omitempty"`
	CategoryName string        `json:"category_name,omitempty"`
	CategoryIcon string        `json:"category_icon,omitempty"`
	MainText     string        `json:"main_text,omitempty"`
	Subtext      string        `json:"subtext,omitempty"`
	SoulText     string        `json:"soul_text,omitempty"`

	// 身份页字段
	WorkDays         *int     `json:"work_days,omitempty"`
	FullRestWeekends *float64 `json:"full_rest_weekends,omitempty"`
	TrustInNextYear  *int     `json:"trust_in_next_year,omitempty"`

	// 分享页字段
	Narration string `json:"narration,omitempty"`
}
