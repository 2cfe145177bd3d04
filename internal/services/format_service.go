// internal/services/format_service.go
package services

import (
	"strconv"
	"strings"

	"github.com/cat-xierluo/falvren2025/internal/models"
)

// FormatService 把场景模板中的占位符替换为生成期解析好的随机值。
// 所有随机值都已经在生成阶段落在 GeneratedScene 上，
// 这里只做纯文本替换，同一输入重复格式化结果不变。
type FormatService struct{}

// NewFormatService 创建格式化服务
func NewFormatService() *FormatService {
	return &FormatService{}
}

// tokenValues 汇总一个场景的全部可用占位符取值。
// 未解析的占位符不进入映射，替换时原样保留。
func (f *FormatService) tokenValues(generated *models.GeneratedScene) map[string]string {
	values := make(map[string]string)

	if generated.RandomNumber != nil {
		values["{number}"] = strconv.Itoa(*generated.RandomNumber)
	}
	if generated.DailyCount != nil {
		values["{daily}"] = strconv.Itoa(*generated.DailyCount)
	}
	if generated.RandomRatio != nil {
		values["{ratio}"] = strconv.Itoa(*generated.RandomRatio)
	}
	if generated.RandomTime != "" {
		values["{time}"] = generated.RandomTime
	}
	if generated.RandomName != "" {
		values["{name}"] = generated.RandomName
	}
	if generated.RandomCity != "" {
		values["{city}"] = generated.RandomCity
	}
	if generated.RandomFileName != "" {
		values["{filename}"] = generated.RandomFileName
	}
	if generated.RandomAIName != "" {
		values["{aiName}"] = generated.RandomAIName
	}
	if generated.CityDrink != "" {
		values["{cityDrink}"] = generated.CityDrink
	}
	if generated.CityFood != "" {
		values["{cityFood}"] = generated.CityFood
	}
	if generated.CitySpot != "" {
		values["{citySpot}"] = generated.CitySpot
	}
	if generated.EasterEgg != "" {
		values["{easterEgg}"] = generated.EasterEgg
	}
	if generated.ConfidenceStart != nil {
		values["{start}"] = strconv.Itoa(*generated.ConfidenceStart)
	}
	if generated.ConfidenceEnd != nil {
		values["{end}"] = strconv.Itoa(*generated.ConfidenceEnd)
	}

	return values
}

// replaceTokens 单次遍历替换。**加粗**标记原样透传，由展示层处理
func (f *FormatService) replaceTokens(text string, values map[string]string) string {
	if text == "" {
		return ""
	}
	for token, value := range values {
		text = strings.ReplaceAll(text, token, value)
	}
	return text
}

// FormatMainText 格式化主文案
func (f *FormatService) FormatMainText(generated *models.GeneratedScene) string {
	return f.replaceTokens(generated.Scene.Template, f.tokenValues(generated))
}

// FormatSubtext 格式化小字补充，无小字时返回空串
func (f *FormatService) FormatSubtext(generated *models.GeneratedScene) string {
	return f.replaceTokens(generated.Scene.Subtext, f.tokenValues(generated))
}

// FormatSoulText 格式化点睛句，无点睛句时返回空串
func (f *FormatService) FormatSoulText(generated *models.GeneratedScene) string {
	return f.replaceTokens(generated.Scene.SoulText, f.tokenValues(generated))
}
