// internal/models/catalog.go
package models

// CityFeature 城市特色内容，用于填充场景模板中的城市类占位符
type CityFeature struct {
	Drink          string `json:"drink,omitempty"`          // 特色饮品
	Food           string `json:"food,omitempty"`           // 特色食物
	Spot           string `json:"spot,omitempty"`           // 特色地点
	Weather        string `json:"weather,omitempty"`        // 天气特征
	Transportation string `json:"transportation,omitempty"` // 交通特色
	EasterEgg      string `json:"easter_egg,omitempty"`     // 彩蛋
}

// PhrasePair 高频用语及其真实含义
type PhrasePair struct {
	Phrase  string `json:"phrase"`
	Meaning string `json:"meaning"`
}
