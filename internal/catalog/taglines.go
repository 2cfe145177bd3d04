// internal/catalog/taglines.go
package catalog

import (
	"time"

	"github.com/cat-xierluo/falvren2025/internal/rng"
)

// RandomTagline 随机取一条作者标语
func (c *Catalog) RandomTagline(src rng.Source) string {
	if len(c.Taglines) == 0 {
		return ""
	}
	return rng.Pick(src, c.Taglines)
}

// DailyTagline 按一年中的第几天取标语，同一天结果固定
func (c *Catalog) DailyTagline(now time.Time) string {
	if len(c.Taglines) == 0 {
		return ""
	}
	return c.Taglines[(now.YearDay()-1)%len(c.Taglines)]
}

// UserTagline 按用户ID哈希取标语，同一用户始终看到同一条
func (c *Catalog) UserTagline(userID string) string {
	if len(c.Taglines) == 0 {
		return ""
	}

	var hash int32
	for _, r := range userID {
		hash = hash<<5 - hash + int32(r)
	}
	// 取绝对值会在 math.MinInt32 上溢出，改用无符号转换保证索引非负
	return c.Taglines[uint32(hash)%uint32(len(c.Taglines))]
}
