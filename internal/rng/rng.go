// internal/rng/rng.go
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source 随机源接口。
// 生成引擎的全部随机调用都经过它，测试时可注入固定种子的实现。
type Source interface {
	// Intn 返回 [0, n) 内的随机整数，n 必须大于 0
	Intn(n int) int
	// Float64 返回 [0.0, 1.0) 内的随机浮点数
	Float64() float64
}

// lockedSource 基于 math/rand 的默认实现，带互斥锁保证并发安全
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New 创建时间种子的随机源
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded 创建固定种子的随机源，用于确定性测试
func NewSeeded(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Between 返回 [min, max] 闭区间内的随机整数
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Pick 从切片中均匀随机选取一个元素
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Shuffle 返回打乱后的副本（Fisher-Yates），不修改原切片
func Shuffle[T any](src Source, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
