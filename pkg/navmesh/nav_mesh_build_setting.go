package navmesh

import (
	"fmt"
)

const (
	kDefaultVertexPrecision     int     = 4
	kDefaultStoragePrecision    int     = 2
	kDefaultNeighbourMaxDistSq  float64 = 100 * 100
	kDefaultNearestMaxDistSq    float64 = 50 * 50
	kDefaultVerticalTolerance   float64 = 0.5
	kDefaultMaxSearchIterations int     = 0
)

// NavMeshBuildSettings 构建与查询参数 字段为零值时使用默认值
type NavMeshBuildSettings struct {
	// 顶点合并精度 小数位数
	VertexPrecision int
	// 存储坐标保留的小数位数
	StoragePrecision int
	// 两个三角形重心距离平方超过该值时不检测相邻 和网格的单位尺度有关
	NeighbourMaxDistSq float64
	// 查找最近三角形时的最大重心距离平方
	NearestMaxDistSq float64
	// 终点所在三角形的竖直方向容差
	VerticalTolerance float64
	// A*最大迭代次数 0为不限制
	MaxSearchIterations int
}

func NewNavMeshBuildSettings() *NavMeshBuildSettings {
	return &NavMeshBuildSettings{
		VertexPrecision:     kDefaultVertexPrecision,
		StoragePrecision:    kDefaultStoragePrecision,
		NeighbourMaxDistSq:  kDefaultNeighbourMaxDistSq,
		NearestMaxDistSq:    kDefaultNearestMaxDistSq,
		VerticalTolerance:   kDefaultVerticalTolerance,
		MaxSearchIterations: kDefaultMaxSearchIterations,
	}
}

// WithDefaults 返回填充了默认值的副本 非正数的字段取默认值
func (s *NavMeshBuildSettings) WithDefaults() *NavMeshBuildSettings {
	ret := NewNavMeshBuildSettings()
	if s == nil {
		return ret
	}
	if s.VertexPrecision > 0 {
		ret.VertexPrecision = s.VertexPrecision
	}
	if s.StoragePrecision > 0 {
		ret.StoragePrecision = s.StoragePrecision
	}
	if s.NeighbourMaxDistSq > 0 {
		ret.NeighbourMaxDistSq = s.NeighbourMaxDistSq
	}
	if s.NearestMaxDistSq > 0 {
		ret.NearestMaxDistSq = s.NearestMaxDistSq
	}
	if s.VerticalTolerance > 0 {
		ret.VerticalTolerance = s.VerticalTolerance
	}
	if s.MaxSearchIterations > 0 {
		ret.MaxSearchIterations = s.MaxSearchIterations
	}
	return ret
}

// BuildDigest 影响构建结果的参数摘要 查询参数不参与 用于判断缓存的构建结果是否可用
func (s *NavMeshBuildSettings) BuildDigest() string {
	s = s.WithDefaults()
	return fmt.Sprintf("v%d:s%d:n%g", s.VertexPrecision, s.StoragePrecision, s.NeighbourMaxDistSq)
}
