package navmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 原始面数据 重心在顶点合并前计算
type face struct {
	a, b, c  int
	centroid mgl64.Vec3
}

// Triangle 构建阶段的三角形节点 Neighbours存放Triangles数组下标
type Triangle struct {
	Id         int
	VertexIds  [3]int
	Centroid   mgl64.Vec3
	Normal     mgl64.Vec3
	Neighbours []int
	Group      int
}

// TriangleMesh 顶点合并后的三角形图
type TriangleMesh struct {
	Vertices  []mgl64.Vec3
	Triangles []*Triangle
}

type vertexKey [3]int64

func quantize(v mgl64.Vec3, precision float64) vertexKey {
	return vertexKey{
		int64(math.Round(v.X() * precision)),
		int64(math.Round(v.Y() * precision)),
		int64(math.Round(v.Z() * precision)),
	}
}

func computeCentroids(vertices []mgl64.Vec3, faceList []*face) {
	for _, f := range faceList {
		f.centroid = vertices[f.a].Add(vertices[f.b]).Add(vertices[f.c]).Mul(1.0 / 3.0)
	}
}

// MergeVertices 合并量化后坐标相同的顶点 先出现的顶点保留
// 返回去重后的顶点 重映射后的面索引(退化面已移除) 以及被合并掉的顶点数
func MergeVertices(vertices []mgl64.Vec3, faces [][3]int, precisionPoints int) ([]mgl64.Vec3, [][3]int, int) {
	faceList := make([]*face, 0, len(faces))
	for _, f := range faces {
		faceList = append(faceList, &face{a: f[0], b: f[1], c: f[2]})
	}
	unique, faceList, diff := mergeVertices(vertices, faceList, precisionPoints)
	ret := make([][3]int, 0, len(faceList))
	for _, f := range faceList {
		ret = append(ret, [3]int{f.a, f.b, f.c})
	}
	return unique, ret, diff
}

func mergeVertices(vertices []mgl64.Vec3, faceList []*face, precisionPoints int) ([]mgl64.Vec3, []*face, int) {
	precision := math.Pow(10, float64(precisionPoints))
	verticesMap := make(map[vertexKey]int, len(vertices))
	unique := make([]mgl64.Vec3, 0, len(vertices))
	changes := make([]int, len(vertices))
	for i, v := range vertices {
		key := quantize(v, precision)
		first, exist := verticesMap[key]
		if !exist {
			verticesMap[key] = i
			unique = append(unique, v)
			changes[i] = len(unique) - 1
		} else {
			changes[i] = changes[first]
		}
	}
	kept := make([]*face, 0, len(faceList))
	for _, f := range faceList {
		f.a = changes[f.a]
		f.b = changes[f.b]
		f.c = changes[f.c]
		// 合并后有重复顶点的退化面直接丢弃
		if f.a == f.b || f.b == f.c || f.c == f.a {
			continue
		}
		kept = append(kept, f)
	}
	return unique, kept, len(vertices) - len(unique)
}

func faceNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

func sharedVertexCount(a, b [3]int) int {
	count := 0
	for _, va := range a {
		for _, vb := range b {
			if va == vb {
				count++
				break
			}
		}
	}
	return count
}

// buildTriangleMesh 生成三角形节点并建立相邻关系
// 两个三角形共享至少两个顶点即相邻 重心距离过远的直接跳过
func buildTriangleMesh(vertices []mgl64.Vec3, faceList []*face, neighbourMaxDistSq float64) *TriangleMesh {
	mesh := &TriangleMesh{
		Vertices:  vertices,
		Triangles: make([]*Triangle, 0, len(faceList)),
	}
	for i, f := range faceList {
		mesh.Triangles = append(mesh.Triangles, &Triangle{
			Id:         i + 1,
			VertexIds:  [3]int{f.a, f.b, f.c},
			Centroid:   f.centroid,
			Normal:     faceNormal(vertices[f.a], vertices[f.b], vertices[f.c]),
			Neighbours: make([]int, 0, 3),
			Group:      groupUndefined,
		})
	}
	triangles := mesh.Triangles
	for i := 0; i < len(triangles); i++ {
		for j := i + 1; j < len(triangles); j++ {
			if triangles[i].Centroid.Sub(triangles[j].Centroid).LenSqr() > neighbourMaxDistSq {
				continue
			}
			if sharedVertexCount(triangles[i].VertexIds, triangles[j].VertexIds) >= 2 {
				triangles[i].Neighbours = append(triangles[i].Neighbours, j)
				triangles[j].Neighbours = append(triangles[j].Neighbours, i)
			}
		}
	}
	return mesh
}
