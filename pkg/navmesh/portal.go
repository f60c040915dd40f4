package navmesh

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

func sharedVertices(aList []int, bList []int) []int {
	shared := make([]int, 0, 3)
	for _, vId := range aList {
		if slices.Contains(bList, vId) {
			shared = append(shared, vId)
		}
	}
	return shared
}

// sharedVerticesInOrder 两个相邻三角形的公共边 顶点顺序沿第一个三角形的环绕方向
// 公共边跨越列表首尾时 将列表左移一位后重新计算 避免把首尾相接的边拆反
func sharedVerticesInOrder(a [3]int, b [3]int) []int {
	aList := a[:]
	bList := b[:]
	shared := sharedVertices(aList, bList)
	if len(shared) < 2 {
		return []int{}
	}
	if slices.Contains(shared, aList[0]) && slices.Contains(shared, aList[len(aList)-1]) {
		aList = []int{aList[1], aList[2], aList[0]}
	}
	if slices.Contains(shared, bList[0]) && slices.Contains(shared, bList[len(bList)-1]) {
		bList = []int{bList[1], bList[2], bList[0]}
	}
	shared = sharedVertices(aList, bList)
	// 完全重合的重复面没有唯一的公共边
	if len(shared) != 2 {
		return []int{}
	}
	return shared
}

func roundNumber(number float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(number*scale) / scale
}

func roundVec3(v mgl64.Vec3, decimals int) mgl64.Vec3 {
	return mgl64.Vec3{
		roundNumber(v.X(), decimals),
		roundNumber(v.Y(), decimals),
		roundNumber(v.Z(), decimals),
	}
}

// groupTriangleMesh 计算公共边并把三角形改写为区域内局部编号的导出节点
func groupTriangleMesh(mesh *TriangleMesh, storagePrecision int) *Zone {
	zone := &Zone{
		Vertices: make([]mgl64.Vec3, 0, len(mesh.Vertices)),
		Groups:   make([][]*Node, 0),
	}
	for _, v := range mesh.Vertices {
		zone.Vertices = append(zone.Vertices, roundVec3(v, storagePrecision))
	}
	groups := buildTriangleGroups(mesh)
	// 三角形数组下标 -> 区域内下标
	localIdMap := make(map[int]int, len(mesh.Triangles))
	for _, group := range groups {
		for j, triangle := range group {
			localIdMap[triangle.Id-1] = j
		}
	}
	for _, group := range groups {
		newGroup := make([]*Node, 0, len(group))
		for j, triangle := range group {
			neighbours := make([]int, 0, len(triangle.Neighbours))
			portals := make([][]int, 0, len(triangle.Neighbours))
			for _, neighbourIndex := range triangle.Neighbours {
				neighbour := mesh.Triangles[neighbourIndex]
				if neighbour.Group != triangle.Group {
					continue
				}
				neighbours = append(neighbours, localIdMap[neighbourIndex])
				portals = append(portals, sharedVerticesInOrder(triangle.VertexIds, neighbour.VertexIds))
			}
			newGroup = append(newGroup, &Node{
				Id:         j,
				Neighbours: neighbours,
				VertexIds:  triangle.VertexIds,
				Centroid:   roundVec3(triangle.Centroid, storagePrecision),
				Portals:    portals,
			})
		}
		zone.Groups = append(zone.Groups, newGroup)
	}
	return zone
}
