package navmesh

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// GetGroup 重心离position最近的三角形所在区域 超出maxDistSq时ok为false
func (z *Zone) GetGroup(position mgl64.Vec3, maxDistSq float64) (groupId int, ok bool) {
	distance := maxDistSq
	groupId = -1
	for i, group := range z.Groups {
		for _, node := range group {
			measuredDistance := node.Centroid.Sub(position).LenSqr()
			if measuredDistance < distance {
				groupId = i
				distance = measuredDistance
			}
		}
	}
	return groupId, groupId != -1
}

// GetRandomPoint 区域内随机一个三角形的重心 nearPosition不为空时只在nearRange范围内选取
func (z *Zone) GetRandomPoint(groupId int, nearPosition *mgl64.Vec3, nearRange float64) (mgl64.Vec3, bool) {
	nodes := z.GetGroupNodes(groupId)
	candidates := make([]mgl64.Vec3, 0, len(nodes))
	for _, node := range nodes {
		if nearPosition != nil && nearRange > 0 {
			if nearPosition.Sub(node.Centroid).LenSqr() < nearRange*nearRange {
				candidates = append(candidates, node.Centroid)
			}
		} else {
			candidates = append(candidates, node.Centroid)
		}
	}
	if len(candidates) == 0 {
		return mgl64.Vec3{}, false
	}
	return candidates[rand.Intn(len(candidates))], true
}

func closestNode(nodes []*Node, position mgl64.Vec3, maxDistSq float64, accept func(*Node) bool) *Node {
	var ret *Node = nil
	distance := maxDistSq
	for _, node := range nodes {
		measuredDistance := node.Centroid.Sub(position).LenSqr()
		if measuredDistance < distance && (accept == nil || accept(node)) {
			ret = node
			distance = measuredDistance
		}
	}
	return ret
}

// FindCorridor 起点取重心最近的三角形 终点必须落在三角形内 返回经过的三角形序列
func (z *Zone) FindCorridor(startPosition mgl64.Vec3, targetPosition mgl64.Vec3, groupId int, settings *NavMeshBuildSettings) []*Node {
	settings = settings.WithDefaults()
	allNodes := z.GetGroupNodes(groupId)
	if len(allNodes) == 0 {
		return nil
	}
	startNode := closestNode(allNodes, startPosition, settings.NearestMaxDistSq, nil)
	endNode := closestNode(allNodes, targetPosition, settings.NearestMaxDistSq, func(node *Node) bool {
		return isVectorInNode(targetPosition, node, z.Vertices, settings.VerticalTolerance)
	})
	if startNode == nil || endNode == nil {
		return nil
	}
	return newPathSearch(allNodes, settings.MaxSearchIterations).search(startNode, endNode)
}

// BuildChannel 由三角形序列生成漏斗通道 两端为起点和终点
func (z *Zone) BuildChannel(startPosition mgl64.Vec3, targetPosition mgl64.Vec3, corridor []*Node) *Channel {
	channel := NewChannel()
	channel.PushPoint(startPosition)
	for i := 0; i+1 < len(corridor); i++ {
		polygon := corridor[i]
		nextPolygon := corridor[i+1]
		portal, ok := polygon.PortalTo(nextPolygon.Id)
		if !ok {
			panic(fmt.Sprintf("corridor node %v is not adjacent to %v", polygon.Id, nextPolygon.Id))
		}
		if len(portal) != 2 {
			continue
		}
		channel.Push(z.Vertices[portal[0]], z.Vertices[portal[1]])
	}
	channel.PushPoint(targetPosition)
	return channel
}

// FindPath 返回拉直后的路径点 不含起点 无路径时ok为false
func (z *Zone) FindPath(startPosition mgl64.Vec3, targetPosition mgl64.Vec3, groupId int, settings *NavMeshBuildSettings) ([]mgl64.Vec3, bool) {
	corridor := z.FindCorridor(startPosition, targetPosition, groupId, settings)
	if len(corridor) == 0 {
		return nil, false
	}
	channel := z.BuildChannel(startPosition, targetPosition, corridor)
	path := channel.StringPull()
	// 调用方已知起点 去掉第一个点
	return path[1:], true
}
