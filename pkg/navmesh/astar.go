package navmesh

import (
	"navzone/pkg/alg"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
)

// 单次搜索的临时状态 不写回共享的节点 同一区域可以并发搜索
type searchNode struct {
	node    *Node
	g       float64
	h       float64
	f       float64
	cost    float64
	visited bool
	closed  bool
	hasH    bool
	parent  *searchNode
}

// heuristic 重心距离的平方
// 边代价恒为1时仍能得到按跳数最优的路径 边代价不再统一时需要换成真实距离
func heuristic(pos1 mgl64.Vec3, pos2 mgl64.Vec3) float64 {
	return pos1.Sub(pos2).LenSqr()
}

type pathSearch struct {
	graph         []*Node
	heuristic     func(mgl64.Vec3, mgl64.Vec3) float64
	maxIterations int
}

func newPathSearch(graph []*Node, maxIterations int) *pathSearch {
	return &pathSearch{
		graph:         graph,
		heuristic:     heuristic,
		maxIterations: maxIterations,
	}
}

// search 返回从start到end经过的节点 包含起点和终点 找不到时返回空
func (s *pathSearch) search(start *Node, end *Node) []*Node {
	states := make([]searchNode, len(s.graph))
	for i, node := range s.graph {
		states[i] = searchNode{node: node, cost: 1.0}
	}
	openHeap := alg.NewHeap[*searchNode](func(n *searchNode) float64 { return n.f })
	openHeap.Push(&states[start.Id])
	iterations := 0
	for {
		currentNode, ok := openHeap.Pop()
		if !ok {
			break
		}
		iterations++
		if s.maxIterations > 0 && iterations > s.maxIterations {
			logger.Warn("astar search reach max iterations: %v, start: %v, end: %v", s.maxIterations, start.Id, end.Id)
			return []*Node{}
		}
		if currentNode.node == end {
			ret := make([]*Node, 0)
			for curr := currentNode; curr != nil; curr = curr.parent {
				ret = append(ret, curr.node)
			}
			for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
				ret[i], ret[j] = ret[j], ret[i]
			}
			return ret
		}
		currentNode.closed = true
		for _, neighbourId := range currentNode.node.Neighbours {
			neighbour := &states[neighbourId]
			if neighbour.closed {
				continue
			}
			gScore := currentNode.g + neighbour.cost
			beenVisited := neighbour.visited
			if !beenVisited || gScore < neighbour.g {
				neighbour.visited = true
				neighbour.parent = currentNode
				if !neighbour.hasH {
					neighbour.h = s.heuristic(neighbour.node.Centroid, end.Centroid)
					neighbour.hasH = true
				}
				neighbour.g = gScore
				neighbour.f = neighbour.g + neighbour.h
				if !beenVisited {
					openHeap.Push(neighbour)
				} else {
					openHeap.Update(neighbour)
				}
			}
		}
	}
	return []*Node{}
}
