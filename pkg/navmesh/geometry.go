package navmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// isPointInPoly 奇偶规则判断点是否在多边形内 只看水平面xz
func isPointInPoly(poly []mgl64.Vec3, pt mgl64.Vec3) bool {
	c := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if ((pi.Z() <= pt.Z() && pt.Z() < pj.Z()) || (pj.Z() <= pt.Z() && pt.Z() < pi.Z())) &&
			pt.X() < (pj.X()-pi.X())*(pt.Z()-pi.Z())/(pj.Z()-pi.Z())+pi.X() {
			c = !c
		}
	}
	return c
}

// isVectorInNode 点是否在三角形内 竖直方向允许一定容差
func isVectorInNode(vector mgl64.Vec3, node *Node, vertices []mgl64.Vec3, verticalTolerance float64) bool {
	lowestPoint := math.Inf(1)
	highestPoint := math.Inf(-1)
	polygonVertices := make([]mgl64.Vec3, 0, len(node.VertexIds))
	for _, vId := range node.VertexIds {
		v := vertices[vId]
		lowestPoint = math.Min(v.Y(), lowestPoint)
		highestPoint = math.Max(v.Y(), highestPoint)
		polygonVertices = append(polygonVertices, v)
	}
	if vector.Y() < highestPoint+verticalTolerance && vector.Y() > lowestPoint-verticalTolerance && isPointInPoly(polygonVertices, vector) {
		return true
	}
	return false
}
