package navmesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Portal 通道上的一条边 Left/Right相对行进方向
type Portal struct {
	Left  mgl64.Vec3
	Right mgl64.Vec3
}

// Channel 漏斗算法的输入通道 每次寻路创建一个 只消费一次
type Channel struct {
	portals []Portal
	path    []mgl64.Vec3
}

func NewChannel() *Channel {
	return &Channel{
		portals: make([]Portal, 0),
	}
}

// PushPoint 左右重合的退化边 用于起点和终点
func (c *Channel) PushPoint(p mgl64.Vec3) {
	c.portals = append(c.portals, Portal{Left: p, Right: p})
}

func (c *Channel) Push(left mgl64.Vec3, right mgl64.Vec3) {
	c.portals = append(c.portals, Portal{Left: left, Right: right})
}

func (c *Channel) Portals() []Portal {
	return c.portals
}

func (c *Channel) Path() []mgl64.Vec3 {
	return c.path
}

// triarea2 三角形abc在xz平面上的有向面积的两倍
func triarea2(a, b, c mgl64.Vec3) float64 {
	ax := b.X() - a.X()
	az := b.Z() - a.Z()
	bx := c.X() - a.X()
	bz := c.Z() - a.Z()
	return bx*az - ax*bz
}

func vequal(a, b mgl64.Vec3) bool {
	return a.Sub(b).LenSqr() < 0.00001
}

// StringPull 拉绳算法 返回包含起点的最短折线
func (c *Channel) StringPull() []mgl64.Vec3 {
	portals := c.portals
	if len(portals) == 0 {
		c.path = nil
		return nil
	}
	pts := make([]mgl64.Vec3, 0)
	apexIndex, leftIndex, rightIndex := 0, 0, 0
	portalApex := portals[0].Left
	portalLeft := portals[0].Left
	portalRight := portals[0].Right

	pts = append(pts, portalApex)

	for i := 1; i < len(portals); i++ {
		left := portals[i].Left
		right := portals[i].Right

		// 更新右边界
		if triarea2(portalApex, portalRight, right) <= 0.0 {
			if vequal(portalApex, portalRight) || triarea2(portalApex, portalLeft, right) > 0.0 {
				// 收紧漏斗
				portalRight = right
				rightIndex = i
			} else {
				// 右边界越过左边界 左边界点成为拐点 从该点重新扫描
				pts = append(pts, portalLeft)
				portalApex = portalLeft
				apexIndex = leftIndex
				portalLeft = portalApex
				portalRight = portalApex
				leftIndex = apexIndex
				rightIndex = apexIndex
				i = apexIndex
				continue
			}
		}

		// 更新左边界
		if triarea2(portalApex, portalLeft, left) >= 0.0 {
			if vequal(portalApex, portalLeft) || triarea2(portalApex, portalRight, left) < 0.0 {
				portalLeft = left
				leftIndex = i
			} else {
				pts = append(pts, portalRight)
				portalApex = portalRight
				apexIndex = rightIndex
				portalLeft = portalApex
				portalRight = portalApex
				leftIndex = apexIndex
				rightIndex = apexIndex
				i = apexIndex
				continue
			}
		}
	}

	last := portals[len(portals)-1].Left
	if len(pts) == 0 || !vequal(pts[len(pts)-1], last) {
		pts = append(pts, last)
	}
	c.path = pts
	return pts
}
