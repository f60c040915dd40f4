package navmesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PathWalker 沿路径点匀速移动
type PathWalker struct {
	path     []mgl64.Vec3
	index    int     // 当前所在线段起点下标
	progress float64 // 当前线段上已走过的距离
	speed    float64
}

// NewPathWalker path需包含起点
func NewPathWalker(path []mgl64.Vec3, speed float64) *PathWalker {
	return &PathWalker{
		path:  path,
		speed: speed,
	}
}

func (w *PathWalker) Done() bool {
	return len(w.path) == 0 || w.index >= len(w.path)-1
}

func (w *PathWalker) Position() mgl64.Vec3 {
	if len(w.path) == 0 {
		return mgl64.Vec3{}
	}
	if w.Done() {
		return w.path[len(w.path)-1]
	}
	p0 := w.path[w.index]
	p1 := w.path[w.index+1]
	dir := p1.Sub(p0)
	length := dir.Len()
	if length == 0 {
		return p0
	}
	return p0.Add(dir.Mul(w.progress / length))
}

// SteeringTarget 当前正在前往的路径点
func (w *PathWalker) SteeringTarget() mgl64.Vec3 {
	if len(w.path) == 0 {
		return mgl64.Vec3{}
	}
	if w.Done() {
		return w.path[len(w.path)-1]
	}
	return w.path[w.index+1]
}

// Advance 前进dt时间 返回新位置和是否到达终点
func (w *PathWalker) Advance(dt float64) (mgl64.Vec3, bool) {
	remain := w.speed * dt
	for !w.Done() && remain > 0 {
		length := w.path[w.index+1].Sub(w.path[w.index]).Len()
		if w.progress+remain < length {
			w.progress += remain
			remain = 0
			break
		}
		remain -= length - w.progress
		w.progress = 0
		w.index++
	}
	return w.Position(), w.Done()
}

func (w *PathWalker) RemainingDistance() float64 {
	if w.Done() {
		return 0
	}
	total := w.path[w.index+1].Sub(w.path[w.index]).Len() - w.progress
	for i := w.index + 1; i+1 < len(w.path); i++ {
		total += w.path[i+1].Sub(w.path[i]).Len()
	}
	return total
}
