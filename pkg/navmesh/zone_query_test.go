package navmesh

import (
	"math"
	"testing"

	"navzone/pkg/navmesh/format"

	"github.com/go-gl/mathgl/mgl64"
)

func pathLength(start mgl64.Vec3, path []mgl64.Vec3) float64 {
	length := 0.0
	prev := start
	for _, p := range path {
		length += p.Sub(prev).Len()
		prev = p
	}
	return length
}

func TestFindPathRect(t *testing.T) {
	vertices, faces := rectMesh()
	zone := BuildZone(vertices, faces, nil)
	start := mgl64.Vec3{1.5, 0, 0.2}
	end := mgl64.Vec3{0.5, 0, 0.8}
	corridor := zone.FindCorridor(start, end, 0, nil)
	if len(corridor) != 2 {
		t.Fatalf("corridor should cross both triangles, got %v", len(corridor))
	}
	portal, ok := corridor[0].PortalTo(corridor[1].Id)
	if !ok || len(portal) != 2 || portal[0] != 0 || portal[1] != 2 {
		t.Fatalf("portal should be the diagonal 0-2, got %v", portal)
	}
	channel := zone.BuildChannel(start, end, corridor)
	if len(channel.StringPull()) != 2 {
		t.Fatalf("visible end should pull to 2 points, got %v", channel.Path())
	}
	path, ok := zone.FindPath(start, end, 0, nil)
	if !ok || len(path) != 1 || path[0] != end {
		t.Fatalf("want [%v], got %v %v", end, path, ok)
	}
}

func TestFindPathSameTriangle(t *testing.T) {
	vertices, faces := rectMesh()
	zone := BuildZone(vertices, faces, nil)
	end := mgl64.Vec3{1.6, 0, 0.3}
	path, ok := zone.FindPath(mgl64.Vec3{1.5, 0, 0.2}, end, 0, nil)
	if !ok || len(path) != 1 || path[0] != end {
		t.Fatalf("want [%v], got %v %v", end, path, ok)
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	// U形通道 中间一列的下两格不可走
	vertices, faces := gridMesh(3, 3, map[[2]int]bool{{1, 0}: true, {1, 1}: true})
	zone := BuildZone(vertices, faces, nil)
	start := mgl64.Vec3{0.4, 0, 0.6}
	end := mgl64.Vec3{2.6, 0, 0.4}
	path, ok := zone.FindPath(start, end, 0, nil)
	if !ok || len(path) == 0 {
		t.Fatalf("path should exist")
	}
	if !path[len(path)-1].ApproxEqual(end) {
		t.Fatalf("path should end at target, got %v", path[len(path)-1])
	}
	want := math.Sqrt(2.32) + 1 + math.Sqrt(2.92)
	if got := pathLength(start, path); math.Abs(got-want) > 1e-6 {
		t.Fatalf("path should be taut around the obstacle, want length %v, got %v, path %v", want, got, path)
	}
}

func TestFindPathDisjointGroups(t *testing.T) {
	vertices, faces := twoRectMesh()
	zone := BuildZone(vertices, faces, nil)
	if len(zone.Groups) != 2 {
		t.Fatalf("want 2 groups, got %v", len(zone.Groups))
	}
	start := mgl64.Vec3{1.5, 0, 0.2}
	end := mgl64.Vec3{10.5, 0, 0.8}
	if _, ok := zone.FindPath(start, end, 0, nil); ok {
		t.Fatalf("target in another group should have no path")
	}
	if _, ok := zone.FindPath(start, end, 5, nil); ok {
		t.Fatalf("unknown group should have no path")
	}
	if _, ok := zone.FindPath(start, mgl64.Vec3{1.5, 3, 0.2}, 0, nil); ok {
		t.Fatalf("target above the vertical tolerance should have no path")
	}
}

func TestBuildChannelNotAdjacent(t *testing.T) {
	vertices, faces := twoRectMesh()
	zone := BuildZone(vertices, faces, nil)
	defer func() {
		if err := recover(); err == nil {
			t.Fatalf("non adjacent corridor should panic")
		}
	}()
	zone.BuildChannel(mgl64.Vec3{}, mgl64.Vec3{}, []*Node{zone.Groups[0][0], zone.Groups[1][0]})
}

func TestGetGroup(t *testing.T) {
	vertices, faces := twoRectMesh()
	zone := BuildZone(vertices, faces, nil)
	groupId, ok := zone.GetGroup(mgl64.Vec3{11, 0, 0.5}, kDefaultNearestMaxDistSq)
	if !ok || groupId != 1 {
		t.Fatalf("want group 1, got %v %v", groupId, ok)
	}
	groupId, ok = zone.GetGroup(mgl64.Vec3{0.5, 0, 0.5}, kDefaultNearestMaxDistSq)
	if !ok || groupId != 0 {
		t.Fatalf("want group 0, got %v %v", groupId, ok)
	}
	if _, ok = zone.GetGroup(mgl64.Vec3{1000, 0, 0}, kDefaultNearestMaxDistSq); ok {
		t.Fatalf("far position should have no group")
	}
}

func TestGetRandomPoint(t *testing.T) {
	vertices, faces := twoRectMesh()
	zone := BuildZone(vertices, faces, nil)
	for i := 0; i < 20; i++ {
		point, ok := zone.GetRandomPoint(1, nil, 0)
		if !ok {
			t.Fatalf("group 1 should give a point")
		}
		if point != zone.Groups[1][0].Centroid && point != zone.Groups[1][1].Centroid {
			t.Fatalf("point %v is not a centroid of group 1", point)
		}
	}
	near := zone.Groups[0][1].Centroid
	point, ok := zone.GetRandomPoint(0, &near, 0.1)
	if !ok || point != near {
		t.Fatalf("near query should pick the close centroid, got %v", point)
	}
	far := mgl64.Vec3{100, 0, 100}
	if _, ok = zone.GetRandomPoint(0, &far, 1); ok {
		t.Fatalf("nothing is near %v", far)
	}
	if _, ok = zone.GetRandomPoint(2, nil, 0); ok {
		t.Fatalf("unknown group should give no point")
	}
}

func TestBuildZoneFromMesh(t *testing.T) {
	meshData := new(format.MeshData)
	vertices, faces := rectMesh()
	for _, v := range vertices {
		meshData.AppendVertex(v.X(), v.Y(), v.Z())
	}
	for _, f := range faces {
		meshData.AppendFace(f[0], f[1], f[2])
	}
	zone, err := BuildZoneFromMesh(meshData, nil)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if len(zone.Groups) != 1 || zone.TriangleCount() != 2 {
		t.Fatalf("want 1 group of 2 triangles, got %v groups", len(zone.Groups))
	}
	meshData.AppendFace(0, 1, 9)
	if _, err = BuildZoneFromMesh(meshData, nil); err == nil {
		t.Fatalf("out of range face should fail")
	}
}
