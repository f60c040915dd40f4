package navmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// rectMesh 2x1的矩形 沿对角线分成两个三角形
func rectMesh() ([]mgl64.Vec3, [][3]int) {
	vertices := []mgl64.Vec3{
		{0, 0, 0},
		{2, 0, 0},
		{2, 0, 1},
		{0, 0, 1},
	}
	faces := [][3]int{
		{0, 2, 1},
		{0, 3, 2},
	}
	return vertices, faces
}

// gridMesh w*h的单位格网格 每格两个三角形 blocked中的格子不生成三角形
func gridMesh(w, h int, blocked map[[2]int]bool) ([]mgl64.Vec3, [][3]int) {
	vertices := make([]mgl64.Vec3, 0, (w+1)*(h+1))
	for z := 0; z <= h; z++ {
		for x := 0; x <= w; x++ {
			vertices = append(vertices, mgl64.Vec3{float64(x), 0, float64(z)})
		}
	}
	index := func(x, z int) int { return z*(w+1) + x }
	faces := make([][3]int, 0, w*h*2)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			if blocked[[2]int{x, z}] {
				continue
			}
			p00, p10, p11, p01 := index(x, z), index(x+1, z), index(x+1, z+1), index(x, z+1)
			faces = append(faces, [3]int{p00, p11, p10}, [3]int{p00, p01, p11})
		}
	}
	return vertices, faces
}

func buildTestTriangleMesh(vertices []mgl64.Vec3, faces [][3]int) *TriangleMesh {
	faceList := make([]*face, 0, len(faces))
	for _, f := range faces {
		faceList = append(faceList, &face{a: f[0], b: f[1], c: f[2]})
	}
	computeCentroids(vertices, faceList)
	vertices, faceList, _ = mergeVertices(vertices, faceList, kDefaultVertexPrecision)
	return buildTriangleMesh(vertices, faceList, kDefaultNeighbourMaxDistSq)
}

func TestMergeVertices(t *testing.T) {
	vertices := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0.00001, 0, 0}, // 与0号顶点量化后相同
		{1, 0, 1},
		{0, 0, 1},
	}
	faces := [][3]int{
		{0, 1, 3},
		{2, 3, 4},
		{0, 2, 1}, // 合并后退化
	}
	unique, kept, diff := MergeVertices(vertices, faces, 4)
	if diff != 1 || len(unique) != 4 {
		t.Fatalf("want 1 merged vertex and 4 unique, got %v and %v", diff, len(unique))
	}
	if len(kept) != 2 {
		t.Fatalf("degenerate face should be dropped, got %v faces", len(kept))
	}
	if kept[1] != [3]int{0, 2, 3} {
		t.Fatalf("face should be remapped to merged indices, got %v", kept[1])
	}
	if unique[0] != vertices[0] {
		t.Fatalf("first seen vertex should be representative, got %v", unique[0])
	}
}

func TestMergeVerticesIdempotent(t *testing.T) {
	vertices, faces := gridMesh(4, 3, nil)
	vertices = append(vertices, mgl64.Vec3{1.00002, 0, 2})
	faces = append(faces, [3]int{len(vertices) - 1, 0, 1})
	unique, kept, diff := MergeVertices(vertices, faces, 4)
	if diff != 1 {
		t.Fatalf("want 1 merged vertex, got %v", diff)
	}
	again, keptAgain, diffAgain := MergeVertices(unique, kept, 4)
	if diffAgain != 0 || len(again) != len(unique) || len(keptAgain) != len(kept) {
		t.Fatalf("second merge should change nothing, diff: %v", diffAgain)
	}
}

func TestCentroidComputedBeforeMerge(t *testing.T) {
	vertices := []mgl64.Vec3{
		{0, 0, 0},
		{3, 0, 0},
		{0, 0, 3},
		{0.00004, 0, 3}, // 与2号顶点合并
	}
	faceList := []*face{{a: 0, b: 3, c: 1}}
	computeCentroids(vertices, faceList)
	want := vertices[0].Add(vertices[3]).Add(vertices[1]).Mul(1.0 / 3.0)
	unique, faceList, _ := mergeVertices(vertices, faceList, 4)
	if len(unique) != 3 || faceList[0].b != 2 {
		t.Fatalf("vertex 3 should merge into vertex 2, face: %+v", faceList[0])
	}
	if faceList[0].centroid != want {
		t.Fatalf("centroid should keep pre merge value %v, got %v", want, faceList[0].centroid)
	}
}

func TestNeighbourSymmetry(t *testing.T) {
	vertices, faces := gridMesh(5, 4, map[[2]int]bool{{2, 1}: true, {2, 2}: true})
	mesh := buildTestTriangleMesh(vertices, faces)
	for i, triangle := range mesh.Triangles {
		for _, j := range triangle.Neighbours {
			if j == i {
				t.Fatalf("triangle %v is its own neighbour", i)
			}
			found := false
			for _, k := range mesh.Triangles[j].Neighbours {
				if k == i {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("triangle %v lists %v but not the reverse", i, j)
			}
		}
	}
	// 角上的三角形只有2个邻居
	if len(mesh.Triangles[0].Neighbours) != 2 {
		t.Fatalf("corner triangle should have 2 neighbours, got %v", mesh.Triangles[0].Neighbours)
	}
}

func TestNeighbourDistanceCulling(t *testing.T) {
	vertices, faces := rectMesh()
	faceList := []*face{{a: faces[0][0], b: faces[0][1], c: faces[0][2]}, {a: faces[1][0], b: faces[1][1], c: faces[1][2]}}
	computeCentroids(vertices, faceList)
	mesh := buildTriangleMesh(vertices, faceList, 0.01)
	if len(mesh.Triangles[0].Neighbours) != 0 {
		t.Fatalf("neighbours beyond the distance bound should be skipped")
	}
	mesh = buildTriangleMesh(vertices, faceList, kDefaultNeighbourMaxDistSq)
	if len(mesh.Triangles[0].Neighbours) != 1 || mesh.Triangles[0].Id != 1 || mesh.Triangles[1].Id != 2 {
		t.Fatalf("rect triangles should be neighbours with ids starting at 1")
	}
}

func TestFaceNormal(t *testing.T) {
	vertices, faces := rectMesh()
	mesh := buildTestTriangleMesh(vertices, faces)
	for _, triangle := range mesh.Triangles {
		if !triangle.Normal.ApproxEqual(mgl64.Vec3{0, 1, 0}) {
			t.Fatalf("clockwise xz triangle should face up, got %v", triangle.Normal)
		}
	}
}
