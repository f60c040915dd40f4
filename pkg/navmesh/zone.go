package navmesh

import (
	"errors"
	"fmt"

	"navzone/pkg/navmesh/format"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrZoneNotFound = errors.New("zone not found")

// Node 区域内的三角形节点 Id和Neighbours都是所在区域数组的下标
// Portals与Neighbours一一对应 每个公共边为0个或2个全局顶点下标
type Node struct {
	Id         int        `msgpack:"id" json:"id"`
	Neighbours []int      `msgpack:"neighbours" json:"neighbours"`
	VertexIds  [3]int     `msgpack:"vertex_ids" json:"vertex_ids"`
	Centroid   mgl64.Vec3 `msgpack:"centroid" json:"centroid"`
	Portals    [][]int    `msgpack:"portals" json:"portals"`
}

// PortalTo 到相邻节点的公共边 不相邻时ok为false
func (n *Node) PortalTo(neighbourId int) (portal []int, ok bool) {
	for i, id := range n.Neighbours {
		if id == neighbourId {
			return n.Portals[i], true
		}
	}
	return nil, false
}

// Zone 构建完成的寻路区域 构建后只读
type Zone struct {
	Vertices []mgl64.Vec3 `msgpack:"vertices" json:"vertices"`
	Groups   [][]*Node    `msgpack:"groups" json:"groups"`
}

func (z *Zone) GetGroupNodes(groupId int) []*Node {
	if groupId < 0 || groupId >= len(z.Groups) {
		return nil
	}
	return z.Groups[groupId]
}

func (z *Zone) TriangleCount() int {
	count := 0
	for _, group := range z.Groups {
		count += len(group)
	}
	return count
}

// BuildZone 由顶点和三角形索引构建寻路区域
func BuildZone(vertices []mgl64.Vec3, faces [][3]int, settings *NavMeshBuildSettings) *Zone {
	settings = settings.WithDefaults()
	vertexList := make([]mgl64.Vec3, len(vertices))
	copy(vertexList, vertices)
	faceList := make([]*face, 0, len(faces))
	for _, f := range faces {
		faceList = append(faceList, &face{a: f[0], b: f[1], c: f[2]})
	}
	computeCentroids(vertexList, faceList)
	faceCount := len(faceList)
	vertexList, faceList, diff := mergeVertices(vertexList, faceList, settings.VertexPrecision)
	logger.Debug("merge vertices, merged: %v, dropped faces: %v", diff, faceCount-len(faceList))
	mesh := buildTriangleMesh(vertexList, faceList, settings.NeighbourMaxDistSq)
	zone := groupTriangleMesh(mesh, settings.StoragePrecision)
	logger.Info("build zone ok, vertex: %v, triangle: %v, group: %v", len(zone.Vertices), zone.TriangleCount(), len(zone.Groups))
	return zone
}

// BuildZoneFromMesh 由导出的网格数据构建寻路区域
func BuildZoneFromMesh(meshData *format.MeshData, settings *NavMeshBuildSettings) (*Zone, error) {
	err := meshData.Validate()
	if err != nil {
		return nil, err
	}
	vertices := make([]mgl64.Vec3, 0, meshData.VertexCount())
	for i := 0; i < meshData.VertexCount(); i++ {
		x, y, z := meshData.Vertex(i)
		vertices = append(vertices, mgl64.Vec3{x, y, z})
	}
	faces := make([][3]int, 0, meshData.FaceCount())
	for i := 0; i < meshData.FaceCount(); i++ {
		a, b, c := meshData.Face(i)
		faces = append(faces, [3]int{a, b, c})
	}
	return BuildZone(vertices, faces, settings), nil
}

func EncodeZone(zone *Zone) ([]byte, error) {
	data, err := msgpack.Marshal(zone)
	if err != nil {
		return nil, fmt.Errorf("encode zone: %w", err)
	}
	return data, nil
}

func DecodeZone(data []byte) (*Zone, error) {
	zone := new(Zone)
	err := msgpack.Unmarshal(data, zone)
	if err != nil {
		return nil, fmt.Errorf("decode zone: %w", err)
	}
	err = zone.validate()
	if err != nil {
		return nil, fmt.Errorf("decode zone: %w", err)
	}
	return zone, nil
}

// validate 检查下标是否越界 查询时不再做检查
func (z *Zone) validate() error {
	vertexCount := len(z.Vertices)
	for groupId, group := range z.Groups {
		for i, node := range group {
			if node == nil || node.Id != i || len(node.Neighbours) != len(node.Portals) {
				return fmt.Errorf("malformed node %v in group %v", i, groupId)
			}
			for _, vId := range node.VertexIds {
				if vId < 0 || vId >= vertexCount {
					return fmt.Errorf("vertex %v out of range in node %v group %v", vId, i, groupId)
				}
			}
			for j, neighbourId := range node.Neighbours {
				if neighbourId < 0 || neighbourId >= len(group) {
					return fmt.Errorf("neighbour %v out of range in node %v group %v", neighbourId, i, groupId)
				}
				portal := node.Portals[j]
				if len(portal) != 0 && len(portal) != 2 {
					return fmt.Errorf("portal of %v vertices in node %v group %v", len(portal), i, groupId)
				}
				for _, vId := range portal {
					if vId < 0 || vId >= vertexCount {
						return fmt.Errorf("portal vertex %v out of range in node %v group %v", vId, i, groupId)
					}
				}
			}
		}
	}
	return nil
}
