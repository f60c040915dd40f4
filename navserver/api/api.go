package api

import (
	"github.com/go-gl/mathgl/mgl64"
)

// nats主题 实际主题为 <prefix>.<subject>
const (
	SubjectQueryPath   = "query_path"
	SubjectGetGroup    = "get_group"
	SubjectRandomPoint = "random_point"
)

const (
	StatusSucc int32 = 0
	StatusFail int32 = 1
)

type Vector struct {
	X float64 `msgpack:"x" json:"x"`
	Y float64 `msgpack:"y" json:"y"`
	Z float64 `msgpack:"z" json:"z"`
}

func (v *Vector) ToVec3() mgl64.Vec3 {
	if v == nil {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func NewVector(v mgl64.Vec3) *Vector {
	return &Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func NewVectorList(vList []mgl64.Vec3) []*Vector {
	ret := make([]*Vector, 0, len(vList))
	for _, v := range vList {
		ret = append(ret, NewVector(v))
	}
	return ret
}

// QueryPathReq 按顺序尝试每个目标点 返回第一个可达的路径
type QueryPathReq struct {
	QueryId        int32     `msgpack:"query_id" json:"query_id"`
	ZoneName       string    `msgpack:"zone_name" json:"zone_name"`
	GroupId        int32     `msgpack:"group_id" json:"group_id"`
	SourcePos      *Vector   `msgpack:"source_pos" json:"source_pos"`
	DestinationPos []*Vector `msgpack:"destination_pos" json:"destination_pos"`
}

type QueryPathRsp struct {
	QueryId     int32     `msgpack:"query_id" json:"query_id"`
	QueryStatus int32     `msgpack:"query_status" json:"query_status"`
	Corners     []*Vector `msgpack:"corners" json:"corners"`
}

type GetGroupReq struct {
	ZoneName string  `msgpack:"zone_name" json:"zone_name"`
	Pos      *Vector `msgpack:"pos" json:"pos"`
}

type GetGroupRsp struct {
	Status  int32 `msgpack:"status" json:"status"`
	GroupId int32 `msgpack:"group_id" json:"group_id"`
}

type RandomPointReq struct {
	ZoneName  string  `msgpack:"zone_name" json:"zone_name"`
	GroupId   int32   `msgpack:"group_id" json:"group_id"`
	NearPos   *Vector `msgpack:"near_pos" json:"near_pos"` // 为空时在整个区域内随机
	NearRange float64 `msgpack:"near_range" json:"near_range"`
}

type RandomPointRsp struct {
	Status int32   `msgpack:"status" json:"status"`
	Pos    *Vector `msgpack:"pos" json:"pos"`
}

type ZoneInfo struct {
	ZoneName      string `json:"zone_name"`
	VertexCount   int    `json:"vertex_count"`
	TriangleCount int    `json:"triangle_count"`
	GroupCount    int    `json:"group_count"`
}
