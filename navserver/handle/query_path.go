package handle

import (
	"navzone/navserver/api"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
)

// QueryPath 按顺序尝试每个目标点 GroupId小于0时由起点确定所在区域
func (h *Handle) QueryPath(req *api.QueryPathReq) *api.QueryPathRsp {
	logger.Debug("query path req: %+v", req)
	groupId := int(req.GroupId)
	if groupId < 0 {
		var ok bool
		groupId, ok = h.zoneManager.GetGroup(req.ZoneName, req.SourcePos.ToVec3())
		if !ok {
			logger.Error("navmesh source pos not in any group, zoneName: %v, sourcePos: %v", req.ZoneName, req.SourcePos)
			return &api.QueryPathRsp{QueryId: req.QueryId, QueryStatus: api.StatusFail}
		}
	}
	for _, destinationPos := range req.DestinationPos {
		corners, ok := h.NavMeshPathfinding(req.ZoneName, groupId, req.SourcePos.ToVec3(), destinationPos.ToVec3())
		if ok {
			return &api.QueryPathRsp{
				QueryId:     req.QueryId,
				QueryStatus: api.StatusSucc,
				Corners:     api.NewVectorList(corners),
			}
		}
	}
	return &api.QueryPathRsp{
		QueryId:     req.QueryId,
		QueryStatus: api.StatusFail,
	}
}

func (h *Handle) NavMeshPathfinding(zoneName string, groupId int, startPos mgl64.Vec3, endPos mgl64.Vec3) (corners []mgl64.Vec3, ok bool) {
	defer func() {
		if err := recover(); err != nil {
			logger.Error("navmesh pathfinding error, panic: %v, zoneName: %v, startPos: %v, endPos: %v", err, zoneName, startPos, endPos)
			corners, ok = nil, false
		}
	}()
	corners, ok = h.zoneManager.FindPath(startPos, endPos, zoneName, groupId)
	if !ok {
		logger.Error("navmesh could not find path, zoneName: %v, groupId: %v, startPos: %v, endPos: %v", zoneName, groupId, startPos, endPos)
		return nil, false
	}
	return corners, true
}

func (h *Handle) GetGroup(req *api.GetGroupReq) *api.GetGroupRsp {
	groupId, ok := h.zoneManager.GetGroup(req.ZoneName, req.Pos.ToVec3())
	if !ok {
		return &api.GetGroupRsp{Status: api.StatusFail, GroupId: -1}
	}
	return &api.GetGroupRsp{Status: api.StatusSucc, GroupId: int32(groupId)}
}

func (h *Handle) RandomPoint(req *api.RandomPointReq) *api.RandomPointRsp {
	var nearPos *mgl64.Vec3 = nil
	if req.NearPos != nil {
		pos := req.NearPos.ToVec3()
		nearPos = &pos
	}
	pos, ok := h.zoneManager.GetRandomPoint(req.ZoneName, int(req.GroupId), nearPos, req.NearRange)
	if !ok {
		return &api.RandomPointRsp{Status: api.StatusFail}
	}
	return &api.RandomPointRsp{Status: api.StatusSucc, Pos: api.NewVector(pos)}
}

func (h *Handle) GetZoneInfoList() []*api.ZoneInfo {
	zoneNameList := h.zoneManager.GetZoneNameList()
	ret := make([]*api.ZoneInfo, 0, len(zoneNameList))
	for _, zoneName := range zoneNameList {
		zone := h.zoneManager.GetZone(zoneName)
		if zone == nil {
			continue
		}
		ret = append(ret, &api.ZoneInfo{
			ZoneName:      zoneName,
			VertexCount:   len(zone.Vertices),
			TriangleCount: zone.TriangleCount(),
			GroupCount:    len(zone.Groups),
		})
	}
	return ret
}
