package controller

import (
	"net/http"

	"navzone/navserver/api"

	"github.com/flswld/halo/logger"
	"github.com/gin-gonic/gin"
)

type ErrorRsp struct {
	Message string `json:"message"`
}

func (c *Controller) zoneList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.handle.GetZoneInfoList())
}

// bindZoneReq 解析请求体 zone名取自路径 zone不存在时返回404
func (c *Controller) bindZoneReq(ctx *gin.Context, req any) (string, bool) {
	zoneName := ctx.Param("name")
	err := ctx.ShouldBindJSON(req)
	if err != nil {
		logger.Warn("bind req error: %v, path: %v", err, ctx.Request.URL.Path)
		ctx.JSON(http.StatusBadRequest, &ErrorRsp{Message: err.Error()})
		return "", false
	}
	_, err = c.handle.GetZone(zoneName)
	if err != nil {
		ctx.JSON(http.StatusNotFound, &ErrorRsp{Message: err.Error()})
		return "", false
	}
	return zoneName, true
}

func (c *Controller) getGroup(ctx *gin.Context) {
	req := new(api.GetGroupReq)
	zoneName, ok := c.bindZoneReq(ctx, req)
	if !ok {
		return
	}
	req.ZoneName = zoneName
	ctx.JSON(http.StatusOK, c.handle.GetGroup(req))
}

func (c *Controller) randomPoint(ctx *gin.Context) {
	req := new(api.RandomPointReq)
	zoneName, ok := c.bindZoneReq(ctx, req)
	if !ok {
		return
	}
	req.ZoneName = zoneName
	ctx.JSON(http.StatusOK, c.handle.RandomPoint(req))
}

func (c *Controller) queryPath(ctx *gin.Context) {
	req := new(api.QueryPathReq)
	zoneName, ok := c.bindZoneReq(ctx, req)
	if !ok {
		return
	}
	req.ZoneName = zoneName
	if req.SourcePos == nil || len(req.DestinationPos) == 0 {
		ctx.JSON(http.StatusBadRequest, &ErrorRsp{Message: "source_pos and destination_pos are required"})
		return
	}
	ctx.JSON(http.StatusOK, c.handle.QueryPath(req))
}
