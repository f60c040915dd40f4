package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"navzone/navserver/handle"

	"github.com/flswld/halo/logger"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	handle *handle.Handle
	engine *gin.Engine
	server *http.Server
}

func NewController(h *handle.Handle) *Controller {
	r := new(Controller)
	r.handle = h
	gin.SetMode(gin.ReleaseMode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.registerRouter()
	return r
}

func (c *Controller) registerRouter() {
	zoneGroup := c.engine.Group("/zone")
	{
		zoneGroup.GET("/list", c.zoneList)
		zoneGroup.POST("/:name/group", c.getGroup)
		zoneGroup.POST("/:name/random", c.randomPoint)
		zoneGroup.POST("/:name/path", c.queryPath)
	}
}

// Handler 供测试直接使用
func (c *Controller) Handler() http.Handler {
	return c.engine
}

// Start 在后台监听 不阻塞
func (c *Controller) Start(addr string) {
	c.server = &http.Server{Addr: addr, Handler: c.engine}
	go func() {
		err := c.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server listen error: %v", err)
		}
	}()
	logger.Info("http server start, addr: %v", addr)
}

func (c *Controller) Close() {
	if c.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	err := c.server.Shutdown(ctx)
	if err != nil {
		logger.Error("http server shutdown error: %v", err)
	}
}
