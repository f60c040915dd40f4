package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"navzone/common/config"
	"navzone/navserver/controller"
	"navzone/navserver/dao"
	"navzone/navserver/handle"
	"navzone/pkg/navmesh"
	"navzone/pkg/statsviz_serve"

	"github.com/flswld/halo/logger"
)

var APPVERSION string

func InitLogger(appName string) {
	logger.InitLogger(&logger.Config{
		AppName:      appName,
		Level:        logger.ParseLevel(config.GetConfig().Logger.Level),
		TrackLine:    config.GetConfig().Logger.TrackLine,
		TrackThread:  config.GetConfig().Logger.TrackThread,
		EnableFile:   config.GetConfig().Logger.EnableFile,
		DisableColor: config.GetConfig().Logger.DisableColor,
		EnableJson:   config.GetConfig().Logger.EnableJson,
	})
}

func Run(ctx context.Context) error {
	InitLogger("navzone")
	defer func() {
		logger.CloseLogger()
	}()
	logger.Warn("navzone start, version: %v", APPVERSION)
	defer func() {
		logger.Warn("navzone exit")
	}()

	conf := config.GetConfig()
	if conf.Navzone.StatsvizAddr != "" {
		go func() {
			err := statsviz_serve.Serve(conf.Navzone.StatsvizAddr)
			if err != nil {
				logger.Error("statsviz serve error: %v", err)
			}
		}()
	}

	var db *dao.Dao = nil
	if conf.Database.Url != "" {
		var err error
		db, err = dao.NewDao()
		if err != nil {
			return err
		}
		defer db.CloseDao()
	}

	zoneManager := navmesh.NewZoneManager(handle.NewNavMeshBuildSettings(&conf.NavMesh))
	defer zoneManager.Clear()
	h := handle.NewHandle(db, zoneManager)
	err := h.InitZone(conf.Navzone.MeshDir)
	if err != nil {
		return err
	}

	if conf.Navzone.MqEnable {
		err = h.StartMq(conf.MQ.NatsUrl, conf.Navzone.SubjectPrefix)
		if err != nil {
			return err
		}
		defer h.CloseMq()
	}

	if conf.Navzone.HttpAddr != "" {
		http := controller.NewController(h)
		http.Start(conf.Navzone.HttpAddr)
		defer http.Close()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(c)
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-c:
			logger.Warn("get a signal %s", s.String())
			switch s {
			case syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT:
				return nil
			case syscall.SIGHUP:
			default:
				return nil
			}
		}
	}
}
