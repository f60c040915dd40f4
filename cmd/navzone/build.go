package main

import (
	"fmt"
	"os"

	cfg "navzone/common/config"
	"navzone/navserver/app"
	"navzone/navserver/dao"
	"navzone/navserver/handle"
	"navzone/pkg/navmesh"
	"navzone/pkg/navmesh/format"

	"github.com/flswld/halo/logger"
	"github.com/spf13/cobra"
)

// initOptionalConfig 配置文件不存在时使用空配置 各项参数取默认值
func initOptionalConfig(configFile string) {
	_, err := os.Stat(configFile)
	if err == nil {
		cfg.InitConfig(configFile)
		return
	}
	cfg.CONF = new(cfg.Config)
}

// BuildCmd 构建单个网格文件 配置了数据库时写入缓存
func BuildCmd() *cobra.Command {
	var configFile string
	var zoneName string
	var outFile string
	c := &cobra.Command{
		Use:   "build <mesh file>",
		Short: "build a zone from a mesh file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOptionalConfig(configFile)
			app.InitLogger("navzone_build")
			defer logger.CloseLogger()
			var db *dao.Dao = nil
			if cfg.GetConfig().Database.Url != "" {
				var err error
				db, err = dao.NewDao()
				if err != nil {
					return err
				}
				defer db.CloseDao()
			}
			if zoneName == "" {
				zoneName = format.ZoneName(args[0])
			}
			h := handle.NewHandle(db, navmesh.NewZoneManager(handle.NewNavMeshBuildSettings(&cfg.GetConfig().NavMesh)))
			_, cached, err := h.LoadZoneFileAs(args[0], zoneName)
			if err != nil {
				return err
			}
			zone, err := h.GetZone(zoneName)
			if err != nil {
				return err
			}
			if outFile != "" {
				data, err := navmesh.EncodeZone(zone)
				if err != nil {
					return err
				}
				err = os.WriteFile(outFile, data, 0644)
				if err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "zone: %v, vertex: %v, triangle: %v, group: %v, cached: %v\n",
				zoneName, len(zone.Vertices), zone.TriangleCount(), len(zone.Groups), cached)
			return nil
		},
	}
	c.Flags().StringVar(&configFile, "config", "application.toml", "config file")
	c.Flags().StringVar(&zoneName, "zone", "", "zone name, default is the mesh file name")
	c.Flags().StringVar(&outFile, "out", "", "write the msgpack encoded zone to this file")
	return c
}
