package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cfg "navzone/common/config"
	"navzone/navserver/app"
	"navzone/navserver/handle"
	"navzone/pkg/navmesh"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
)

// parseVec3 解析 x,y,z
func parseVec3(s string) (mgl64.Vec3, error) {
	split := strings.Split(s, ",")
	if len(split) != 3 {
		return mgl64.Vec3{}, errors.New("position format is x,y,z")
	}
	var ret mgl64.Vec3
	for i, item := range split {
		value, err := strconv.ParseFloat(strings.TrimSpace(item), 64)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		ret[i] = value
	}
	return ret, nil
}

// PathCmd 离线查询一条路径 speed大于0时按tick输出移动轨迹
func PathCmd() *cobra.Command {
	var configFile string
	var from, to string
	var groupId int
	var speed, tick float64
	c := &cobra.Command{
		Use:   "path <mesh file>",
		Short: "find a path on a mesh file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOptionalConfig(configFile)
			app.InitLogger("navzone_path")
			defer logger.CloseLogger()
			start, err := parseVec3(from)
			if err != nil {
				return err
			}
			end, err := parseVec3(to)
			if err != nil {
				return err
			}
			zoneManager := navmesh.NewZoneManager(handle.NewNavMeshBuildSettings(&cfg.GetConfig().NavMesh))
			h := handle.NewHandle(nil, zoneManager)
			zoneName, _, err := h.LoadZoneFile(args[0])
			if err != nil {
				return err
			}
			if groupId < 0 {
				var ok bool
				groupId, ok = zoneManager.GetGroup(zoneName, start)
				if !ok {
					return fmt.Errorf("start position %v is not near zone %v", start, zoneName)
				}
			}
			corners, ok := h.NavMeshPathfinding(zoneName, groupId, start, end)
			if !ok {
				return errors.New("no path")
			}
			out := cmd.OutOrStdout()
			for _, corner := range corners {
				_, _ = fmt.Fprintf(out, "%.2f,%.2f,%.2f\n", corner.X(), corner.Y(), corner.Z())
			}
			if speed <= 0 || tick <= 0 {
				return nil
			}
			walker := navmesh.NewPathWalker(append([]mgl64.Vec3{start}, corners...), speed)
			_, _ = fmt.Fprintf(out, "trajectory, distance: %.2f\n", walker.RemainingDistance())
			for i := 1; !walker.Done(); i++ {
				pos, _ := walker.Advance(tick)
				_, _ = fmt.Fprintf(out, "%.2fs %.2f,%.2f,%.2f\n", float64(i)*tick, pos.X(), pos.Y(), pos.Z())
			}
			return nil
		},
	}
	c.Flags().StringVar(&configFile, "config", "application.toml", "config file")
	c.Flags().StringVar(&from, "from", "", "start position x,y,z")
	c.Flags().StringVar(&to, "to", "", "target position x,y,z")
	c.Flags().IntVar(&groupId, "group", -1, "group id, negative to use the group of the start position")
	c.Flags().Float64Var(&speed, "speed", 0, "walk speed, print a sampled trajectory when positive")
	c.Flags().Float64Var(&tick, "tick", 0.1, "trajectory sample interval in seconds")
	return c
}
