package handle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"navzone/common/config"
	"navzone/navserver/dao"
	"navzone/pkg/navmesh"
	"navzone/pkg/navmesh/format"

	"github.com/flswld/halo/logger"
	"github.com/nats-io/nats.go"
)

type Handle struct {
	db          *dao.Dao // 为空时不使用缓存 每次启动都重新构建
	zoneManager *navmesh.ZoneManager
	natsConn    *nats.Conn
	subList     []*nats.Subscription
}

func NewHandle(db *dao.Dao, zoneManager *navmesh.ZoneManager) *Handle {
	return &Handle{
		db:          db,
		zoneManager: zoneManager,
		subList:     make([]*nats.Subscription, 0),
	}
}

func (h *Handle) GetZoneManager() *navmesh.ZoneManager {
	return h.zoneManager
}

// NewNavMeshBuildSettings 由配置生成构建参数 未配置的字段取默认值
func NewNavMeshBuildSettings(conf *config.NavMesh) *navmesh.NavMeshBuildSettings {
	if conf == nil {
		return navmesh.NewNavMeshBuildSettings()
	}
	settings := &navmesh.NavMeshBuildSettings{
		VertexPrecision:     conf.VertexPrecision,
		StoragePrecision:    conf.StoragePrecision,
		NeighbourMaxDistSq:  conf.NeighbourMaxDistSq,
		NearestMaxDistSq:    conf.NearestMaxDistSq,
		VerticalTolerance:   conf.VerticalTolerance,
		MaxSearchIterations: conf.MaxSearchIterations,
	}
	return settings.WithDefaults()
}

// InitZone 加载目录下的全部网格文件 单个文件失败只记录日志
func (h *Handle) InitZone(meshDir string) error {
	fileList, err := os.ReadDir(meshDir)
	if err != nil {
		logger.Error("open navmesh dir error: %v", err)
		return err
	}
	fileNameList := make([]string, 0, len(fileList))
	for _, file := range fileList {
		if file.IsDir() {
			continue
		}
		fileNameList = append(fileNameList, file.Name())
	}
	sort.Strings(fileNameList)
	for _, fileName := range fileNameList {
		zoneName, cached, err := h.LoadZoneFile(filepath.Join(meshDir, fileName))
		if err != nil {
			logger.Error("load navmesh file error: %v, fileName: %v", err, fileName)
			continue
		}
		logger.Info("load navmesh file ok, fileName: %v, zoneName: %v, cached: %v", fileName, zoneName, cached)
	}
	runtime.GC()
	return nil
}

// LoadZoneFile 加载单个网格文件并发布到区域管理器 源文件未变化时直接使用数据库中的构建结果
func (h *Handle) LoadZoneFile(filePath string) (zoneName string, cached bool, err error) {
	return h.LoadZoneFileAs(filePath, format.ZoneName(filePath))
}

// LoadZoneFileAs 同LoadZoneFile 使用指定的zone名
func (h *Handle) LoadZoneFileAs(filePath string, zoneName string) (string, bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", false, err
	}
	sum := sha256.Sum256(data)
	sourceHash := hex.EncodeToString(sum[:])
	buildDigest := h.zoneManager.Settings().BuildDigest()
	if h.db != nil {
		zone := h.loadZoneCache(zoneName, sourceHash, buildDigest)
		if zone != nil {
			h.zoneManager.SetZone(zoneName, zone)
			return zoneName, true, nil
		}
	}
	meshData, err := format.Parse(filePath, data)
	if err != nil {
		return "", false, err
	}
	zone, err := navmesh.BuildZoneFromMesh(meshData, h.zoneManager.Settings())
	if err != nil {
		return "", false, err
	}
	h.zoneManager.SetZone(zoneName, zone)
	if h.db != nil {
		h.saveZoneCache(zoneName, sourceHash, buildDigest, zone)
	}
	return zoneName, false, nil
}

// loadZoneCache 源文件和构建参数都未变化时才使用缓存
func (h *Handle) loadZoneCache(zoneName string, sourceHash string, buildDigest string) *navmesh.Zone {
	record, err := h.db.QueryZone(zoneName)
	if err != nil {
		logger.Error("query zone error: %v, zoneName: %v", err, zoneName)
		return nil
	}
	if record == nil || record.SourceHash != sourceHash || record.BuildDigest != buildDigest {
		return nil
	}
	zone, err := navmesh.DecodeZone(record.Data)
	if err != nil {
		logger.Error("decode zone cache error: %v, zoneName: %v", err, zoneName)
		return nil
	}
	return zone
}

// saveZoneCache 抢到锁的进程负责写库 其余进程只使用自己构建的结果
func (h *Handle) saveZoneCache(zoneName string, sourceHash string, buildDigest string, zone *navmesh.Zone) {
	if !h.db.DistLock(zoneName) {
		logger.Warn("zone build lock is held by other process, skip save, zoneName: %v", zoneName)
		return
	}
	defer h.db.DistUnlock(zoneName)
	data, err := navmesh.EncodeZone(zone)
	if err != nil {
		logger.Error("%v, zoneName: %v", err, zoneName)
		return
	}
	err = h.db.UpdateZone(&dao.Zone{
		ZoneName:      zoneName,
		SourceHash:    sourceHash,
		BuildDigest:   buildDigest,
		VertexCount:   len(zone.Vertices),
		TriangleCount: zone.TriangleCount(),
		GroupCount:    len(zone.Groups),
		Data:          data,
	})
	if err != nil {
		logger.Error("update zone error: %v, zoneName: %v", err, zoneName)
	}
}

// GetZone 不存在时返回ErrZoneNotFound
func (h *Handle) GetZone(zoneName string) (*navmesh.Zone, error) {
	zone := h.zoneManager.GetZone(zoneName)
	if zone == nil {
		return nil, fmt.Errorf("%w: %v", navmesh.ErrZoneNotFound, zoneName)
	}
	return zone, nil
}
