package navmesh

import (
	"sort"
	"sync"

	"github.com/flswld/halo/logger"
	"github.com/go-gl/mathgl/mgl64"
)

// ZoneManager 按名字管理已构建的寻路区域 区域发布后只读 查询可并发
type ZoneManager struct {
	lock     sync.RWMutex
	zoneMap  map[string]*Zone
	settings *NavMeshBuildSettings
}

func NewZoneManager(settings *NavMeshBuildSettings) *ZoneManager {
	return &ZoneManager{
		zoneMap:  make(map[string]*Zone),
		settings: settings.WithDefaults(),
	}
}

func (m *ZoneManager) Settings() *NavMeshBuildSettings {
	return m.settings
}

// SetZone 发布构建完成的区域 同名区域会被替换
func (m *ZoneManager) SetZone(zoneName string, zone *Zone) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.zoneMap[zoneName] = zone
}

func (m *ZoneManager) GetZone(zoneName string) *Zone {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.zoneMap[zoneName]
}

func (m *ZoneManager) RemoveZone(zoneName string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.zoneMap, zoneName)
}

func (m *ZoneManager) GetZoneNameList() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	ret := make([]string, 0, len(m.zoneMap))
	for zoneName := range m.zoneMap {
		ret = append(ret, zoneName)
	}
	sort.Strings(ret)
	return ret
}

// Clear 释放全部区域
func (m *ZoneManager) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.zoneMap = make(map[string]*Zone)
}

func (m *ZoneManager) GetGroup(zoneName string, position mgl64.Vec3) (int, bool) {
	zone := m.GetZone(zoneName)
	if zone == nil {
		return -1, false
	}
	return zone.GetGroup(position, m.settings.NearestMaxDistSq)
}

func (m *ZoneManager) GetRandomPoint(zoneName string, groupId int, nearPosition *mgl64.Vec3, nearRange float64) (mgl64.Vec3, bool) {
	zone := m.GetZone(zoneName)
	if zone == nil {
		return mgl64.Vec3{}, false
	}
	return zone.GetRandomPoint(groupId, nearPosition, nearRange)
}

func (m *ZoneManager) FindPath(startPosition mgl64.Vec3, targetPosition mgl64.Vec3, zoneName string, groupId int) ([]mgl64.Vec3, bool) {
	zone := m.GetZone(zoneName)
	if zone == nil {
		logger.Warn("find path zone not exist, zoneName: %v", zoneName)
		return nil, false
	}
	return zone.FindPath(startPosition, targetPosition, groupId, m.settings)
}
