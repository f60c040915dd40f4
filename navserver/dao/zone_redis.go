package dao

import (
	"context"
	"time"

	"github.com/flswld/halo/logger"
)

// RedisZoneKeyPrefix key前缀
const RedisZoneKeyPrefix = "NAVZONE"

// GetRedisZoneBuildLockKey 获取区域构建分布式锁key
func (d *Dao) GetRedisZoneBuildLockKey(zoneName string) string {
	return RedisZoneKeyPrefix + ":ZONE_BUILD_LOCK:" + zoneName
}

// 基于redis的区域构建分布式锁实现 多个进程同时启动时只有一个进程构建并写库

const (
	MaxLockAliveTime = 60000 // 单个锁的最大存活时间 毫秒
)

// DistLock 加锁并返回是否成功 单机模式下没有redis 总是成功
func (d *Dao) DistLock(zoneName string) bool {
	if d.redis == nil && d.redisCluster == nil {
		return true
	}
	var result = false
	var err error = nil
	if d.redisCluster != nil {
		result, err = d.redisCluster.SetNX(context.TODO(),
			d.GetRedisZoneBuildLockKey(zoneName),
			time.Now().UnixMilli(),
			time.Millisecond*time.Duration(MaxLockAliveTime)).Result()
	} else {
		result, err = d.redis.SetNX(context.TODO(),
			d.GetRedisZoneBuildLockKey(zoneName),
			time.Now().UnixMilli(),
			time.Millisecond*time.Duration(MaxLockAliveTime)).Result()
	}
	if err != nil {
		logger.Error("redis lock setnx error: %v", err)
		return false
	}
	return result
}

// DistUnlock 解锁
func (d *Dao) DistUnlock(zoneName string) {
	if d.redis == nil && d.redisCluster == nil {
		return
	}
	var result int64 = 0
	var err error = nil
	if d.redisCluster != nil {
		result, err = d.redisCluster.Del(context.TODO(), d.GetRedisZoneBuildLockKey(zoneName)).Result()
	} else {
		result, err = d.redis.Del(context.TODO(), d.GetRedisZoneBuildLockKey(zoneName)).Result()
	}
	if err != nil {
		logger.Error("redis lock del error: %v", err)
		return
	}
	if result == 0 {
		logger.Error("redis lock del result is fail")
		return
	}
}
