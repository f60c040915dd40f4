package dao

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Zone 构建好的寻路区域缓存 Data为msgpack编码的区域
type Zone struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ZoneName      string             `bson:"zone_name"`
	SourceHash    string             `bson:"source_hash"`  // 网格源文件的sha256 源文件变化后需要重新构建
	BuildDigest   string             `bson:"build_digest"` // 构建参数摘要 参数变化后同样需要重新构建
	VertexCount   int                `bson:"vertex_count"`
	TriangleCount int                `bson:"triangle_count"`
	GroupCount    int                `bson:"group_count"`
	Data          []byte             `bson:"data"`
}

func (d *Dao) InsertZone(zone *Zone) error {
	if d.mongo == nil {
		return d.InsertZoneGorm(zone)
	}
	db := d.mongoDb.Collection("zone")
	_, err := db.InsertOne(context.TODO(), zone)
	if err != nil {
		return err
	}
	return nil
}

// UpdateZone 不存在时插入
func (d *Dao) UpdateZone(zone *Zone) error {
	if d.mongo == nil {
		return d.UpdateZoneGorm(zone)
	}
	db := d.mongoDb.Collection("zone")
	_, err := db.UpdateOne(
		context.TODO(),
		bson.D{{Key: "zone_name", Value: zone.ZoneName}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "zone_name", Value: zone.ZoneName},
			{Key: "source_hash", Value: zone.SourceHash},
			{Key: "build_digest", Value: zone.BuildDigest},
			{Key: "vertex_count", Value: zone.VertexCount},
			{Key: "triangle_count", Value: zone.TriangleCount},
			{Key: "group_count", Value: zone.GroupCount},
			{Key: "data", Value: zone.Data},
		}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}
	return nil
}

// QueryZone 不存在时返回nil
func (d *Dao) QueryZone(zoneName string) (*Zone, error) {
	if d.mongo == nil {
		return d.QueryZoneGorm(zoneName)
	}
	db := d.mongoDb.Collection("zone")
	result := db.FindOne(
		context.TODO(),
		bson.D{{Key: "zone_name", Value: zoneName}},
	)
	zone := new(Zone)
	err := result.Decode(zone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return zone, nil
}

func (d *Dao) QueryZoneNameList() ([]string, error) {
	if d.mongo == nil {
		return d.QueryZoneNameListGorm()
	}
	db := d.mongoDb.Collection("zone")
	find, err := db.Find(
		context.TODO(),
		bson.D{},
		options.Find().SetProjection(bson.D{{Key: "zone_name", Value: 1}}).SetSort(bson.D{{Key: "zone_name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	result := make([]*Zone, 0)
	err = find.All(context.TODO(), &result)
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(result))
	for _, zone := range result {
		ret = append(ret, zone.ZoneName)
	}
	return ret, nil
}

func (d *Dao) DeleteZone(zoneName string) error {
	if d.mongo == nil {
		return d.DeleteZoneGorm(zoneName)
	}
	db := d.mongoDb.Collection("zone")
	_, err := db.DeleteOne(context.TODO(), bson.D{{Key: "zone_name", Value: zoneName}})
	if err != nil {
		return err
	}
	return nil
}
