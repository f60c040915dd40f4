package dao

type ZoneGorm struct {
	Name          string `gorm:"column:name;type:varchar(255);primaryKey"`
	SourceHash    string `gorm:"column:source_hash;type:varchar(64)"`
	BuildDigest   string `gorm:"column:build_digest;type:varchar(255)"`
	VertexCount   int    `gorm:"column:vertex_count;type:bigint(20)"`
	TriangleCount int    `gorm:"column:triangle_count;type:bigint(20)"`
	GroupCount    int    `gorm:"column:group_count;type:bigint(20)"`
	Data          []byte `gorm:"column:data;type:longblob"`
}

func (z ZoneGorm) TableName() string {
	return "zone"
}

func newZoneGorm(zone *Zone) *ZoneGorm {
	return &ZoneGorm{
		Name:          zone.ZoneName,
		SourceHash:    zone.SourceHash,
		BuildDigest:   zone.BuildDigest,
		VertexCount:   zone.VertexCount,
		TriangleCount: zone.TriangleCount,
		GroupCount:    zone.GroupCount,
		Data:          zone.Data,
	}
}

func (d *Dao) InsertZoneGorm(zone *Zone) error {
	err := d.gormDb.Create(newZoneGorm(zone)).Error
	if err != nil {
		return err
	}
	return nil
}

func (d *Dao) UpdateZoneGorm(zone *Zone) error {
	err := d.gormDb.Save(newZoneGorm(zone)).Error
	if err != nil {
		return err
	}
	return nil
}

func (d *Dao) QueryZoneGorm(zoneName string) (*Zone, error) {
	zoneGorm := new(ZoneGorm)
	result := d.gormDb.Where("name = ?", zoneName).Limit(1).Find(zoneGorm)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &Zone{
		ZoneName:      zoneGorm.Name,
		SourceHash:    zoneGorm.SourceHash,
		BuildDigest:   zoneGorm.BuildDigest,
		VertexCount:   zoneGorm.VertexCount,
		TriangleCount: zoneGorm.TriangleCount,
		GroupCount:    zoneGorm.GroupCount,
		Data:          zoneGorm.Data,
	}, nil
}

func (d *Dao) QueryZoneNameListGorm() ([]string, error) {
	ret := make([]string, 0)
	err := d.gormDb.Model(new(ZoneGorm)).Order("name").Pluck("name", &ret).Error
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (d *Dao) DeleteZoneGorm(zoneName string) error {
	err := d.gormDb.Where("name = ?", zoneName).Delete(new(ZoneGorm)).Error
	if err != nil {
		return err
	}
	return nil
}
