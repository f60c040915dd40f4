package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

var CONF *Config = nil

// Config 配置
type Config struct {
	Navzone  Navzone  `toml:"navzone"`
	Logger   Logger   `toml:"logger"`
	Database Database `toml:"database"`
	Redis    Redis    `toml:"redis"`
	MQ       MQ       `toml:"mq"`
	NavMesh  NavMesh  `toml:"navmesh"`
}

// Navzone 服务相关配置
type Navzone struct {
	StandaloneModeEnable bool   `toml:"standalone_mode_enable"` // 单机模式 不连接redis
	HttpAddr             string `toml:"http_addr"`
	StatsvizAddr         string `toml:"statsviz_addr"`
	MeshDir              string `toml:"mesh_dir"`       // 网格文件目录 文件名即zone名
	SubjectPrefix        string `toml:"subject_prefix"` // nats主题前缀
	MqEnable             bool   `toml:"mq_enable"`
}

// Logger 日志
type Logger struct {
	Level        string `toml:"level"`
	TrackLine    bool   `toml:"track_line"`
	TrackThread  bool   `toml:"track_thread"`
	EnableFile   bool   `toml:"enable_file"`
	DisableColor bool   `toml:"disable_color"`
	EnableJson   bool   `toml:"enable_json"`
}

// Database 数据库配置
type Database struct {
	Url string `toml:"url"`
}

// Redis redis配置
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
}

// MQ 消息队列
type MQ struct {
	NatsUrl string `toml:"nats_url"`
}

// NavMesh 寻路网格构建与查询参数 零值表示使用默认值
type NavMesh struct {
	VertexPrecision     int     `toml:"vertex_precision"`
	StoragePrecision    int     `toml:"storage_precision"`
	NeighbourMaxDistSq  float64 `toml:"neighbour_max_dist_sq"`
	NearestMaxDistSq    float64 `toml:"nearest_max_dist_sq"`
	VerticalTolerance   float64 `toml:"vertical_tolerance"`
	MaxSearchIterations int     `toml:"max_search_iterations"`
}

func InitConfig(filePath string) {
	CONF = new(Config)
	CONF.loadConfigFile(filePath)
}

func GetConfig() *Config {
	return CONF
}

// 加载配置文件
func (c *Config) loadConfigFile(filePath string) {
	_, err := toml.DecodeFile(filePath, c)
	if err != nil {
		info := fmt.Sprintf("config file load error: %v", err)
		panic(info)
	}
	if c.Navzone.SubjectPrefix == "" {
		c.Navzone.SubjectPrefix = "navzone"
	}
	if c.Navzone.MeshDir == "" {
		c.Navzone.MeshDir = "./NavMesh"
	}
}
