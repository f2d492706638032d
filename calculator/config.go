package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	// [solver]
	Tolerance     float64 // 牛顿迭代收敛阈值 C
	MaxIter       int
	InitialOffset float64 // 初始温度 = 环境温度 + InitialOffset，也是向右搜索初值的起始步长

	// [executor]
	Workers   int
	ChunkSize int // 每个任务包含的档距数，<= 0 时按 Workers 平均划分

	// [server]
	Addr string

	// [log]
	LogLevel string
}

func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

// LoadConfig 读取 ini 配置文件，文件不存在或格式错误时使用默认值
func LoadConfig(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	return Config{
		Tolerance:     file.Section("solver").Key("Tolerance").MustFloat64(1e-6),
		MaxIter:       file.Section("solver").Key("MaxIter").MustInt(50),
		InitialOffset: file.Section("solver").Key("InitialOffset").MustFloat64(10),
		Workers:       file.Section("executor").Key("Workers").MustInt(4),
		ChunkSize:     file.Section("executor").Key("ChunkSize").MustInt(256),
		Addr:          file.Section("server").Key("Addr").MustString(":9000"),
		LogLevel:      file.Section("log").Key("Level").MustString("info"),
	}
}

func (c Config) options() Options {
	return Options{
		Tolerance: c.Tolerance,
		MaxIter:   c.MaxIter,
	}
}
