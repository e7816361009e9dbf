package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath 默认配置文件路径
const DefaultPath = "configs/config.yaml"

// Mode 运行模式，决定站点使用的品牌文案
type Mode string

const (
	ModePaper Mode = "paper"
	ModeNews  Mode = "news"
)

// ParseMode 解析运行模式，无法识别的值一律回落到 paper
func ParseMode(s string) Mode {
	if Mode(s) == ModeNews {
		return ModeNews
	}
	return ModePaper
}

// Config 项目配置结构体
type Config struct {
	OutputDir    string    `yaml:"output_dir"`    // JSON 日报所在目录
	SiteDir      string    `yaml:"site_dir"`      // 静态站点输出目录
	TemplatesDir string    `yaml:"templates_dir"` // 为空时使用内置模板
	Mode         string    `yaml:"mode"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		OutputDir: "output",
		SiteDir:   "output/site",
		Mode:      string(ModePaper),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig 从指定路径加载配置，文件中未出现的字段保留默认值。
// 当 required 为 false 且文件不存在时直接返回默认配置。
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Brand 品牌文案
type Brand struct {
	Name         string // 站点名
	NameZh       string // 中文站点名
	ArchiveLabel string // 归档页标题
	ItemLabel    string // 条目计数单位
}

// BrandFor 返回运行模式对应的品牌文案
func BrandFor(mode Mode) Brand {
	if mode == ModeNews {
		return Brand{
			Name:         "Daily News",
			NameZh:       "每日资讯",
			ArchiveLabel: "资讯归档",
			ItemLabel:    "条资讯",
		}
	}

	return Brand{
		Name:         "Daily Paper",
		NameZh:       "每日论文",
		ArchiveLabel: "论文归档",
		ItemLabel:    "篇论文",
	}
}
