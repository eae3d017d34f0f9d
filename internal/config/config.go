package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/special-hands/internal/game/rule"
)

const (
	defaultSequenceRequirement  = 5
	defaultSameColorRequirement = 5
	defaultHandSize             = 5
)

// Config 牌型判定配置
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	Log   LogConfig   `yaml:"log"`
	Deal  DealConfig  `yaml:"deal"`
}

// RulesConfig 场地计分规则
type RulesConfig struct {
	SequenceRequirement  int  `yaml:"sequence_requirement"`   // 序列最少张数
	SameColorRequirement int  `yaml:"same_color_requirement"` // 同色最少张数
	SkipSequence         bool `yaml:"skip_sequence"`          // 序列允许相隔 1 个点数
}

// LogConfig 日志配置
type LogConfig struct {
	Dir      string `yaml:"dir"`      // 日志目录，为空时使用用户主目录
	Disabled bool   `yaml:"disabled"` // 关闭文件日志
}

// DealConfig 发牌配置
type DealConfig struct {
	HandSize int `yaml:"hand_size"` // 每手牌张数
}

// AreaRules 转换为计分规则
func (c *RulesConfig) AreaRules() rule.AreaRules {
	return rule.AreaRules{
		SequenceRequirement:  c.SequenceRequirement,
		SameColorRequirement: c.SameColorRequirement,
		SkipSequence:         c.SkipSequence,
	}
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Rules.SequenceRequirement == 0 {
		cfg.Rules.SequenceRequirement = defaultSequenceRequirement
	}
	if cfg.Rules.SameColorRequirement == 0 {
		cfg.Rules.SameColorRequirement = defaultSameColorRequirement
	}
	if cfg.Deal.HandSize <= 0 {
		cfg.Deal.HandSize = defaultHandSize
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			SequenceRequirement:  defaultSequenceRequirement,
			SameColorRequirement: defaultSameColorRequirement,
		},
		Deal: DealConfig{
			HandSize: defaultHandSize,
		},
	}
}
