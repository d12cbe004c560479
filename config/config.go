// Package config 从配置文件和环境变量加载模型与扫描参数。
//
// 优先级：环境变量 > 配置文件 > 默认值。环境变量前缀为 FUELCELL_，
// 键路径中的 "." 替换为 "_"，例如 FUELCELL_MODEL_TEMPERATURE_K。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fuelcell/logger"
	"fuelcell/model"
	"fuelcell/sweep"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀。
const EnvPrefix = "FUELCELL"

// ErrLoad 配置读取或解析失败。
var ErrLoad = errors.New("config: load failed")

// Config 全部配置。
type Config struct {
	Model    model.Config `mapstructure:"model"`
	Sweep    sweep.Range  `mapstructure:"sweep"`
	LogLevel string       `mapstructure:"log_level"`
}

// Default 默认配置。
func Default() *Config {
	return &Config{
		Model:    model.DefaultConfig(),
		Sweep:    sweep.DefaultRange(),
		LogLevel: "info",
	}
}

// Load 读取配置。path 为空时只使用默认值和环境变量。
func Load(path string, log *slog.Logger) (*Config, error) {
	if log == nil {
		log = logger.Discard()
	}
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		"file", v.ConfigFileUsed(),
		"num_cells", cfg.Model.NumCells,
		"sweep_points", cfg.Sweep.Points)
	return cfg, nil
}

// Validate 校验模型、扫描范围和日志级别。
func (cfg *Config) Validate() error {
	if err := cfg.Model.Validate(); err != nil {
		return err
	}
	if err := cfg.Sweep.Validate(); err != nil {
		return err
	}
	if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrLoad, cfg.LogLevel)
	}
	return nil
}

// NewModel 按配置创建模型。
func (cfg *Config) NewModel() (*model.Model, error) {
	return model.New(cfg.Model)
}

func setDefaults(v *viper.Viper, d *Config) {
	m := d.Model
	v.SetDefault("model.temperature_k", m.TemperatureK)
	v.SetDefault("model.nernst_voltage_v", m.NernstVoltageV)
	v.SetDefault("model.membrane_resistance_ohm_cm2", m.MembraneResistanceOhmCm2)
	v.SetDefault("model.exchange_current_density_a_cm2", m.ExchangeCurrentDensityACm2)
	v.SetDefault("model.limiting_current_density_a_cm2", m.LimitingCurrentDensityACm2)
	v.SetDefault("model.alpha", m.Alpha)
	v.SetDefault("model.gas_constant", m.GasConstant)
	v.SetDefault("model.faraday", m.Faraday)
	v.SetDefault("model.num_cells", m.NumCells)
	v.SetDefault("model.active_area_cm2", m.ActiveAreaCm2)

	v.SetDefault("sweep.start", d.Sweep.Start)
	v.SetDefault("sweep.stop", d.Sweep.Stop)
	v.SetDefault("sweep.points", d.Sweep.Points)

	v.SetDefault("log_level", d.LogLevel)
}
