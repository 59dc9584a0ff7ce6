package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/vectors-2d/internal/logging"
	"github.com/annel0/vectors-2d/vec"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации.
type Config struct {
	Vector VectorConfig `yaml:"vector"`
	Demo   DemoConfig   `yaml:"demo"`
}

// VectorConfig настройки новых векторов
type VectorConfig struct {
	// Precision указатель, потому что 0 - допустимая точность
	Precision *int `yaml:"precision"`
}

// DemoConfig настройки примера wander-demo
type DemoConfig struct {
	Steps      int     `yaml:"steps"`
	Speed      float64 `yaml:"speed"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	MaxTurn    float64 `yaml:"max_turn_degrees"`
	NoiseScale float64 `yaml:"noise_scale"`
	Seed       int64   `yaml:"seed"`
	LogDir     string  `yaml:"log_dir"`
}

// GetPrecision возвращает точность с приоритетом: config -> env -> default
func (v *VectorConfig) GetPrecision() int {
	if v != nil && v.Precision != nil {
		if validPrecision(*v.Precision) {
			return *v.Precision
		}
		logging.LogWarn("точность %d в конфиге вне диапазона 0..%d, игнорируем", *v.Precision, vec.MaxPrecision)
	}

	if envVal := os.Getenv("VEC2D_PRECISION"); envVal != "" {
		p, err := strconv.Atoi(envVal)
		if err == nil && validPrecision(p) {
			return p
		}
		logging.LogWarn("некорректное значение VEC2D_PRECISION=%q", envVal)
	}

	return vec.DefaultPrecision
}

func validPrecision(p int) bool {
	return p >= 0 && p <= vec.MaxPrecision
}

// GetSteps возвращает количество шагов демо
func (d *DemoConfig) GetSteps() int {
	return int(getWithEnvFallback(float64(d.Steps), "VEC2D_DEMO_STEPS", 20))
}

// GetSpeed возвращает начальную скорость
func (d *DemoConfig) GetSpeed() float64 {
	return getWithEnvFallback(d.Speed, "VEC2D_DEMO_SPEED", 1.5)
}

// GetMinSpeed возвращает нижнюю границу скорости
func (d *DemoConfig) GetMinSpeed() float64 {
	return getWithEnvFallback(d.MinSpeed, "VEC2D_DEMO_MIN_SPEED", 0.5)
}

// GetMaxSpeed возвращает верхнюю границу скорости
func (d *DemoConfig) GetMaxSpeed() float64 {
	return getWithEnvFallback(d.MaxSpeed, "VEC2D_DEMO_MAX_SPEED", 3)
}

// GetMaxTurn возвращает максимальный поворот за шаг в градусах
func (d *DemoConfig) GetMaxTurn() float64 {
	return getWithEnvFallback(d.MaxTurn, "VEC2D_DEMO_MAX_TURN", 30)
}

// GetNoiseScale возвращает шаг по оси шума между тиками
func (d *DemoConfig) GetNoiseScale() float64 {
	return getWithEnvFallback(d.NoiseScale, "VEC2D_DEMO_NOISE_SCALE", 0.1)
}

// GetSeed возвращает сид генератора шума
func (d *DemoConfig) GetSeed() int64 {
	if d.Seed != 0 {
		return d.Seed
	}
	if envVal := os.Getenv("VEC2D_DEMO_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 12345
}

// getWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getWithEnvFallback(configVal float64, envVar string, defaultVal float64) float64 {
	// Если значение задано в конфиге и больше 0, используем его
	if configVal > 0 {
		return configVal
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if val, err := strconv.ParseFloat(envVal, 64); err == nil && val > 0 {
			return val
		}
		logging.LogWarn("некорректное значение %s=%q, используем %v", envVar, envVal, defaultVal)
	}

	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VEC2D_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VEC2D_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфига %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфига %s: %w", path, err)
	}

	return &cfg, nil
}
