package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	// EnvPrefix marks the environment variables that override file values,
	// e.g. HYDRONET_PROXIMITY_MAXDISTANCEKM overrides proximity.maxDistanceKm.
	EnvPrefix = "HYDRONET_"

	defaultServiceName   = "hydronet"
	defaultPort          = 8080
	defaultLogLevel      = "info"
	defaultMaxDistanceKm = 100.0
	defaultMaxNeighbors  = 5
	defaultWorkers       = 1
	defaultToleranceKm   = 0.5
	defaultShutdown      = 10 * time.Second
)

type Config struct {
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Log         Log    `json:"log" yaml:"log"`

	HTTP struct {
		Port     int `json:"port" yaml:"port" validate:"gte=1,lte=65535"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
			ShutdownTimeout   time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Data Data `json:"data" yaml:"data"`

	Proximity Proximity `json:"proximity" yaml:"proximity"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// Data names the CSV files loaded at start-up.
type Data struct {
	Reservoirs     string `json:"reservoirs" yaml:"reservoirs" validate:"required"`
	CriticalPoints string `json:"criticalPoints" yaml:"criticalPoints" validate:"required"`
}

// Proximity holds the default parameters of the proximity network.
type Proximity struct {
	MaxDistanceKm float64 `json:"maxDistanceKm" yaml:"maxDistanceKm" validate:"gt=0"`
	MaxNeighbors  int     `json:"maxNeighbors" yaml:"maxNeighbors" validate:"gte=1"`
	Workers       int     `json:"workers" yaml:"workers" validate:"gte=1"`
	ToleranceKm   float64 `json:"toleranceKm" yaml:"toleranceKm" validate:"gte=0"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays the
// EnvPrefix environment variables returned by environ (os.Environ when nil).
func LoadWithEnv[T any](currEnv string, environ func() []string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if !filepath.IsAbs(path) {
				path = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, path)
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}
	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// HYDRONET_DATA_CRITICALPOINTS -> data.criticalPoints
			return canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap), v
		},
		EnvironFunc: environ,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// Load reads config.yaml from the working directory or configPath, applies
// environment overrides and defaults, and validates the result.
func Load(environ func() []string, configPath ...string) (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", environ, configPath...)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// New loads .env when present, then the process configuration.
func New() (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	return Load(nil, "config", "../config", "../../config")
}

// LoadDotEnv sets the variables of the given .env files that are not
// already set in the process environment. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return errors.Wrapf(err, "load %s", f)
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.ServiceName) == "" {
		c.ServiceName = defaultServiceName
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultPort
	}
	if c.HTTP.Timeouts.ShutdownTimeout == 0 {
		c.HTTP.Timeouts.ShutdownTimeout = defaultShutdown
	}
	if c.Proximity.MaxDistanceKm == 0 {
		c.Proximity.MaxDistanceKm = defaultMaxDistanceKm
	}
	if c.Proximity.MaxNeighbors == 0 {
		c.Proximity.MaxNeighbors = defaultMaxNeighbors
	}
	if c.Proximity.Workers == 0 {
		c.Proximity.Workers = defaultWorkers
	}
	if c.Proximity.ToleranceKm == 0 {
		c.Proximity.ToleranceKm = defaultToleranceKm
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
