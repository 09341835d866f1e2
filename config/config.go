package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultGeocoderBaseURL        = "https://nominatim.openstreetmap.org"
	defaultGeocoderUserAgent      = "agroalert/1.0"
	defaultGeocoderTimeout        = 10 * time.Second
	defaultGeocoderCacheRadius    = 250.0
	defaultGeocoderCacheTTL       = 30 * time.Minute
	defaultGeocoderCacheSize      = 1024
	defaultAlertAPITimeout        = 10 * time.Second
	defaultAlertAPITimezone       = "UTC"
	defaultSlowQueryThreshold     = 200 * time.Millisecond
	defaultRecentLimit            = 3
	defaultScanBatchSize          = 100
	defaultNotificationPageLimit  = 20
	defaultNotificationPageMaxLim = 100
)

// DefaultAddressKeys is the order in which address components become place candidates.
var DefaultAddressKeys = []string{"quarter", "suburb", "city_district", "city", "state_district", "state"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tuning on top of the postgres connection
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Geocoder configuration for reverse geocoding
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// AlertAPI configuration for the remote alert service
	AlertAPI *AlertAPIConfig `json:"alertApi" yaml:"alertApi"`

	// Categories lists the alert categories queried on every run
	Categories []CategoryConfig `json:"categories" yaml:"categories"`

	// Alerts configuration for notification projection
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Scan configuration for scheduled subscription scans
	Scan *ScanConfig `json:"scan" yaml:"scan"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SecretKeyConfig holds signing secrets.
type SecretKeyConfig struct {
	// Access is the HMAC secret for operator bearer tokens.
	Access string `json:"access" yaml:"access"`
}

// DatabaseConfig defines schema and query logging behaviour
type DatabaseConfig struct {
	// Create or update the alert tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// GeocoderConfig defines the reverse geocoding client configuration
type GeocoderConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`
	AcceptLanguage string        `json:"acceptLanguage" yaml:"acceptLanguage"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`

	// Address keys read from the response, most specific first
	AddressKeys []string `json:"addressKeys" yaml:"addressKeys"`

	// Lookups within this distance of a cached one reuse its result (0 disables the cache)
	CacheRadiusMeters float64       `json:"cacheRadiusMeters" yaml:"cacheRadiusMeters"`
	CacheTTL          time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	CacheSize         int           `json:"cacheSize" yaml:"cacheSize"`
}

// AlertAPIConfig defines the remote alert service configuration
type AlertAPIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// IANA zone used for timestamps sent without an offset
	Timezone string `json:"timezone" yaml:"timezone"`
}

// CategoryConfig defines one alert category
type CategoryConfig struct {
	Name      string `json:"name" yaml:"name"`
	Label     string `json:"label" yaml:"label"`
	Path      string `json:"path" yaml:"path"`
	ThreatKey string `json:"threatKey" yaml:"threatKey"`
	Emoji     string `json:"emoji" yaml:"emoji"`
	Color     string `json:"color" yaml:"color"`
}

// AlertsConfig defines how alert reports become notifications
type AlertsConfig struct {
	// Maximum number of recent detections turned into notifications per category
	RecentLimit int `json:"recentLimit" yaml:"recentLimit"`

	// Page size bounds for notification history
	DefaultPageLimit int `json:"defaultPageLimit" yaml:"defaultPageLimit"`
	MaxPageLimit     int `json:"maxPageLimit" yaml:"maxPageLimit"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ScanConfig defines subscription scan configuration
type ScanConfig struct {
	// Number of subscriptions loaded per page
	BatchSize int `json:"batchSize" yaml:"batchSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values.
	// Example: ALERTAPI_BASEURL -> alertApi.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(name string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills sections missing from the file.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{CacheRadiusMeters: defaultGeocoderCacheRadius}
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = defaultGeocoderBaseURL
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = defaultGeocoderUserAgent
	}
	if cfg.Geocoder.Timeout <= 0 {
		cfg.Geocoder.Timeout = defaultGeocoderTimeout
	}
	if len(cfg.Geocoder.AddressKeys) == 0 {
		cfg.Geocoder.AddressKeys = DefaultAddressKeys
	}
	if cfg.Geocoder.CacheTTL <= 0 {
		cfg.Geocoder.CacheTTL = defaultGeocoderCacheTTL
	}
	if cfg.Geocoder.CacheSize <= 0 {
		cfg.Geocoder.CacheSize = defaultGeocoderCacheSize
	}

	if cfg.AlertAPI == nil {
		cfg.AlertAPI = &AlertAPIConfig{}
	}
	if cfg.AlertAPI.Timeout <= 0 {
		cfg.AlertAPI.Timeout = defaultAlertAPITimeout
	}
	if cfg.AlertAPI.Timezone == "" {
		cfg.AlertAPI.Timezone = defaultAlertAPITimezone
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}
	for idx := range cfg.Categories {
		category := &cfg.Categories[idx]
		if category.Label == "" {
			category.Label = titleCase(category.Name)
		}
		if category.Path == "" {
			category.Path = "/api/" + category.Name + "-alerts"
		}
		if category.ThreatKey == "" {
			category.ThreatKey = category.Name + "Name"
		}
	}

	if cfg.Alerts == nil {
		cfg.Alerts = &AlertsConfig{}
	}
	if cfg.Alerts.RecentLimit <= 0 {
		cfg.Alerts.RecentLimit = defaultRecentLimit
	}
	if cfg.Alerts.DefaultPageLimit <= 0 {
		cfg.Alerts.DefaultPageLimit = defaultNotificationPageLimit
	}
	if cfg.Alerts.MaxPageLimit <= 0 {
		cfg.Alerts.MaxPageLimit = defaultNotificationPageMaxLim
	}

	if cfg.Scan == nil {
		cfg.Scan = &ScanConfig{}
	}
	if cfg.Scan.BatchSize <= 0 {
		cfg.Scan.BatchSize = defaultScanBatchSize
	}
}

// DefaultCategories returns the pest and disease categories.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{Name: "pest", Label: "Pest", Path: "/api/pest-alerts", ThreatKey: "pestName", Emoji: "🐛", Color: "#4CAF50"},
		{Name: "disease", Label: "Disease", Path: "/api/disease-alerts", ThreatKey: "diseaseName", Emoji: "🦠", Color: "#9C27B0"},
	}
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
