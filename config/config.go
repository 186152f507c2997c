package config

import (
	"os"
	"path/filepath"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMaxPayloadBytes     = 64 * 1024
	defaultTerminalMaxEntries  = 1000
	defaultPersistTimeout      = 10 * time.Second
	defaultFanoutTimeout       = 15 * time.Second
	defaultNoticeTTL           = 5 * time.Second
	defaultEventBufferSize     = 256
	defaultConnectTimeout      = 10 * time.Second
	defaultReconnectInitial    = time.Second
	defaultReconnectMax        = 4 * time.Second
	defaultReconnectMultiplier = 2.0
	defaultSMSConcurrency      = 4
	defaultPreferencesProfile  = "default"
)

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

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	MQTT MQTTConfig `json:"mqtt" yaml:"mqtt"`

	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`

	Terminal TerminalConfig `json:"terminal" yaml:"terminal"`

	Fanout FanoutConfig `json:"fanout" yaml:"fanout"`

	Notices NoticesConfig `json:"notices" yaml:"notices"`

	Preferences PreferencesConfig `json:"preferences" yaml:"preferences"`

	// Operator login gate for the dashboard API
	Operator *OperatorConfig `json:"operator" yaml:"operator"`

	// Firebase project used for the Firestore audit log
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// SMSGateway is where the monitor posts SMS batches
	SMSGateway SMSGatewayConfig `json:"smsGateway" yaml:"smsGateway"`

	// Twilio credentials used by the send-sms function
	Twilio TwilioConfig `json:"twilio" yaml:"twilio"`

	EmailJS EmailJSConfig `json:"emailjs" yaml:"emailjs"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TopicConfig is one subscription of the monitoring session.
type TopicConfig struct {
	Name  string `json:"name" yaml:"name"`
	Topic string `json:"topic" yaml:"topic"`
	QoS   byte   `json:"qos" yaml:"qos"`

	// Category applied when the payload carries no explicit type.
	// One of: general, command, alert, status, telemetry.
	Category string `json:"category" yaml:"category"`
}

// ReconnectConfig is a bounded exponential backoff.
type ReconnectConfig struct {
	InitialInterval time.Duration `json:"initialInterval" yaml:"initialInterval"`
	MaxInterval     time.Duration `json:"maxInterval" yaml:"maxInterval"`
	Multiplier      float64       `json:"multiplier" yaml:"multiplier"`
}

// MQTTConfig defines the broker session
type MQTTConfig struct {
	BrokerURL       string          `json:"brokerUrl" yaml:"brokerUrl"`
	ClientID        string          `json:"clientId" yaml:"clientId"`
	Username        string          `json:"username" yaml:"username"`
	Password        string          `json:"password" yaml:"password"`
	KeepAlive       time.Duration   `json:"keepAlive" yaml:"keepAlive"`
	ConnectTimeout  time.Duration   `json:"connectTimeout" yaml:"connectTimeout"`
	Reconnect       ReconnectConfig `json:"reconnect" yaml:"reconnect"`
	EventBufferSize int             `json:"eventBufferSize" yaml:"eventBufferSize"`
	Topics          []TopicConfig   `json:"topics" yaml:"topics"`

	// CommandTopic receives operator commands published by the session.
	CommandTopic string `json:"commandTopic" yaml:"commandTopic"`
}

// ClassifierConfig defines classification limits
type ClassifierConfig struct {
	MaxPayloadBytes int      `json:"maxPayloadBytes" yaml:"maxPayloadBytes"`
	CommandMarkers  []string `json:"commandMarkers" yaml:"commandMarkers"`
}

// TerminalConfig defines the in-memory log panels
type TerminalConfig struct {
	MaxEntries     int           `json:"maxEntries" yaml:"maxEntries"`
	PersistTimeout time.Duration `json:"persistTimeout" yaml:"persistTimeout"`
}

// FanoutConfig defines alert delivery limits
type FanoutConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// NoticesConfig defines transient operator notices
type NoticesConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// PreferencesConfig selects the shared preference profile
type PreferencesConfig struct {
	Profile string `json:"profile" yaml:"profile"`
	// AutoMigrate creates the preference tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQueryThreshold is the duration above which preference queries are logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// OperatorConfig defines the single dashboard operator account
type OperatorConfig struct {
	Username     string        `json:"username" yaml:"username"`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// FirebaseConfig defines the Firebase project for remote log persistence
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

// SMSGatewayConfig points at the send-sms function and configures the server hosting it
type SMSGatewayConfig struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	Port        int    `json:"port" yaml:"port"`
	Concurrency int    `json:"concurrency" yaml:"concurrency"`
}

// TwilioConfig defines the Twilio Messages API account
type TwilioConfig struct {
	AccountSID  string `json:"accountSid" yaml:"accountSid"`
	AuthToken   string `json:"authToken" yaml:"authToken"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
}

// EmailJSConfig defines the EmailJS REST account
type EmailJSConfig struct {
	ServiceID   string `json:"serviceId" yaml:"serviceId"`
	TemplateID  string `json:"templateId" yaml:"templateId"`
	UserID      string `json:"userId" yaml:"userId"`
	AccessToken string `json:"accessToken" yaml:"accessToken"`
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
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

	// MQTT_BROKERURL -> mqtt.brokerUrl, matched against the keys already in the file.
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.MQTT.EventBufferSize <= 0 {
		cfg.MQTT.EventBufferSize = defaultEventBufferSize
	}
	if cfg.MQTT.ConnectTimeout <= 0 {
		cfg.MQTT.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.MQTT.Reconnect.InitialInterval <= 0 {
		cfg.MQTT.Reconnect.InitialInterval = defaultReconnectInitial
	}
	if cfg.MQTT.Reconnect.MaxInterval <= 0 {
		cfg.MQTT.Reconnect.MaxInterval = defaultReconnectMax
	}
	if cfg.MQTT.Reconnect.Multiplier < 1 {
		cfg.MQTT.Reconnect.Multiplier = defaultReconnectMultiplier
	}

	if cfg.Classifier.MaxPayloadBytes <= 0 {
		cfg.Classifier.MaxPayloadBytes = defaultMaxPayloadBytes
	}
	if cfg.Terminal.MaxEntries <= 0 {
		cfg.Terminal.MaxEntries = defaultTerminalMaxEntries
	}
	if cfg.Terminal.PersistTimeout <= 0 {
		cfg.Terminal.PersistTimeout = defaultPersistTimeout
	}
	if cfg.Fanout.Timeout <= 0 {
		cfg.Fanout.Timeout = defaultFanoutTimeout
	}
	if cfg.Notices.TTL <= 0 {
		cfg.Notices.TTL = defaultNoticeTTL
	}
	if strings.TrimSpace(cfg.Preferences.Profile) == "" {
		cfg.Preferences.Profile = defaultPreferencesProfile
	}
	if cfg.SMSGateway.Port <= 0 {
		cfg.SMSGateway.Port = cfg.HTTP.Port
	}
	if cfg.SMSGateway.Concurrency <= 0 {
		cfg.SMSGateway.Concurrency = defaultSMSConcurrency
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
