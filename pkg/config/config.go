package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/betbot/cryptsy/cryptsy/client"
	"github.com/betbot/cryptsy/cryptsy/types"
	"github.com/betbot/cryptsy/pkg/secretstore"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultCancelDelay cancel-all 撤单前的默认等待时间
const DefaultCancelDelay = 10 * time.Second

// ProxyConfig 代理配置
type ProxyConfig struct {
	Host string
	Port int
}

// URL 返回 http://host:port 形式的代理地址
func (p *ProxyConfig) URL() string {
	if p == nil || p.Host == "" {
		return ""
	}
	return "http://" + p.Host + ":" + strconv.Itoa(p.Port)
}

// SecretStoreConfig Badger 密钥库配置
type SecretStoreConfig struct {
	Path          string
	EncryptionKey string // 32 字节，hex 或 base64
}

type Config struct {
	Credentials types.Credentials
	PublicURL   string
	PrivateURL  string
	Timeout     time.Duration // 为 0 时使用 transport 默认值
	Proxy       *ProxyConfig
	CancelDelay time.Duration
	LogLevel    string
	LogFile     string
	SecretStore SecretStoreConfig
}

// ConfigFile 配置文件结构（用于 YAML/JSON 解析）
type ConfigFile struct {
	Credentials struct {
		PublicKey  string `yaml:"public_key" json:"public_key"`
		PrivateKey string `yaml:"private_key" json:"private_key"`
	} `yaml:"credentials" json:"credentials"`
	Endpoints struct {
		PublicURL  string `yaml:"public_url" json:"public_url"`
		PrivateURL string `yaml:"private_url" json:"private_url"`
	} `yaml:"endpoints" json:"endpoints"`
	HTTP struct {
		Timeout string `yaml:"timeout" json:"timeout"`
		Proxy   struct {
			Host string `yaml:"host" json:"host"`
			Port int    `yaml:"port" json:"port"`
		} `yaml:"proxy" json:"proxy"`
	} `yaml:"http" json:"http"`
	CancelAll struct {
		Delay string `yaml:"delay" json:"delay"`
	} `yaml:"cancel_all" json:"cancel_all"`
	SecretStore struct {
		Path          string `yaml:"path" json:"path"`
		EncryptionKey string `yaml:"encryption_key" json:"encryption_key"`
	} `yaml:"secret_store" json:"secret_store"`
	LogLevel string `yaml:"log_level" json:"log_level"`
	LogFile  string `yaml:"log_file" json:"log_file"`
}

// Load 仅从环境变量加载配置
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile 从指定文件加载配置（路径为空则跳过），环境变量优先于文件。
// 如果之后仍缺少 API 密钥且配置了密钥库，则从密钥库读取。
func LoadFromFile(filePath string) (*Config, error) {
	cf := &ConfigFile{}
	if filePath != "" {
		var err error
		if cf, err = loadConfigFile(filePath); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Credentials: types.Credentials{
			Key:    getEnv("CRYPTSY_PUBLIC_KEY", cf.Credentials.PublicKey),
			Secret: getEnv("CRYPTSY_PRIVATE_KEY", cf.Credentials.PrivateKey),
		},
		PublicURL:  getEnv("CRYPTSY_PUBLIC_URL", orDefault(cf.Endpoints.PublicURL, client.DefaultPublicURL)),
		PrivateURL: getEnv("CRYPTSY_PRIVATE_URL", orDefault(cf.Endpoints.PrivateURL, client.DefaultPrivateURL)),
		LogLevel:   getEnv("LOG_LEVEL", orDefault(cf.LogLevel, "info")),
		LogFile:    getEnv("LOG_FILE", cf.LogFile),
		SecretStore: SecretStoreConfig{
			Path:          getEnv("CRYPTSY_SECRET_DB", cf.SecretStore.Path),
			EncryptionKey: getEnv("CRYPTSY_SECRET_KEY", cf.SecretStore.EncryptionKey),
		},
	}

	var err error
	if cfg.Timeout, err = parseDurationEnv("CRYPTSY_TIMEOUT", cf.HTTP.Timeout, 0); err != nil {
		return nil, err
	}
	if cfg.CancelDelay, err = parseDurationEnv("CRYPTSY_CANCEL_DELAY", cf.CancelAll.Delay, DefaultCancelDelay); err != nil {
		return nil, err
	}
	if cfg.Proxy, err = parseProxy(cf); err != nil {
		return nil, err
	}

	if cfg.Credentials.Empty() && cfg.SecretStore.Path != "" {
		if err := cfg.fillFromSecretStore(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) fillFromSecretStore() error {
	key, err := secretstore.ParseKey(c.SecretStore.EncryptionKey)
	if err != nil {
		return err
	}
	store, err := secretstore.Open(secretstore.OpenOptions{
		Path:          c.SecretStore.Path,
		EncryptionKey: key,
		ReadOnly:      true,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	creds, ok, err := store.LoadCredentials()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if c.Credentials.Key == "" {
		c.Credentials.Key = creds.Key
	}
	if c.Credentials.Secret == "" {
		c.Credentials.Secret = creds.Secret
	}
	return nil
}

// ClientConfig 转换为交易所客户端配置
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		Credentials: c.Credentials,
		PublicURL:   c.PublicURL,
		PrivateURL:  c.PrivateURL,
		Timeout:     c.Timeout,
		ProxyURL:    c.Proxy.URL(),
	}
}

// Validate 验证私有接口所需的配置
func (c *Config) Validate() error {
	if c.Credentials.Key == "" {
		return errors.New("CRYPTSY_PUBLIC_KEY is not set")
	}
	if c.Credentials.Secret == "" {
		return errors.New("CRYPTSY_PRIVATE_KEY is not set")
	}
	for name, raw := range map[string]string{"public_url": c.PublicURL, "private_url": c.PrivateURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", name)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("invalid %s %q: scheme must be http or https", name, raw)
		}
	}
	if c.Timeout < 0 {
		return errors.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.CancelDelay < 0 {
		return errors.Errorf("cancel delay must not be negative, got %s", c.CancelDelay)
	}
	return nil
}

func loadConfigFile(filePath string) (*ConfigFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	var configFile ConfigFile
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &configFile); err != nil {
			return nil, errors.Wrap(err, "parse YAML config")
		}
	case ".json":
		if err := json.Unmarshal(data, &configFile); err != nil {
			return nil, errors.Wrap(err, "parse JSON config")
		}
	default:
		return nil, errors.Errorf("unsupported config format %q (use .yaml, .yml or .json)", ext)
	}
	return &configFile, nil
}

// parseProxy 优先级：配置文件 > PROXY_HOST/PROXY_PORT。
// 都未设置时返回 nil，由 resty 自行读取 HTTP_PROXY、HTTPS_PROXY 和 NO_PROXY。
func parseProxy(cf *ConfigFile) (*ProxyConfig, error) {
	if cf.HTTP.Proxy.Host != "" {
		if cf.HTTP.Proxy.Port <= 0 {
			return nil, errors.Errorf("proxy %s has no port", cf.HTTP.Proxy.Host)
		}
		return &ProxyConfig{Host: cf.HTTP.Proxy.Host, Port: cf.HTTP.Proxy.Port}, nil
	}

	host := getEnv("PROXY_HOST", "")
	if host == "" {
		return nil, nil
	}
	port, err := strconv.Atoi(getEnv("PROXY_PORT", ""))
	if err != nil || port <= 0 {
		return nil, errors.Errorf("PROXY_HOST %s needs a numeric PROXY_PORT", host)
	}
	return &ProxyConfig{Host: host, Port: port}, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}

// parseDurationEnv 环境变量优先于文件值；纯整数按秒解析
func parseDurationEnv(key, fileValue string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, fileValue)
	if raw == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}
