package config

import (
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/nullchan-dev/nullchan/internal/logger"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port          int           `yaml:"port"`
	DataDir       string        `yaml:"data_dir"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	CorsOrigins   []string      `yaml:"cors_origins"`
	SecureCookies bool          `yaml:"secure_cookies"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`

	// token bucket parameters; rate is tokens per second
	GlobalRateLimit float64 `yaml:"global_rate_limit"`
	GlobalRateBurst float64 `yaml:"global_rate_burst"`
	CreateRateLimit float64 `yaml:"create_rate_limit"`
	CreateRateBurst float64 `yaml:"create_rate_burst"`
}

type Private struct {
	JwtKey        string `yaml:"jwt_key"`
	AdminPassword string `yaml:"admin_password"` // bcrypt hash or plaintext
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) AdminPassword() string {
	return s.private.AdminPassword
}

func (s *Config) SessionTTL() time.Duration {
	return s.Public.SessionTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	// .env keeps parity with the original deployment; absence is fine
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("no .env file loaded", "err", err)
	}

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// applyEnv lets the environment override file values, matching the
// original's PORT/ADMIN_PASSWORD/CORS_ORIGINS knobs.
func (s *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.Public.Port = port
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		s.Public.DataDir = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		s.Public.CorsOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		s.private.JwtKey = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		s.private.AdminPassword = v
	}
}

func (s *Config) applyDefaults() {
	if s.Public.Port == 0 {
		s.Public.Port = 5001
	}
	if s.Public.DataDir == "" {
		s.Public.DataDir = "data"
	}
	if s.Public.SessionTTL == 0 {
		s.Public.SessionTTL = 24 * time.Hour
	}
	if s.Public.MaxBodyBytes == 0 {
		s.Public.MaxBodyBytes = 10 << 20
	}
	if s.Public.GlobalRateLimit == 0 {
		// 100 requests per 15 minutes, like the original limiter
		s.Public.GlobalRateLimit = 100.0 / (15 * 60)
		s.Public.GlobalRateBurst = 100
	}
	if s.Public.CreateRateLimit == 0 {
		// 5 posts per minute per IP
		s.Public.CreateRateLimit = 5.0 / 60
		s.Public.CreateRateBurst = 5
	}
}
