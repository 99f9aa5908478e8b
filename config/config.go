package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	GeminiModel string        `yaml:"gemini_model"`
	Reddit      RedditConfig  `yaml:"reddit"`
	Search      SearchConfig  `yaml:"search"`

	// Secrets are env-only, never read from config.yaml.
	MongoURI        string `yaml:"-"`
	MongoDBName     string `yaml:"-"`
	GeminiApiKey    string `yaml:"-"`
	RedditClientID  string `yaml:"-"`
	RedditClientSec string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RedditConfig holds the non-secret parts of the Reddit API client setup.
type RedditConfig struct {
	UserAgent string `yaml:"user_agent"`
}

// SearchConfig defines defaults applied when a search request omits a value.
type SearchConfig struct {
	DefaultLimit     int `yaml:"default_limit"`
	MaxLimit         int `yaml:"max_limit"`
	BodyTruncateLen  int `yaml:"body_truncate_len"`
	HistoryPageSize  int `yaml:"history_page_size"`
	TrendSampleLimit int `yaml:"trend_sample_limit"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.applyDefaults()
	c.loadSecrets()
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func (c *AppConfig) applyDefaults() {
	if c.Reddit.UserAgent == "" {
		c.Reddit.UserAgent = "social-listener/0.1"
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = 25
	}
	if c.Search.MaxLimit <= 0 {
		c.Search.MaxLimit = 100
	}
	if c.Search.BodyTruncateLen <= 0 {
		c.Search.BodyTruncateLen = 500
	}
	if c.Search.HistoryPageSize <= 0 {
		c.Search.HistoryPageSize = 20
	}
	if c.Search.TrendSampleLimit <= 0 {
		c.Search.TrendSampleLimit = 100
	}
}

func (c *AppConfig) loadSecrets() {
	c.MongoURI = os.Getenv("MONGO_URL")
	c.MongoDBName = os.Getenv("DB_NAME")
	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	c.RedditClientID = os.Getenv("REDDIT_CLIENT_ID")
	c.RedditClientSec = os.Getenv("REDDIT_CLIENT_SECRET")
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
