// Package config 提供配置加载和管理功能
package config

import (
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Vendors       VendorsConfig       `yaml:"vendors" mapstructure:"vendors"`
	Generation    GenerationConfig    `yaml:"generation" mapstructure:"generation"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// LLMConfig LLM 配置
type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider" mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
}

// ProviderConfig LLM 提供商配置
type ProviderConfig struct {
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Model       string        `yaml:"model" mapstructure:"model"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// VendorsConfig 外部服务配置
type VendorsConfig struct {
	Presenton  PresentonConfig  `yaml:"presenton" mapstructure:"presenton"`
	HeyGen     HeyGenConfig     `yaml:"heygen" mapstructure:"heygen"`
	ElevenLabs ElevenLabsConfig `yaml:"elevenlabs" mapstructure:"elevenlabs"`
	Bunny      BunnyConfig      `yaml:"bunny" mapstructure:"bunny"`
	Pexels     MediaKeyConfig   `yaml:"pexels" mapstructure:"pexels"`
	Unsplash   MediaKeyConfig   `yaml:"unsplash" mapstructure:"unsplash"`
	Pixabay    MediaKeyConfig   `yaml:"pixabay" mapstructure:"pixabay"`
	Canva      CanvaConfig      `yaml:"canva" mapstructure:"canva"`
}

// PresentonConfig Presenton 幻灯片引擎配置
type PresentonConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// HeyGenConfig HeyGen 数字人视频配置
type HeyGenConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ElevenLabsConfig ElevenLabs 语音合成配置
type ElevenLabsConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	ModelID string        `yaml:"model_id" mapstructure:"model_id"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// BunnyConfig Bunny.net 视频库配置
type BunnyConfig struct {
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	LibraryID string        `yaml:"library_id" mapstructure:"library_id"`
	CDNHost   string        `yaml:"cdn_host" mapstructure:"cdn_host"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// MediaKeyConfig 素材库 API Key 配置
type MediaKeyConfig struct {
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// CanvaConfig Canva Connect OAuth 配置
type CanvaConfig struct {
	ClientID     string        `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret string        `yaml:"client_secret" mapstructure:"client_secret"`
	RedirectURI  string        `yaml:"redirect_uri" mapstructure:"redirect_uri"`
	AuthBaseURL  string        `yaml:"auth_base_url" mapstructure:"auth_base_url"`
	APIBaseURL   string        `yaml:"api_base_url" mapstructure:"api_base_url"`
	StateTTL     time.Duration `yaml:"state_ttl" mapstructure:"state_ttl"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// GenerationConfig 内容生成限制配置
type GenerationConfig struct {
	MaxTitleSuggestions int           `yaml:"max_title_suggestions" mapstructure:"max_title_suggestions"`
	MaxSlides           int           `yaml:"max_slides" mapstructure:"max_slides"`
	MaxQuizQuestions    int           `yaml:"max_quiz_questions" mapstructure:"max_quiz_questions"`
	MaxExercises        int           `yaml:"max_exercises" mapstructure:"max_exercises"`
	ScrapeTimeout       time.Duration `yaml:"scrape_timeout" mapstructure:"scrape_timeout"`
	MaxScrapeURLs       int           `yaml:"max_scrape_urls" mapstructure:"max_scrape_urls"`
	MaxUploadBytes      int64         `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	Output string `yaml:"output" mapstructure:"output"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Exporter   string  `yaml:"exporter" mapstructure:"exporter"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Port    int    `yaml:"port" mapstructure:"port"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors" mapstructure:"cors"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled" mapstructure:"enabled"`
	RequestsPerSecond int  `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int  `yaml:"burst" mapstructure:"burst"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}
