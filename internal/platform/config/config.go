package config

import (
	"os"
	"time"
)

// Config captures everything the atlas core reads from the environment.
type Config struct {
	// KnowledgeBaseURL is the MediaWiki-style API endpoint feature pages
	// are looked up against.
	KnowledgeBaseURL string

	ArchiveTimeout   time.Duration
	KnowledgeTimeout time.Duration

	Redis RedisConfig
}

// RedisConfig configures the optional shared timeline cache. An empty URL
// means Redis is not configured and the in-memory cache is used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	kbURL := os.Getenv("ATLAS_KNOWLEDGE_URL")
	if kbURL == "" {
		kbURL = "https://en.wikipedia.org/w/api.php"
	}

	return Config{
		KnowledgeBaseURL: kbURL,
		ArchiveTimeout:   durationEnv("ATLAS_ARCHIVE_TIMEOUT", 30*time.Second),
		KnowledgeTimeout: durationEnv("ATLAS_KNOWLEDGE_TIMEOUT", 10*time.Second),
		Redis: RedisConfig{
			URL:          os.Getenv("ATLAS_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
