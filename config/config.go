package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the flat env-backed configuration. Every value has a local-dev
// default; production supplies the real ones through the environment.
type Config struct {
	Port           string
	MySQLDSN       string
	RedisAddr      string
	AdminEmail     string
	AdminPassword  string
	AllowedOrigins []string
	Debug          bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env if present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("FRONTEND_URL"); extra != "" {
		origins = append(origins, extra)
	}
	if list := os.Getenv("ALLOWED_ORIGINS"); list != "" {
		for _, o := range strings.Split(list, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		Port:           getenv("PORT", "8080"),
		MySQLDSN:       getenv("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/campus_events"),
		RedisAddr:      getenv("REDIS_ADDR", "127.0.0.1:6379"),
		AdminEmail:     getenv("ADMIN_EMAIL", "admin@campus.edu"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "admin123"),
		AllowedOrigins: origins,
		Debug:          os.Getenv("DEBUG") == "true",
	}
}
