package config // package config loads application configuration from environment variables

import "os"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a baked-in default so the demo
// boots against a local MySQL with zero setup; the defaults (notably the
// admin password) are not meant for production deployments.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	AdminSecret string // shared secret expected on mutating admin requests
	SiteName    string // site name fallback before the settings row is seeded
	EnvFile     string // path of the env file rewritten when the site name changes
	LicenseFile string // path of the license key file, checked before PRODUCT_KEY
	DBUser      string // database username
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
}

// Load reads configuration values from environment variables and returns a
// Config.  There are no required variables: each value falls back to a
// development default.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("PORT", "5000"),
		AdminSecret: getenv("ADMIN_PASSWORD", "changeme"),
		SiteName:    getenv("SITE_NAME", "SaavyShop Demo"),
		EnvFile:     getenv("ENV_FILE", ".env"),
		LicenseFile: getenv("LICENSE_FILE", ".license"),
		DBUser:      getenv("DB_USER", "root"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBName:      getenv("DB_NAME", "saavyshop"),
	}
}
