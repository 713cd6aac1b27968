package config

// Settings carries the non-database runtime configuration.
type Settings struct {
	ServerAddr string
	CORSOrigin string
}

// LoadSettings reads server settings from the environment with defaults
// matching local development.
func LoadSettings() Settings {
	return Settings{
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0:8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
}
