package config

// holds application configuration loaded from the environment
type Config struct {
	APIURL        string
	SessionSecret string
	Port          string
	Environment   string
}
