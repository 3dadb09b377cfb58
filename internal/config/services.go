package config

import "time"

// ServicesConfig points at the upstream microservices the gateway
// forwards to. Request paths pass through unchanged; only the hosts move
// between environments.
type ServicesConfig struct {
	AuthURL       string        `yaml:"auth_url"`
	UsersURL      string        `yaml:"users_url"`
	LocationsURL  string        `yaml:"locations_url"`
	DirectionsURL string        `yaml:"directions_url"`
	SocketURL     string        `yaml:"socket_url"`
	Timeout       time.Duration `yaml:"timeout"`
}

func loadServicesConfig() *ServicesConfig {
	return &ServicesConfig{
		AuthURL:       getEnv("AUTH_SERVICE_URL", "http://auth-service:3007"),
		UsersURL:      getEnv("USER_SERVICE_URL", "http://user-service:8080"),
		LocationsURL:  getEnv("LOCATION_SERVICE_URL", "http://location-service:3003"),
		DirectionsURL: getEnv("ROUTE_SERVICE_URL", "http://route-service:3004"),
		SocketURL:     getEnv("SOCKET_SERVICE_URL", "http://websocket-service:3002"),
		Timeout:       getEnvAsDuration("SERVICE_TIMEOUT", 15*time.Second),
	}
}
