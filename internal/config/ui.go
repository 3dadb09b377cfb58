package config

import "time"

// UIConfig seeds the client-side stores. The default center is downtown
// Ho Chi Minh City, matching the product's launch market.
type UIConfig struct {
	DefaultCenterLat float64       `yaml:"default_center_lat"`
	DefaultCenterLng float64       `yaml:"default_center_lng"`
	DefaultZoom      int           `yaml:"default_zoom"`
	ToastTTL         time.Duration `yaml:"toast_ttl"`
	SearchDebounce   time.Duration `yaml:"search_debounce"`
	DirectionsRetry  time.Duration `yaml:"directions_retry"`
}

func loadUIConfig() *UIConfig {
	return &UIConfig{
		DefaultCenterLat: getEnvAsFloat64("UI_DEFAULT_CENTER_LAT", 10.776530),
		DefaultCenterLng: getEnvAsFloat64("UI_DEFAULT_CENTER_LNG", 106.700981),
		DefaultZoom:      getEnvAsInt("UI_DEFAULT_ZOOM", 13),
		ToastTTL:         getEnvAsDuration("UI_TOAST_TTL", 5*time.Second),
		SearchDebounce:   getEnvAsDuration("UI_SEARCH_DEBOUNCE", 300*time.Millisecond),
		DirectionsRetry:  getEnvAsDuration("UI_DIRECTIONS_RETRY", time.Second),
	}
}
