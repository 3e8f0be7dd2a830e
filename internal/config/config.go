package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort      int               `json:"server_port"`
	DefaultSiteName string            `json:"default_site_name"`
	PortTenants     map[string]string `json:"port_tenants"`
	GlobalRateLimit int               `json:"global_rate_limit"`
	BindingCacheTTL time.Duration     `json:"binding_cache_ttl"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute per IP
	}

	return &Config{
		ServerPort:      serverPort,
		DefaultSiteName: getEnvWithDefault("SITE_NAME", "TG中文纸飞机"),
		PortTenants:     parsePortTenantMap(os.Getenv("PORT_TENANT_MAP")),
		GlobalRateLimit: globalRateLimit,
		BindingCacheTTL: getEnvDurationWithDefault("BINDING_CACHE_TTL", 5*time.Minute),
	}, nil
}

// parsePortTenantMap parses "3001=Site One,3002=Site Two" into a
// port-to-tenant-name hint map for local development resolution.
func parsePortTenantMap(raw string) map[string]string {
	m := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		port, name, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		port = strings.TrimSpace(port)
		name = strings.TrimSpace(name)
		if port != "" && name != "" {
			m[port] = name
		}
	}
	return m
}
