package config

import (
	"errors"
	"fmt"
	"strings"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeHTTP runs the web client.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeGateway runs the dev auth gateway (gRPC).
	ServiceModeGateway ServiceMode = "gateway"
)

// ValidServiceModes returns all valid service mode names.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{ServiceModeHTTP, ServiceModeGateway}
}

// ParseServices parses a comma-delimited string of service names and returns the enabled services.
func ParseServices(servicesStr string) (map[ServiceMode]bool, error) {
	if strings.TrimSpace(servicesStr) == "" {
		return nil, errors.New("at least one service must be specified")
	}

	services := make(map[ServiceMode]bool)
	for _, part := range strings.Split(servicesStr, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		switch mode := ServiceMode(name); mode {
		case ServiceModeHTTP, ServiceModeGateway:
			services[mode] = true
		default:
			return nil, fmt.Errorf("invalid service name: %q (valid options: http, gateway)", name)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("at least one valid service must be specified")
	}
	return services, nil
}
