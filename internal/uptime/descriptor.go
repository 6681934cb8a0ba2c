// Package uptime builds and registers the API health uptime check.
package uptime

import (
	"regexp"
	"strings"
)

const (
	// ResourceTypeURL is the monitored resource type for host-based checks.
	ResourceTypeURL = "uptime_url"
	// HostLabel is the monitored resource label carrying the probed hostname.
	HostLabel = "host"
)

// Fixed probe settings shared by every registration.
const (
	HealthPath     string = "/health"
	HTTPSPort      int32  = 443
	PeriodSeconds  int64  = 60
	TimeoutSeconds int64  = 10
)

const displayNameSuffix = " API Health"

// HostPattern matches a DNS hostname (no scheme, port or path).
var HostPattern = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// Descriptor is the uptime check configuration submitted to the monitoring service.
type Descriptor struct {
	DisplayName    string
	ResourceType   string
	ResourceLabels map[string]string
	HTTPPath       string
	Port           int32
	UseTLS         bool
	ValidateTLS    bool
	PeriodSeconds  int64
	TimeoutSeconds int64
}

// NewDescriptor returns the health check descriptor for host.
// Everything except the display name prefix and host label is fixed.
func NewDescriptor(product, host string) Descriptor {
	return Descriptor{
		DisplayName:    DisplayName(product),
		ResourceType:   ResourceTypeURL,
		ResourceLabels: map[string]string{HostLabel: host},
		HTTPPath:       HealthPath,
		Port:           HTTPSPort,
		UseTLS:         true,
		ValidateTLS:    true,
		PeriodSeconds:  PeriodSeconds,
		TimeoutSeconds: TimeoutSeconds,
	}
}

// DisplayName returns "<product> API Health".
func DisplayName(product string) string {
	return strings.TrimSpace(product) + displayNameSuffix
}

// Host returns the host label, or "" if unset.
func (d Descriptor) Host() string {
	return d.ResourceLabels[HostLabel]
}

// ProjectParent returns the parent resource path for projectID.
func ProjectParent(projectID string) string {
	return "projects/" + projectID
}
