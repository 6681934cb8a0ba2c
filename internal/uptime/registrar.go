package uptime

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var (
	ErrMissingProjectID = errors.New("project ID is required")
	ErrMissingHost      = errors.New("host is required")
)

// Creator creates uptime checks in the monitoring service.
type Creator interface {
	CreateUptimeCheck(ctx context.Context, parent string, d Descriptor) (*Handle, error)
}

// Handle identifies a created uptime check.
type Handle struct {
	// Name is the service-assigned resource name,
	// e.g. projects/p/uptimeCheckConfigs/abc123.
	Name        string
	DisplayName string
	Host        string
}

// Lines returns the confirmation printed after a successful registration.
func (h *Handle) Lines() []string {
	return []string{
		fmt.Sprintf("✅ Uptime check created: %s", h.Name),
		fmt.Sprintf("   Display name: %s", h.DisplayName),
		fmt.Sprintf("   Host: %s", h.Host),
	}
}

// Registrar registers the product's API health check.
type Registrar struct {
	creator Creator
	product string
}

// NewRegistrar returns a Registrar that submits checks through creator.
func NewRegistrar(creator Creator, product string) *Registrar {
	return &Registrar{creator: creator, product: product}
}

// Register creates one uptime check for host under projectID.
// Each call issues a new create request; existing checks are not looked up.
// Errors from the creator are returned as-is.
func (r *Registrar) Register(ctx context.Context, projectID, host string) (*Handle, error) {
	if projectID == "" {
		return nil, ErrMissingProjectID
	}
	if host == "" {
		return nil, ErrMissingHost
	}

	d := NewDescriptor(r.product, host)
	parent := ProjectParent(projectID)

	tflog.Debug(ctx, "Creating uptime check", map[string]interface{}{
		"parent":       parent,
		"display_name": d.DisplayName,
		"host":         host,
	})

	h, err := r.creator.CreateUptimeCheck(ctx, parent, d)
	if err != nil {
		return nil, err
	}

	tflog.Debug(ctx, "Created uptime check", map[string]interface{}{
		"name": h.Name,
	})

	return h, nil
}
