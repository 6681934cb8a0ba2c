package client

import (
	"context"
	"fmt"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"google.golang.org/api/option"
)

// DefaultUserAgent is sent when ClientConfig.UserAgent is empty.
const DefaultUserAgent = "jurisnexo-uptimecheck"

// uptimeCheckAPI is the subset of the Cloud Monitoring uptime check client we call.
type uptimeCheckAPI interface {
	CreateUptimeCheckConfig(ctx context.Context, req *monitoringpb.CreateUptimeCheckConfigRequest, opts ...gax.CallOption) (*monitoringpb.UptimeCheckConfig, error)
	GetUptimeCheckConfig(ctx context.Context, req *monitoringpb.GetUptimeCheckConfigRequest, opts ...gax.CallOption) (*monitoringpb.UptimeCheckConfig, error)
	DeleteUptimeCheckConfig(ctx context.Context, req *monitoringpb.DeleteUptimeCheckConfigRequest, opts ...gax.CallOption) error
	Close() error
}

// Client is the Cloud Monitoring uptime check client.
type Client struct {
	api       uptimeCheckAPI
	projectID string
}

// ClientConfig holds configuration for creating a new client.
type ClientConfig struct {
	// ProjectID is the default project for resources that do not set one.
	ProjectID string
	// Endpoint overrides the API endpoint. Empty uses the SDK default.
	Endpoint  string
	UserAgent string
}

// New creates a new Cloud Monitoring client using Application Default Credentials.
func New(ctx context.Context, cfg ClientConfig) (*Client, error) {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	opts := []option.ClientOption{option.WithUserAgent(userAgent)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	api, err := monitoring.NewUptimeCheckClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create uptime check client: %w", err)
	}

	tflog.Debug(ctx, "created monitoring client", map[string]interface{}{
		"project_id": cfg.ProjectID,
		"endpoint":   cfg.Endpoint,
	})

	return newWithAPI(api, cfg.ProjectID), nil
}

func newWithAPI(api uptimeCheckAPI, projectID string) *Client {
	return &Client{api: api, projectID: projectID}
}

// ProjectID returns the default project ID.
func (c *Client) ProjectID() string {
	return c.projectID
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.api.Close()
}
