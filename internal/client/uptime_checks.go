package client

import (
	"context"
	"time"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/jurisnexo/uptimecheck/internal/uptime"
)

// Ensure Client satisfies the registrar's collaborator interface.
var _ uptime.Creator = &Client{}

// UptimeCheck is an uptime check as stored by the monitoring service.
type UptimeCheck struct {
	Name       string
	Descriptor uptime.Descriptor
}

// Handle returns the identifying fields of the check.
func (u *UptimeCheck) Handle() *uptime.Handle {
	return &uptime.Handle{
		Name:        u.Name,
		DisplayName: u.Descriptor.DisplayName,
		Host:        u.Descriptor.Host(),
	}
}

// CreateUptimeCheck creates a new uptime check under parent.
// The request is sent once; errors are returned as the SDK reports them.
func (c *Client) CreateUptimeCheck(ctx context.Context, parent string, d uptime.Descriptor) (*uptime.Handle, error) {
	cfg, err := c.api.CreateUptimeCheckConfig(ctx, &monitoringpb.CreateUptimeCheckConfigRequest{
		Parent:            parent,
		UptimeCheckConfig: toUptimeCheckConfig(d),
	})
	if err != nil {
		return nil, err
	}
	return fromUptimeCheckConfig(cfg).Handle(), nil
}

// GetUptimeCheck retrieves an uptime check by resource name.
func (c *Client) GetUptimeCheck(ctx context.Context, name string) (*UptimeCheck, error) {
	cfg, err := c.api.GetUptimeCheckConfig(ctx, &monitoringpb.GetUptimeCheckConfigRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return fromUptimeCheckConfig(cfg), nil
}

// DeleteUptimeCheck deletes an uptime check by resource name.
func (c *Client) DeleteUptimeCheck(ctx context.Context, name string) error {
	return c.api.DeleteUptimeCheckConfig(ctx, &monitoringpb.DeleteUptimeCheckConfigRequest{Name: name})
}

func toUptimeCheckConfig(d uptime.Descriptor) *monitoringpb.UptimeCheckConfig {
	labels := make(map[string]string, len(d.ResourceLabels))
	for k, v := range d.ResourceLabels {
		labels[k] = v
	}

	return &monitoringpb.UptimeCheckConfig{
		DisplayName: d.DisplayName,
		Resource: &monitoringpb.UptimeCheckConfig_MonitoredResource{
			MonitoredResource: &monitoredres.MonitoredResource{
				Type:   d.ResourceType,
				Labels: labels,
			},
		},
		CheckRequestType: &monitoringpb.UptimeCheckConfig_HttpCheck_{
			HttpCheck: &monitoringpb.UptimeCheckConfig_HttpCheck{
				Path:        d.HTTPPath,
				Port:        d.Port,
				UseSsl:      d.UseTLS,
				ValidateSsl: d.ValidateTLS,
			},
		},
		Period:  durationpb.New(time.Duration(d.PeriodSeconds) * time.Second),
		Timeout: durationpb.New(time.Duration(d.TimeoutSeconds) * time.Second),
	}
}

func fromUptimeCheckConfig(cfg *monitoringpb.UptimeCheckConfig) *UptimeCheck {
	res := cfg.GetMonitoredResource()
	httpCheck := cfg.GetHttpCheck()

	labels := make(map[string]string, len(res.GetLabels()))
	for k, v := range res.GetLabels() {
		labels[k] = v
	}

	return &UptimeCheck{
		Name: cfg.GetName(),
		Descriptor: uptime.Descriptor{
			DisplayName:    cfg.GetDisplayName(),
			ResourceType:   res.GetType(),
			ResourceLabels: labels,
			HTTPPath:       httpCheck.GetPath(),
			Port:           httpCheck.GetPort(),
			UseTLS:         httpCheck.GetUseSsl(),
			ValidateTLS:    httpCheck.GetValidateSsl(),
			PeriodSeconds:  int64(cfg.GetPeriod().AsDuration() / time.Second),
			TimeoutSeconds: int64(cfg.GetTimeout().AsDuration() / time.Second),
		},
	}
}
