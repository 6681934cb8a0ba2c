package uptimecheck

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// UptimeCheckResourceModel describes the resource data model.
type UptimeCheckResourceModel struct {
	ID             types.String `tfsdk:"id"`
	ProjectID      types.String `tfsdk:"project_id"`
	Host           types.String `tfsdk:"host"`
	DisplayName    types.String `tfsdk:"display_name"`
	Path           types.String `tfsdk:"path"`
	Port           types.Int64  `tfsdk:"port"`
	UseTLS         types.Bool   `tfsdk:"use_tls"`
	ValidateTLS    types.Bool   `tfsdk:"validate_tls"`
	PeriodSeconds  types.Int64  `tfsdk:"period_seconds"`
	TimeoutSeconds types.Int64  `tfsdk:"timeout_seconds"`
}
