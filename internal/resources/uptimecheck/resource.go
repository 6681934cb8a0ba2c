package uptimecheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/boolplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/jurisnexo/uptimecheck/internal/client"
	"github.com/jurisnexo/uptimecheck/internal/uptime"
)

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ resource.Resource                = &UptimeCheckResource{}
	_ resource.ResourceWithConfigure   = &UptimeCheckResource{}
	_ resource.ResourceWithImportState = &UptimeCheckResource{}
)

// Google Cloud project IDs: 6-30 chars, lowercase letters, digits and hyphens.
var projectIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

// ProviderData is what the provider hands to resources on Configure.
type ProviderData struct {
	Client      *client.Client
	ProductName string
}

// uptimeCheckClient is the part of *client.Client the resource uses.
type uptimeCheckClient interface {
	uptime.Creator
	ProjectID() string
	GetUptimeCheck(ctx context.Context, name string) (*client.UptimeCheck, error)
	DeleteUptimeCheck(ctx context.Context, name string) error
}

var _ uptimeCheckClient = &client.Client{}

// NewUptimeCheckResource creates a new uptime check resource.
func NewUptimeCheckResource() resource.Resource {
	return &UptimeCheckResource{}
}

// UptimeCheckResource defines the resource implementation.
type UptimeCheckResource struct {
	client    uptimeCheckClient
	registrar *uptime.Registrar
}

func (r *UptimeCheckResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_uptime_check"
}

func (r *UptimeCheckResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description:         "Manages the HTTPS health uptime check for an API host.",
		MarkdownDescription: "Manages the HTTPS health uptime check for an API host. The check probes `https://<host>:443/health` every 60 seconds with a 10 second timeout and validates the TLS certificate.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Description: "The resource name of the uptime check (projects/<project>/uptimeCheckConfigs/<id>).",
				Computed:    true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"project_id": schema.StringAttribute{
				Description: "The project the check is created in. Defaults to the provider project.",
				Optional:    true,
				Computed:    true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
					stringplanmodifier.UseStateForUnknown(),
				},
				Validators: []validator.String{
					stringvalidator.RegexMatches(projectIDRegex, "must be a valid Google Cloud project ID"),
				},
			},
			"host": schema.StringAttribute{
				Description: "The hostname to probe, without scheme, port or path.",
				Required:    true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
				Validators: []validator.String{
					stringvalidator.LengthBetween(1, 253),
					stringvalidator.RegexMatches(uptime.HostPattern, "must be a DNS hostname"),
				},
			},
			"display_name": schema.StringAttribute{
				Description: "The display name shown in the Cloud Monitoring console.",
				Computed:    true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"path": schema.StringAttribute{
				Description: "The probed HTTP path.",
				Computed:    true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"port": schema.Int64Attribute{
				Description: "The probed port.",
				Computed:    true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"use_tls": schema.BoolAttribute{
				Description: "Whether the probe uses HTTPS.",
				Computed:    true,
				PlanModifiers: []planmodifier.Bool{
					boolplanmodifier.UseStateForUnknown(),
				},
			},
			"validate_tls": schema.BoolAttribute{
				Description: "Whether the probe validates the TLS certificate.",
				Computed:    true,
				PlanModifiers: []planmodifier.Bool{
					boolplanmodifier.UseStateForUnknown(),
				},
			},
			"period_seconds": schema.Int64Attribute{
				Description: "Seconds between probes.",
				Computed:    true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"timeout_seconds": schema.Int64Attribute{
				Description: "Probe timeout in seconds.",
				Computed:    true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
		},
	}
}

func (r *UptimeCheckResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	data, ok := req.ProviderData.(*ProviderData)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *uptimecheck.ProviderData, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	r.client = data.Client
	r.registrar = uptime.NewRegistrar(data.Client, data.ProductName)
}

func (r *UptimeCheckResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data UptimeCheckResourceModel
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	projectID := r.client.ProjectID()
	if !data.ProjectID.IsNull() && !data.ProjectID.IsUnknown() {
		projectID = data.ProjectID.ValueString()
	}
	data.ProjectID = types.StringValue(projectID)

	handle, err := r.registrar.Register(ctx, projectID, data.Host.ValueString())
	if err != nil {
		resp.Diagnostics.AddError(
			"Error Creating Uptime Check",
			"Could not create uptime check ("+client.Category(err)+"): "+err.Error(),
		)
		return
	}

	// Read after create to pick up what the service stored
	check, err := r.client.GetUptimeCheck(ctx, handle.Name)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error Reading Uptime Check",
			"Created uptime check "+handle.Name+" but could not read it back: "+err.Error(),
		)
		return
	}

	mapUptimeCheckToModel(check, &data)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *UptimeCheckResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data UptimeCheckResourceModel
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Debug(ctx, "Reading uptime check", map[string]interface{}{
		"id": data.ID.ValueString(),
	})

	check, err := r.client.GetUptimeCheck(ctx, data.ID.ValueString())
	if err != nil {
		if client.IsNotFound(err) {
			tflog.Debug(ctx, "Uptime check not found, removing from state", map[string]interface{}{
				"id": data.ID.ValueString(),
			})
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(
			"Error Reading Uptime Check",
			"Could not read uptime check "+data.ID.ValueString()+": "+err.Error(),
		)
		return
	}

	mapUptimeCheckToModel(check, &data)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// Update only runs when nothing replaceable changed, so the plan is already the state.
func (r *UptimeCheckResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data UptimeCheckResourceModel
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *UptimeCheckResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data UptimeCheckResourceModel
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Debug(ctx, "Deleting uptime check", map[string]interface{}{
		"id": data.ID.ValueString(),
	})

	err := r.client.DeleteUptimeCheck(ctx, data.ID.ValueString())
	if err != nil {
		if client.IsNotFound(err) {
			tflog.Debug(ctx, "Uptime check already deleted", map[string]interface{}{
				"id": data.ID.ValueString(),
			})
			return
		}
		resp.Diagnostics.AddError(
			"Error Deleting Uptime Check",
			"Could not delete uptime check, unexpected error: "+err.Error(),
		)
		return
	}

	tflog.Debug(ctx, "Deleted uptime check", map[string]interface{}{
		"id": data.ID.ValueString(),
	})
}

func (r *UptimeCheckResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	tflog.Debug(ctx, "Importing uptime check", map[string]interface{}{
		"id": req.ID,
	})
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}

// mapUptimeCheckToModel maps a stored uptime check to the Terraform model.
// A known project_id is kept as is: the service may name the check by project number.
func mapUptimeCheckToModel(check *client.UptimeCheck, data *UptimeCheckResourceModel) {
	d := check.Descriptor

	data.ID = types.StringValue(check.Name)
	if data.ProjectID.IsNull() || data.ProjectID.IsUnknown() || data.ProjectID.ValueString() == "" {
		// Import only carries the id
		data.ProjectID = types.StringValue(projectFromName(check.Name))
	}
	data.Host = types.StringValue(d.Host())
	data.DisplayName = types.StringValue(d.DisplayName)
	data.Path = types.StringValue(d.HTTPPath)
	data.Port = types.Int64Value(int64(d.Port))
	data.UseTLS = types.BoolValue(d.UseTLS)
	data.ValidateTLS = types.BoolValue(d.ValidateTLS)
	data.PeriodSeconds = types.Int64Value(d.PeriodSeconds)
	data.TimeoutSeconds = types.Int64Value(d.TimeoutSeconds)
}

// projectFromName extracts <project> from projects/<project>/uptimeCheckConfigs/<id>.
func projectFromName(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) >= 2 && parts[0] == "projects" {
		return parts[1]
	}
	return ""
}
