package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/jurisnexo/uptimecheck/internal/client"
	"github.com/jurisnexo/uptimecheck/internal/config"
	uptimeCheckResource "github.com/jurisnexo/uptimecheck/internal/resources/uptimecheck"
)

// Ensure JurisNexoProvider satisfies various provider interfaces.
var _ provider.Provider = &JurisNexoProvider{}

// JurisNexoProvider defines the provider implementation.
type JurisNexoProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and run locally, and "test" when running acceptance
	// testing.
	version string
}

// JurisNexoProviderModel describes the provider data model.
type JurisNexoProviderModel struct {
	ProjectID   types.String `tfsdk:"project_id"`
	Endpoint    types.String `tfsdk:"endpoint"`
	ProductName types.String `tfsdk:"product_name"`
}

func (p *JurisNexoProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "jurisnexo"
	resp.Version = p.version
}

func (p *JurisNexoProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "Manage JurisNexo uptime checks in Google Cloud Monitoring.",
		MarkdownDescription: `
The JurisNexo provider registers the API health uptime check in Google Cloud Monitoring.

## Authentication

The provider uses Application Default Credentials. Run ` + "`gcloud auth application-default login`" + `
or set ` + "`GOOGLE_APPLICATION_CREDENTIALS`" + ` to a service account key file.

## Example Usage

` + "```hcl" + `
provider "jurisnexo" {
  project_id = "jurisnexo-prod"
}

resource "jurisnexo_uptime_check" "api" {
  host = "api.jurisnexo.com"
}
` + "```" + `
`,
		Attributes: map[string]schema.Attribute{
			"project_id": schema.StringAttribute{
				Description:         "Default Google Cloud project for uptime checks. Can also be set via PROJECT_ID environment variable. Defaults to jurisnexo-prod.",
				MarkdownDescription: "Default Google Cloud project for uptime checks. Can also be set via `PROJECT_ID` environment variable. Defaults to `jurisnexo-prod`.",
				Optional:            true,
			},
			"endpoint": schema.StringAttribute{
				Description:         "Cloud Monitoring API endpoint override. Can also be set via MONITORING_ENDPOINT environment variable.",
				MarkdownDescription: "Cloud Monitoring API endpoint override. Can also be set via `MONITORING_ENDPOINT` environment variable.",
				Optional:            true,
			},
			"product_name": schema.StringAttribute{
				Description:         "Product name used in the check display name. Can also be set via PRODUCT_NAME environment variable. Defaults to JurisNexo.",
				MarkdownDescription: "Product name used in the check display name (`<product> API Health`). Can also be set via `PRODUCT_NAME` environment variable. Defaults to `JurisNexo`.",
				Optional:            true,
			},
		},
	}
}

func (p *JurisNexoProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	tflog.Info(ctx, "Configuring JurisNexo provider")

	var data JurisNexoProviderModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Environment and defaults first, explicit attributes win
	cfg := config.Load()
	if !data.ProjectID.IsNull() && data.ProjectID.ValueString() != "" {
		cfg.ProjectID = data.ProjectID.ValueString()
	}
	if !data.Endpoint.IsNull() {
		cfg.Endpoint = data.Endpoint.ValueString()
	}
	if !data.ProductName.IsNull() && data.ProductName.ValueString() != "" {
		cfg.ProductName = data.ProductName.ValueString()
	}

	tflog.Debug(ctx, "Creating monitoring client", map[string]interface{}{
		"project_id": cfg.ProjectID,
		"endpoint":   cfg.Endpoint,
	})

	c, err := client.New(ctx, client.ClientConfig{
		ProjectID: cfg.ProjectID,
		Endpoint:  cfg.Endpoint,
		UserAgent: "terraform-provider-jurisnexo/" + p.version,
	})
	if err != nil {
		resp.Diagnostics.AddError(
			"Unable to Create Cloud Monitoring Client",
			"An unexpected error occurred when creating the Cloud Monitoring client. "+
				"Check that Application Default Credentials are available.\n\n"+
				"Client Error: "+err.Error(),
		)
		return
	}

	tflog.Info(ctx, "JurisNexo provider configured", map[string]interface{}{
		"project_id": c.ProjectID(),
	})

	resp.ResourceData = &uptimeCheckResource.ProviderData{
		Client:      c,
		ProductName: cfg.ProductName,
	}
}

func (p *JurisNexoProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		uptimeCheckResource.NewUptimeCheckResource,
	}
}

func (p *JurisNexoProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{}
}

// New returns a new provider factory function.
func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &JurisNexoProvider{
			version: version,
		}
	}
}
