package uptimecheck

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jurisnexo/uptimecheck/internal/client"
	"github.com/jurisnexo/uptimecheck/internal/uptime"
)

type fakeClient struct {
	checks    map[string]*client.UptimeCheck
	deleteErr error
	deleted   []string
}

func (f *fakeClient) CreateUptimeCheck(ctx context.Context, parent string, d uptime.Descriptor) (*uptime.Handle, error) {
	check := &client.UptimeCheck{Name: parent + "/uptimeCheckConfigs/new", Descriptor: d}
	f.checks[check.Name] = check
	return check.Handle(), nil
}

func (f *fakeClient) ProjectID() string {
	return "jurisnexo-prod"
}

func (f *fakeClient) GetUptimeCheck(ctx context.Context, name string) (*client.UptimeCheck, error) {
	check, ok := f.checks[name]
	if !ok {
		return nil, status.Error(codes.NotFound, "uptime check not found")
	}
	return check, nil
}

func (f *fakeClient) DeleteUptimeCheck(ctx context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return f.deleteErr
}

func newTestResource(c *fakeClient) *UptimeCheckResource {
	return &UptimeCheckResource{client: c, registrar: uptime.NewRegistrar(c, "JurisNexo")}
}

func testState(t *testing.T, data UptimeCheckResourceModel) tfsdk.State {
	t.Helper()
	ctx := context.Background()

	schemaResp := &resource.SchemaResponse{}
	NewUptimeCheckResource().Schema(ctx, resource.SchemaRequest{}, schemaResp)

	state := tfsdk.State{
		Schema: schemaResp.Schema,
		Raw:    tftypes.NewValue(schemaResp.Schema.Type().TerraformType(ctx), nil),
	}
	if diags := state.Set(ctx, &data); diags.HasError() {
		t.Fatalf("setting state: %v", diags)
	}
	return state
}

func stateModel(t *testing.T, id, projectID string) UptimeCheckResourceModel {
	t.Helper()
	return UptimeCheckResourceModel{
		ID:             types.StringValue(id),
		ProjectID:      types.StringValue(projectID),
		Host:           types.StringValue("api.jurisnexo.com"),
		DisplayName:    types.StringValue("JurisNexo API Health"),
		Path:           types.StringValue("/health"),
		Port:           types.Int64Value(443),
		UseTLS:         types.BoolValue(true),
		ValidateTLS:    types.BoolValue(true),
		PeriodSeconds:  types.Int64Value(60),
		TimeoutSeconds: types.Int64Value(10),
	}
}

func TestReadRemovesMissingCheck(t *testing.T) {
	ctx := context.Background()
	r := newTestResource(&fakeClient{checks: map[string]*client.UptimeCheck{}})
	state := testState(t, stateModel(t, "projects/jurisnexo-prod/uptimeCheckConfigs/gone", "jurisnexo-prod"))

	resp := &resource.ReadResponse{State: state}
	r.Read(ctx, resource.ReadRequest{State: state}, resp)

	if resp.Diagnostics.HasError() {
		t.Fatalf("unexpected diagnostics: %v", resp.Diagnostics)
	}
	if !resp.State.Raw.IsNull() {
		t.Fatal("expected resource to be removed from state")
	}
}

func TestReadKeepsConfiguredProjectID(t *testing.T) {
	ctx := context.Background()
	name := "projects/123456789/uptimeCheckConfigs/abc"
	c := &fakeClient{checks: map[string]*client.UptimeCheck{
		name: {Name: name, Descriptor: uptime.NewDescriptor("JurisNexo", "api.jurisnexo.com")},
	}}
	r := newTestResource(c)
	state := testState(t, stateModel(t, name, "jurisnexo-prod"))

	resp := &resource.ReadResponse{State: state}
	r.Read(ctx, resource.ReadRequest{State: state}, resp)

	if resp.Diagnostics.HasError() {
		t.Fatalf("unexpected diagnostics: %v", resp.Diagnostics)
	}
	var got UptimeCheckResourceModel
	if diags := resp.State.Get(ctx, &got); diags.HasError() {
		t.Fatalf("reading state: %v", diags)
	}
	if got.ProjectID.ValueString() != "jurisnexo-prod" {
		t.Fatalf("expected project_id to stay jurisnexo-prod, got %q", got.ProjectID.ValueString())
	}
	if got.ID.ValueString() != name {
		t.Fatalf("unexpected id %q", got.ID.ValueString())
	}
}

func TestDeleteToleratesMissingCheck(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{deleteErr: status.Error(codes.NotFound, "uptime check not found")}
	r := newTestResource(c)
	state := testState(t, stateModel(t, "projects/jurisnexo-prod/uptimeCheckConfigs/gone", "jurisnexo-prod"))

	resp := &resource.DeleteResponse{State: state}
	r.Delete(ctx, resource.DeleteRequest{State: state}, resp)

	if resp.Diagnostics.HasError() {
		t.Fatalf("unexpected diagnostics: %v", resp.Diagnostics)
	}
	if len(c.deleted) != 1 || c.deleted[0] != "projects/jurisnexo-prod/uptimeCheckConfigs/gone" {
		t.Fatalf("unexpected delete calls %v", c.deleted)
	}
}

func TestDeleteReportsOtherErrors(t *testing.T) {
	ctx := context.Background()
	r := newTestResource(&fakeClient{deleteErr: errors.New("permission denied")})
	state := testState(t, stateModel(t, "projects/jurisnexo-prod/uptimeCheckConfigs/x", "jurisnexo-prod"))

	resp := &resource.DeleteResponse{State: state}
	r.Delete(ctx, resource.DeleteRequest{State: state}, resp)

	if !resp.Diagnostics.HasError() {
		t.Fatal("expected diagnostics for a non-NotFound delete error")
	}
}

func TestMapUptimeCheckToModelImportUsesName(t *testing.T) {
	check := &client.UptimeCheck{
		Name:       "projects/123456789/uptimeCheckConfigs/abc",
		Descriptor: uptime.NewDescriptor("JurisNexo", "api.jurisnexo.com"),
	}
	data := UptimeCheckResourceModel{ID: types.StringValue(check.Name), ProjectID: types.StringNull()}

	mapUptimeCheckToModel(check, &data)

	if data.ProjectID.ValueString() != "123456789" {
		t.Fatalf("expected project from name on import, got %q", data.ProjectID.ValueString())
	}
}
