package provider

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/provider"
)

func TestProviderMetadata(t *testing.T) {
	resp := &provider.MetadataResponse{}
	New("1.2.3")().Metadata(context.Background(), provider.MetadataRequest{}, resp)

	if resp.TypeName != "jurisnexo" {
		t.Fatalf("unexpected type name %q", resp.TypeName)
	}
	if resp.Version != "1.2.3" {
		t.Fatalf("unexpected version %q", resp.Version)
	}
}

func TestProviderSchema(t *testing.T) {
	ctx := context.Background()
	resp := &provider.SchemaResponse{}
	New("test")().Schema(ctx, provider.SchemaRequest{}, resp)

	if diags := resp.Schema.ValidateImplementation(ctx); diags.HasError() {
		t.Fatalf("schema implementation: %v", diags)
	}
	for _, attr := range []string{"project_id", "endpoint", "product_name"} {
		if _, ok := resp.Schema.Attributes[attr]; !ok {
			t.Errorf("missing attribute %q", attr)
		}
	}
}

func TestProviderResources(t *testing.T) {
	resources := New("test")().Resources(context.Background())
	if len(resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(resources))
	}
}
