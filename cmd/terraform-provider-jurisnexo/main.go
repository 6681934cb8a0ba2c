// JurisNexo Terraform Provider
//
// This provider manages the JurisNexo API health uptime check via Terraform.
// Supports: jurisnexo_uptime_check
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"

	"github.com/jurisnexo/uptimecheck/internal/provider"
)

// These will be set by GoReleaser during build
var (
	version = "dev"
)

func main() {
	var debug bool

	flag.BoolVar(&debug, "debug", false, "set to true to run the provider with support for debuggers like delve")
	flag.Parse()

	opts := providerserver.ServeOpts{
		Address: "registry.terraform.io/jurisnexo/jurisnexo",
		Debug:   debug,
	}

	err := providerserver.Serve(context.Background(), provider.New(version), opts)
	if err != nil {
		log.Fatal(err.Error())
	}
}
