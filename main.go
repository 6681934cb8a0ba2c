// JurisNexo uptime check registrar
//
// Registers the HTTPS /health uptime check for the API host in Google Cloud
// Monitoring and prints the created check. Configuration comes from the
// environment: PROJECT_ID, HOST, PRODUCT_NAME, MONITORING_ENDPOINT, LOG_LEVEL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/jurisnexo/uptimecheck/internal/client"
	"github.com/jurisnexo/uptimecheck/internal/config"
	"github.com/jurisnexo/uptimecheck/internal/uptime"
)

// These will be set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg := config.Load()

	level, ok := config.LogLevel()
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "uptimecheck",
		Level:  level,
		Output: os.Stderr,
	})
	if !ok {
		logger.Warn("unrecognised LOG_LEVEL, using default", "value", os.Getenv("LOG_LEVEL"), "default", config.DefaultLogLevel.String())
	}
	logger.Debug("starting", "version", version, "commit", commit)

	ctx := context.Background()
	c, err := client.New(ctx, client.ClientConfig{
		ProjectID: cfg.ProjectID,
		Endpoint:  cfg.Endpoint,
		UserAgent: "jurisnexo-uptimecheck/" + version,
	})
	if err != nil {
		logger.Error("unable to create monitoring client", "error", err)
		return 1
	}
	defer c.Close()

	return run(ctx, logger, cfg, c, os.Stdout)
}

// run registers the check once and writes the confirmation to out.
// It returns the process exit code.
func run(ctx context.Context, logger hclog.Logger, cfg config.Config, creator uptime.Creator, out io.Writer) int {
	logger.Debug("registering uptime check",
		"parent", uptime.ProjectParent(cfg.ProjectID),
		"display_name", uptime.DisplayName(cfg.ProductName),
		"host", cfg.Host,
	)

	h, err := uptime.NewRegistrar(creator, cfg.ProductName).Register(ctx, cfg.ProjectID, cfg.Host)
	if err != nil {
		logger.Error("uptime check registration failed", "category", client.Category(err), "error", err)
		return 1
	}
	logger.Debug("created uptime check", "name", h.Name)

	for _, line := range h.Lines() {
		fmt.Fprintln(out, line)
	}
	return 0
}
