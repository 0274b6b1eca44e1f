package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/histoscene/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

Routes:
  GET  /healthz          liveness and build information
  GET  /v1/demos         built-in dataset names
  GET  /v1/demo/{name}   render a built-in dataset
  POST /v1/render        render the chart spec in the request body

Render routes take the query parameters format, ticks, marks, legend and
scale. Defaults come from the [render] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			defaults := c.Config.Render
			if err := defaults.ValidateAndSetDefaults(); err != nil {
				return err
			}

			srv := server.New(runner,
				server.WithLogger(c.Logger),
				server.WithDefaults(defaults),
				server.WithMaxBodyBytes(c.Config.Server.MaxBodyBytes),
			)

			printInfo("Serving %s", StyleHighlight.Render(appName))
			printKeyValue("Address", addr)
			printKeyValue("Cache", cacheLabel(c.Config, noCache))
			printNewline()
			printNextStep("Try", "curl http://localhost"+portOf(addr)+"/v1/demo/rewards")

			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func cacheLabel(cfg Config, noCache bool) string {
	if noCache || cfg.Cache.Backend == "" {
		return "none"
	}
	return cfg.Cache.Backend
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return ""
}
