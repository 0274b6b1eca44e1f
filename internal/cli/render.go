package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/pipeline"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

// renderFlags holds the flags shared by render and demo. Only flags the
// user set override the configured defaults.
type renderFlags struct {
	output  string
	formats string
	ticks   string
	marks   bool
	legend  bool
	scale   float64
	noCache bool
	refresh bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format), base path (several), or - for stdout")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&f.ticks, "ticks", "", "y-axis ticks: fixed (default), linear")
	cmd.Flags().BoolVar(&f.marks, "marks", false, "draw per-series bars")
	cmd.Flags().BoolVar(&f.legend, "legend", false, "draw a series legend")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixel scale (default 2)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results and re-render")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("ticks", cobra.FixedCompletions(
		[]string{string(geometry.TicksFixed), string(geometry.TicksLinear)}, cobra.ShellCompDirectiveNoFileComp))
}

// options overlays the set flags on base.
func (f *renderFlags) options(cmd *cobra.Command, base pipeline.Options) (pipeline.Options, error) {
	opts := base
	opts.Formats = slices.Clone(base.Formats)

	if formats := parseFormats(f.formats); formats != nil {
		if err := pipeline.ValidateFormats(formats); err != nil {
			return opts, err
		}
		opts.Formats = formats
	}
	if cmd.Flags().Changed("ticks") {
		mode, err := geometry.ParseTickMode(f.ticks)
		if err != nil {
			return opts, err
		}
		opts.Ticks = mode
	}
	if cmd.Flags().Changed("marks") {
		opts.Marks = f.marks
	}
	if cmd.Flags().Changed("legend") {
		opts.Legend = f.legend
	}
	if cmd.Flags().Changed("scale") {
		opts.Scale = f.scale
	}
	opts.Refresh = f.refresh
	return opts, opts.ValidateAndSetDefaults()
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a chart spec (JSON or TOML) to SVG, PNG or a JSON scene",
		Long: `Render a chart spec to one or more output formats.

The input format follows the file extension: .toml is read as TOML, anything
else as JSON. Outputs are written next to the input unless -o is given.`,
		Example: `  histoscene render rewards.json
  histoscene render rewards.toml -f svg,png --ticks linear --marks
  histoscene render rewards.json -o - > chart.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, c.Config.Render)
			if err != nil {
				return err
			}
			spec, err := chart.ImportFile(args[0])
			if err != nil {
				return err
			}
			base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			if err := checkOverwrite(args[0], flags.output, base, opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), spec, args[0], base, &flags, opts)
		},
	}
	flags.register(cmd)
	return cmd
}

// runRender executes the pipeline and writes every requested artifact.
func (c *CLI) runRender(ctx context.Context, spec chart.ChartSpec, label, base string, flags *renderFlags, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	paths, err := outputPaths(flags.output, base, opts.Formats)
	if err != nil {
		return err
	}
	toStdout := paths[opts.Formats[0]] == stdoutPath

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", label))
	spinner.Start()

	res, err := runner.Execute(ctx, spec, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for _, format := range opts.Formats {
		if err := writeOutput(paths[format], res.Artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
	}
	prog.done("Rendered " + label)

	if toStdout {
		return nil
	}
	printSuccess("Rendered %s", StyleHighlight.Render(label))
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(res.Stats.Categories, res.Stats.Series, res.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to its destination. A single format goes to
// output verbatim; several formats share output as a base path.
func outputPaths(output, base string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths, nil
	}
	if output == stdoutPath {
		return nil, errors.New(errors.ErrCodeInvalidInput, "stdout output takes a single format, got %d", len(formats))
	}
	b := basePath(output, base)
	for _, f := range formats {
		paths[f] = b + "." + f
	}
	return paths, nil
}

// checkOverwrite refuses destinations that would replace the input file,
// such as "render chart.json -f json".
func checkOverwrite(input, output, base string, formats []string) error {
	paths, err := outputPaths(output, base, formats)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if p != stdoutPath && filepath.Clean(p) == filepath.Clean(input) {
			return errors.New(errors.ErrCodeInvalidInput, "output %s would overwrite the input; pass -o", p)
		}
	}
	return nil
}

// basePath strips a known format extension from output, or returns fallback
// when output is empty.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeOutput(path string, data []byte) error {
	var w io.Writer = os.Stdout
	if path != stdoutPath {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := w.Write(data)
	return err
}
