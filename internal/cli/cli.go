package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/modkit/internal/app"
	"github.com/vk/modkit/internal/registry"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// runner holds the state shared by the commands of one invocation.
type runner struct {
	v          *viper.Viper
	configFile string
	modules    []registry.Module
	app        *app.App
}

// NewRootCmd returns the root command. The given modules replace the
// compiled-in set when non-empty.
func NewRootCmd(modules ...registry.Module) *cobra.Command {
	r := &runner{v: viper.New(), modules: modules}

	root := &cobra.Command{
		Use:   "modkit",
		Short: "Inspect plugin modules, their parameters and scripts",
		Long: TitleStyle.Render("modkit") + SubtitleStyle.Render(" - plugin module metadata toolkit") + `

modkit registers the compiled-in modules, overlays the HCL manifests found
under the configured manifests directory and reports what it knows about
their parameters. It also discovers script files and places them in a menu.

` + SubtitleStyle.Render("Examples:") + `
  modkit plugins                 List registered plugins by priority
  modkit params threshold.float  Show the parameters of one module
  modkit scripts ./scripts       Show the script menu of a directory
  modkit validate                Check modules against their manifests`,
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&r.configFile, "config", "", "config file (default is ./modkit.{toml,yaml,json})")
	flags.String("log-level", "", "logging level: debug, info, warn, error")
	flags.String("log-format", "", "log output format: text, json, logfmt")
	flags.String("manifests", "", "directory containing .hcl module manifests")

	for key, name := range map[string]string{
		app.KeyLogLevel:  "log-level",
		app.KeyLogFormat: "log-format",
		app.KeyManifests: "manifests",
	} {
		// Lookup cannot fail for flags defined just above.
		_ = r.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		r.pluginsCmd(),
		r.paramsCmd(),
		r.scriptsCmd(),
		r.validateCmd(),
	)
	return root
}

// setup loads the configuration and builds the app before any subcommand runs.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(r.v, r.configFile)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	a, err := app.NewApp(cmd.Context(), cmd.ErrOrStderr(), cfg, r.modules...)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	r.app = a
	return nil
}
