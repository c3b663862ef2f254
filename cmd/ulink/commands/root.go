// Package commands implements the CLI commands for ulink.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ulink/internal/app"
	"go.trai.ch/ulink/internal/build"
	"go.trai.ch/ulink/internal/core/domain"
)

// App is the application surface driven by the commands.
type App interface {
	ConfigureLogging(opts app.LogOptions)
	Generate(ctx context.Context, opts app.Options) (*domain.PassReport, error)
	Watch(ctx context.Context, opts app.Options) error
	List(ctx context.Context, opts app.Options) ([]app.RootListing, error)
	Clean(ctx context.Context, opts app.Options) ([]string, error)
	Migrate(ctx context.Context, opts app.Options, mopts app.MigrateOptions) (*app.MigrateReport, error)
	Runtime(ctx context.Context, opts app.Options, dir string) (string, error)
}

// CLI represents the command line interface for ulink.
type CLI struct {
	app     App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ulink",
		Short:         "Generate controller bindings for UI elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("project", "p", "", "Host project directory (default: working directory)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Settings file (default: <project>/ulink.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages and pass timings")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		c.app.ConfigureLogging(app.LogOptions{Verbose: verbose, JSON: jsonLogs})
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newMigrateCmd())
	rootCmd.AddCommand(c.newRuntimeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the standard and error output of the root command.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func options(cmd *cobra.Command) app.Options {
	project, _ := cmd.Flags().GetString("project")
	config, _ := cmd.Flags().GetString("config")
	return app.Options{ProjectDir: project, ConfigPath: config}
}
