package cmd

import (
	"fmt"
	"io"
	"os"

	"podpanel/internal/config"
	"podpanel/internal/containerizer"
	"podpanel/internal/panes"
	"podpanel/internal/tui/controller"
	"podpanel/internal/tui/view"
	"podpanel/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootCmd runs the interactive panel when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podpanel",
	Short: "Watch and control local containers from the terminal",
	Long: `podpanel lists the containers known to podman (or docker) and keeps the
list fresh while it is open. Move with up/down or j/k, start the selected
container with enter or l, stop it with s, and open a shell inside it with e.
Inside tmux or zellij the shell opens in a new pane.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// that are not about the command line itself (e.g. no runtime found)
	SilenceUsage: true,
	RunE:         runPanel,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "podpanel version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	addPanelFlags(rootCmd.PersistentFlags())
}

// addPanelFlags registers the flags that override the layered configuration.
func addPanelFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (overrides ~/.config/podpanel/config.yaml and ./.podpanel/config.yaml)")
	fs.String("runtime", "", `container runtime binary, or "auto" to detect podman then docker`)
	fs.String("shell", "", "shell started inside a container by the exec key")
	fs.Duration("poll-interval", 0, "how often the container list is refreshed")
	fs.String("pane", "", "where shells open: auto, tmux, zellij or inline")
	fs.Bool("debug", false, "log at debug level and show every log line in the status bar")
}

// loadPanelConfig merges the configuration files with the flags set in fs.
func loadPanelConfig(fs *pflag.FlagSet) (config.PanelConfig, error) {
	explicit, _ := fs.GetString("config")
	cfg, err := config.LoadConfig(explicit)
	if err != nil {
		return config.PanelConfig{}, err
	}

	if fs.Changed("runtime") {
		cfg.Runtime.Binary, _ = fs.GetString("runtime")
	}
	if fs.Changed("shell") {
		cfg.Runtime.Shell, _ = fs.GetString("shell")
	}
	if fs.Changed("poll-interval") {
		cfg.PollInterval, _ = fs.GetDuration("poll-interval")
	}
	if fs.Changed("pane") {
		pane, _ := fs.GetString("pane")
		cfg.Pane = config.PaneMode(pane)
	}
	if debug, _ := fs.GetBool("debug"); debug {
		cfg.Logging.Level = logging.LevelDebug.String()
	}

	if err := cfg.Validate(); err != nil {
		return config.PanelConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runPanel(cmd *cobra.Command, args []string) error {
	cfg, err := loadPanelConfig(cmd.Flags())
	if err != nil {
		return err
	}
	debug, _ := cmd.Flags().GetBool("debug")

	var mirror io.Writer
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		mirror = f
	}
	logChannel := logging.InitForTUI(logging.ParseLevel(cfg.Logging.Level), mirror)
	defer logging.CloseTUIChannel()

	rt, err := containerizer.New(cfg.Runtime)
	if err != nil {
		return err
	}
	opener, err := panes.Resolve(cfg.Pane, os.Getenv)
	if err != nil {
		return err
	}
	logging.Info("CLI", "Starting panel with %s, shells open via %s", rt.Binary, opener.Name())

	p := controller.NewProgram(controller.Options{
		Runner:       rt,
		Opener:       opener,
		Styles:       view.NewStyles(cfg.UI.AccentColor),
		PollInterval: cfg.PollInterval,
		LogChannel:   logChannel,
		Debug:        debug,
	})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running podpanel: %w", err)
	}
	return nil
}
