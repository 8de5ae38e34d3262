package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"podpanel/internal/containerizer"
	"podpanel/internal/tui/controller"
	"podpanel/internal/tui/model"
	"podpanel/internal/tui/view"
	"podpanel/pkg/logging"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the container list once and exit",
		Long: `Runs the same listing the panel shows, prints one line per container
and exits. Output carries no styling so it can be piped.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadPanelConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logging.InitForCLI(logging.ParseLevel(cfg.Logging.Level), cmd.ErrOrStderr())

	rt, err := containerizer.New(cfg.Runtime)
	if err != nil {
		return err
	}
	return printRoster(cmd.Context(), cmd.OutOrStdout(), rt)
}

// printRoster lists the containers through runner and writes them the way the
// panel renders them, without styles.
func printRoster(ctx context.Context, w io.Writer, runner controller.Runner) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res := runner.Run(ctx, runner.ListArgs())
	if !res.OK() {
		if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
			return fmt.Errorf("listing containers failed: %w: %s", res.Err, msg)
		}
		return fmt.Errorf("listing containers failed: %w", res.Err)
	}
	logging.Debug("CLI", "Listing returned %d bytes", len(res.Stdout))

	s := model.NewState()
	s.Refresh(res.Stdout)
	out := view.Render(*s, view.PlainStyles())
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

var _ controller.Runner = containerizer.Runtime{}
