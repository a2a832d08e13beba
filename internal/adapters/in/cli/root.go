// Package cli implements the command-line adapter for corral.
// Commands parse arguments, call the use cases through the app kernel and
// render results; they hold no business logic.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/corral/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/corral/internal/app"
	"github.com/bnema/corral/internal/config"
	"github.com/bnema/corral/internal/logging"
)

// VersionInfo is set at build time.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// session carries what every command needs once flags are parsed.
type session struct {
	viper  *viper.Viper
	kernel *app.Kernel
	debug  bool

	confirm    func(message string) (bool, error)
	isTerminal func() bool
}

func newSession() *session {
	return &session{
		viper:      config.New(),
		confirm:    surveyConfirm,
		isTerminal: stdinIsTerminal,
	}
}

func newRootCmd(s *session, info VersionInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "corral",
		Short: "Manage containers and container groups on the local Docker engine",
		Long: `corral keeps container definitions as YAML files under a configuration
directory and drives their lifecycle on the local Docker engine.

Containers can be collected into groups with an optional master: group
operations start the master first and stop it last.`,
		Version:           info.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.open,
	}
	rootCmd.SetVersionTemplate("corral {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&s.debug, "debug", false, "Enable debug logging")
	flags.String("config-dir", "", "Configuration directory (default ~/.config/corral)")
	flags.String("docker-host", "", "Docker engine address (default from DOCKER_HOST)")

	rootCmd.AddCommand(newContainerCmd(s))
	rootCmd.AddCommand(newGroupCmd(s))
	rootCmd.AddCommand(newVersionCmd(s, info))

	return rootCmd
}

// open loads configuration, installs the logger and wires the kernel.
func (s *session) open(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(s.viper, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(s.viper)
	if err != nil {
		return err
	}
	if s.debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.Setup(logging.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(ctx)

	s.kernel, err = app.NewKernel(ctx, cfg, logger)
	return err
}

// close releases the kernel. It runs whether or not the command failed.
func (s *session) close() error {
	k := s.kernel
	s.kernel = nil
	return k.Close()
}

// run executes rootCmd and then closes the session.
func (s *session) run(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, s.close())
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, info VersionInfo) int {
	s := newSession()
	rootCmd := newRootCmd(s, info)
	rootCmd.SetArgs(args)

	if err := s.run(ctx, rootCmd); err != nil {
		_ = cliWriteLine(os.Stderr, styles.RenderError(errorLine(err)))
		return 1
	}
	return 0
}

// errorLine flattens err to the single line printed on failure.
func errorLine(err error) string {
	var parts []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "; ")
}

var errCancelled = errors.New("operation cancelled by user")

// confirmAction asks before a destructive operation. Asking is skipped when
// yes is set or stdin is not a terminal.
func (s *session) confirmAction(yes bool, format string, args ...any) error {
	if yes || !s.isTerminal() {
		return nil
	}

	ok, err := s.confirm(fmt.Sprintf(format, args...))
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	if !ok {
		return errCancelled
	}
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
