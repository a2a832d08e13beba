package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/corral/internal/boundaries/in"
	"github.com/bnema/corral/internal/logging"
)

func newContainerCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "container",
		Aliases: []string{"containers", "c"},
		Short:   "Manage container definitions and instances",
	}

	cmd.AddCommand(newContainerDefineCmd(s))
	cmd.AddCommand(newContainerDumpCmd(s))
	for _, a := range containerActions {
		cmd.AddCommand(newContainerActionCmd(s, a))
	}
	cmd.AddCommand(newContainerUpdateCmd(s))
	cmd.AddCommand(newContainerTagCmd(s))
	cmd.AddCommand(newContainerListCmd(s))

	return cmd
}

func newContainerDefineCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "define FILE",
		Short: "Validate a definition file and register the container",
		Long: `Validate a container definition file and copy it into the configuration
directory. When the definition names a group, the container is appended to
the group's members.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := s.kernel.Containers().Define(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printSuccess(out(cmd), "Defined container '%s'", name)
		},
	}
}

func newContainerDumpCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "dump NAME",
		Short: "Write a container's definition to NAME.yaml in the current directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := s.kernel.Containers().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path, err := h.Dump(cmd.Context())
			if err != nil {
				return err
			}
			return printSuccess(out(cmd), "Wrote container definition: %s", path)
		},
	}
}

// containerAction is a lifecycle command that takes a container name only.
type containerAction struct {
	use   string
	short string
	done  string
	run   func(in.ContainerHandle, context.Context) error
}

var containerActions = []containerAction{
	{use: "start", short: "Start a container, creating it when needed", done: "Started", run: in.ContainerHandle.Start},
	{use: "stop", short: "Stop a container", done: "Stopped", run: in.ContainerHandle.Stop},
	{use: "restart", short: "Stop then start a container", done: "Restarted", run: in.ContainerHandle.Restart},
	{use: "rebuild", short: "Stop, remove and recreate a container from its definition", done: "Rebuilt", run: in.ContainerHandle.Rebuild},
	{use: "remove", short: "Remove a container instance", done: "Removed", run: in.ContainerHandle.Remove},
}

func newContainerActionCmd(s *session, a containerAction) *cobra.Command {
	return &cobra.Command{
		Use:   a.use + " NAME",
		Short: a.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := logging.WithFields(cmd.Context(), logging.FieldLayer, "cli", logging.FieldContainer, args[0])

			h, err := s.kernel.Containers().Get(ctx, args[0])
			if err != nil {
				return err
			}

			log.Debug("running container action", logging.FieldAction, a.use)
			if err := a.run(h, ctx); err != nil {
				return err
			}
			return printSuccess(out(cmd), "%s container '%s'", a.done, h.Name())
		},
	}
}

func newContainerUpdateCmd(s *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Pull or build a container's image, then rebuild the container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			h, err := s.kernel.Containers().Get(ctx, args[0])
			if err != nil {
				return err
			}

			if err := s.confirmAction(yes, "Container '%s' will be stopped, removed and recreated. Continue?", h.Name()); err != nil {
				return err
			}

			if err := h.Update(ctx); err != nil {
				return err
			}
			if err := h.Rebuild(ctx); err != nil {
				return err
			}
			return printSuccess(out(cmd), "Updated container '%s'", h.Name())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newContainerTagCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tag NAME TAG",
		Short: "Set the image tag of a container definition",
		Long: `Set the image tag of a container definition and rewrite its file.
The running instance is not touched; run update or rebuild to apply it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := s.kernel.Containers().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := h.Tag(cmd.Context(), args[1]); err != nil {
				return err
			}
			return printSuccess(out(cmd), "Tagged container '%s' with '%s'", h.Name(), args[1])
		},
	}
}

func newContainerListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List defined containers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			containers := s.kernel.Containers()

			var rows []containerRow
			for _, name := range containers.List(ctx) {
				row := containerRow{Name: name}
				h, err := containers.Get(ctx, name)
				if err != nil {
					row.Err = err
					logging.FromContext(ctx).Warn("invalid definition", logging.FieldContainer, name, "error", err)
				} else {
					opts := h.Options()
					row.Image = opts.Image
					if opts.Tag != "" {
						row.Image += " (tag " + opts.Tag + ")"
					}
					row.Group = opts.Group
				}
				rows = append(rows, row)
			}

			return cliWriteLine(out(cmd), renderContainerTable(rows))
		},
	}
}
