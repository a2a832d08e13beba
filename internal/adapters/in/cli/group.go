package cli

import (
	"github.com/spf13/cobra"
)

func newGroupCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups", "g"},
		Short:   "Manage container groups",
		Long: `Manage groups of containers. Group operations run one container at a
time: start brings the master up first, stop takes it down last. A failure
stops the sequence and leaves the containers already handled as they are.`,
	}

	cmd.AddCommand(newGroupDefineCmd(s))
	cmd.AddCommand(newGroupInfoCmd(s))
	cmd.AddCommand(newGroupSetMasterCmd(s))
	cmd.AddCommand(newGroupStartCmd(s))
	cmd.AddCommand(newGroupStopCmd(s))
	cmd.AddCommand(newGroupUpdateCmd(s))
	cmd.AddCommand(newGroupRestartCmd(s))
	cmd.AddCommand(newGroupListCmd(s))

	return cmd
}

func newGroupDefineCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "define NAME",
		Short: "Define an empty group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.kernel.Groups().Add(cmd.Context(), args[0], nil); err != nil {
				return err
			}
			return printSuccess(out(cmd), "Defined group '%s'", args[0])
		},
	}
}

func newGroupInfoCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show a group's master and members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.kernel.Groups().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return cliWriteLine(out(cmd), renderGroupInfo(g))
		},
	}
}

func newGroupSetMasterCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set-master GROUP MASTER",
		Short: "Designate a defined container as the group's master",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.kernel.Orchestrator().SetMaster(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return printSuccess(out(cmd), "Set master of '%s' to '%s'", args[0], args[1])
		},
	}
}

func newGroupStartCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "start NAME",
		Short: "Start the master, then every other member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.kernel.Orchestrator().Start(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printSuccess(out(cmd), "Started group '%s'", args[0])
		},
	}
}

func newGroupStopCmd(s *session) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "stop NAME",
		Short: "Stop every member, then the master",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.kernel.Orchestrator().Stop(cmd.Context(), args[0], remove); err != nil {
				return err
			}
			if remove {
				return printSuccess(out(cmd), "Stopped and removed group '%s'", args[0])
			}
			return printSuccess(out(cmd), "Stopped group '%s'", args[0])
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "Remove each container after stopping it")
	return cmd
}

func newGroupUpdateCmd(s *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Refresh every image, then recreate the whole group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.kernel.Groups().Get(cmd.Context(), args[0]); err != nil {
				return err
			}

			if err := s.confirmAction(yes, "Every container of group '%s' will be stopped, removed and recreated. Continue?", args[0]); err != nil {
				return err
			}

			if err := s.kernel.Orchestrator().Update(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printSuccess(out(cmd), "Updated group '%s'", args[0])
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newGroupRestartCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "restart NAME",
		Short: "Not supported; use stop then start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.kernel.Orchestrator().Restart(cmd.Context(), args[0])
		},
	}
}

func newGroupListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List defined groups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := s.kernel.Groups().List(cmd.Context())
			return cliWriteLine(out(cmd), renderNameList("Defined groups", "No groups defined", names))
		},
	}
}
