package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd(s *session, info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and the engine API version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := out(cmd)

			color.New(color.FgGreen, color.Bold).Fprintf(w, "corral %s\n", info.Version)
			color.New(color.Faint).Fprintf(w, "Commit: %s\nBuild Date: %s\n", info.Commit, info.BuildDate)

			api, err := s.kernel.EngineVersion(cmd.Context())
			if err != nil {
				color.New(color.FgYellow).Fprintf(w, "Docker engine unreachable: %s\n", errorLine(err))
				return nil
			}
			color.New(color.FgBlue).Fprintf(w, "Docker API %s\n", api)
			return nil
		},
	}
}
