package cmd

import (
	"github.com/spf13/cobra"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/cli/commands/monitor"
)

func metricsCmd() *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "metrics",
		Short: "To serve the prometheus metrics endpoint",
		Run: func(cmd *cobra.Command, args []string) {
			monitor.Serve()
		},
	}

	return subCmd
}
