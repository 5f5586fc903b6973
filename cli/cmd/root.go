package cmd

import (
	"github.com/spf13/cobra"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/cli/conf"
)

func Cmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bvs-g2",
		Short: "BLS12-381 G2 point codec and group operations.",
	}

	point := pointCmd()
	metrics := metricsCmd()

	rootCmd.AddCommand(point)
	rootCmd.AddCommand(metrics)

	rootCmd.Version = conf.GetVersion()

	return rootCmd
}
