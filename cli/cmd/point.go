package cmd

import (
	"github.com/spf13/cobra"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/cli/commands/point"
)

func pointCmd() *cobra.Command {

	subCmd := &cobra.Command{
		Use:   "point",
		Short: "G2 point related commands",
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <rawHex>",
		Short: "To validate and decode a 192-byte raw G2 encoding",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			point.Decode(args[0])
		},
	}

	compressCmd := &cobra.Command{
		Use:   "compress <rawHex>",
		Short: "To compress a 192-byte raw G2 encoding",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			point.Compress(args[0])
		},
	}

	decompressCmd := &cobra.Command{
		Use:   "decompress <compressedHex>",
		Short: "To decompress a 96-byte compressed G2 encoding",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			point.Decompress(args[0])
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <compressedHexA> <compressedHexB>",
		Short: "To add two compressed G2 points",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			point.Add(args[0], args[1])
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul <compressedHex> <scalar>",
		Short: "To multiply a compressed G2 point by a scalar",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			point.Mul(args[0], args[1])
		},
	}

	mapCmd := &cobra.Command{
		Use:   "map <fieldElementHex>",
		Short: "To map a 96-byte extension field element onto the curve",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			point.Map(args[0])
		},
	}

	subCmd.AddCommand(decodeCmd)
	subCmd.AddCommand(compressCmd)
	subCmd.AddCommand(decompressCmd)
	subCmd.AddCommand(addCmd)
	subCmd.AddCommand(mulCmd)
	subCmd.AddCommand(mapCmd)

	return subCmd
}
