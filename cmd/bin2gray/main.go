package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bin2gray <input-file> <output-image>",
	Short: "Render a 1,000,000-byte binary file as a 1000x1000 grayscale image",
	Long: `bin2gray reads a binary file of exactly 1,000,000 bytes and writes it as a
1000x1000 grayscale image, one byte per pixel in row-major order. The output
format is inferred from the destination extension (.png, .bmp, .gif, .tif,
.tiff, .jpg, .jpeg).`,
	Args:          exactArgs(2),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// usageError marks a bad command line, which exits with code 2 instead of 1.
type usageError struct {
	msg   string
	usage string
}

func (e *usageError) Error() string { return e.msg }

// exactArgs is cobra.ExactArgs, except the failure is tagged as a usage
// error and carries the offending command's usage text.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{
				msg:   fmt.Sprintf("accepts %d arg(s), received %d", n, len(args)),
				usage: cmd.UsageString(),
			}
		}
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.msg)
			fmt.Fprint(os.Stderr, uerr.usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
