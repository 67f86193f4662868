package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/bin2gray/internal/codec"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <file>",
	Short: "Inspect a converted image",
	Args:  exactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, formatName, err := codec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	bounds := img.Bounds()
	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", formatName)
	fmt.Printf("Dimensions: %d x %d\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("File size:  %d bytes (%.1f KB)\n", info.Size(), float64(info.Size())/1024)

	return nil
}
