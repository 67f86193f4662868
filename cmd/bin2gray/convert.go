package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/bin2gray/internal/codec"
	"github.com/davesmith10/bin2gray/internal/pipeline"
	"github.com/spf13/cobra"
)

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := args[1]

	format, err := codec.FormatForPath(outputPath)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(inputData, pipeline.Options{Format: format})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Converted %d bytes → %dx%d grayscale %s\n", len(inputData), result.Width, result.Height, format)
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}
