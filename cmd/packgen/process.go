// process.go implements the batch conversion command: each DAT file in
// turn is decoded, expanded, and rendered, and the outputs are written
// next to each other in the output directory.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KennedyTaragon/Packing-List-Generator/formats"
)

var processOutDir string

var processCmd = &cobra.Command{
	Use:   "process <file.dat> [more files...]",
	Short: "Convert order files into packing-list workbooks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processOutDir, "output", "o", ".",
		"directory for generated packing lists")
	rootCmd.AddCommand(processCmd)
}

// runProcess converts the given files strictly in sequence. A failure on
// one file is logged and the next file proceeds; the command only returns
// an error if every file failed.
func runProcess(cmd *cobra.Command, args []string) error {
	processed := 0
	for _, path := range args {
		if err := processFile(path, processOutDir); err != nil {
			slog.Error("file failed", "file", path, "err", err)
			continue
		}
		processed++
	}
	if processed == 0 {
		return fmt.Errorf("no files processed successfully")
	}
	fmt.Printf("Processed %d/%d file(s)\n", processed, len(args))
	return nil
}

// processFile converts one order file and writes its outputs.
func processFile(path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	conv := formats.Detect(filepath.Base(path), data)
	if conv == nil {
		return fmt.Errorf("unsupported file format: %s", filepath.Base(path))
	}

	outputs, summary, err := conv.Convert(filepath.Base(path), data)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	for _, warning := range summary.Warnings {
		slog.Warn(warning, "file", filepath.Base(path))
	}
	fmt.Printf("%s: order %s, %d order(s), %d book(s), %d branch(es)\n",
		filepath.Base(path), summary.OrderNumber,
		summary.TotalOrders, summary.TotalBooks, summary.Branches)

	for _, out := range outputs {
		if err := writeFile(outDir, out.Name, out.Data); err != nil {
			return err
		}
	}
	return nil
}
