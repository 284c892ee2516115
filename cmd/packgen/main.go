// Packgen is a CLI tool and HTTP server that turns KCB cheque-book order
// files (fixed-width DAT format) into per-branch packing lists.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	formatsdat "github.com/KennedyTaragon/Packing-List-Generator/formats/dat"
	"github.com/KennedyTaragon/Packing-List-Generator/parsers/dat"
)

// version is the application version, embedded in API responses.
const version = "1.0.0"

var (
	catalogPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "packgen",
	Short: "Generate cheque-book packing lists from KCB DAT order files",
	Long: `Packgen decodes fixed-width cheque-book order files, expands
multi-book orders into individual books with incrementing serial numbers,
groups the books by delivery branch, and renders one packing-list page per
branch as an XLSX workbook plus a CSV book manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if catalogPath == "" {
			return nil
		}
		cat, err := dat.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		formatsdat.SetDefaultCatalog(cat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"path to a YAML book-style catalog overriding the built-in styles")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// setupLogging routes slog to stderr so command output on stdout stays
// machine-readable.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
