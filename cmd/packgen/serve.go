// serve.go starts the upload web interface.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KennedyTaragon/Packing-List-Generator/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the packing-list upload web interface",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.New(version, slog.Default())
	if err != nil {
		return err
	}
	addr := ":" + servePort
	slog.Info("packing-list server listening", "addr", addr, "version", version)
	return srv.ListenAndServe(addr)
}
