// healthcheck.go implements the Docker HEALTHCHECK command that verifies
// the HTTP server is responding without requiring external tools.

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var healthcheckPort string

// healthcheckCmd performs a lightweight HTTP check against the local
// server. It is designed to be used as the Docker HEALTHCHECK command, so
// the container image does not need curl, wget, or any other external
// tool. Exit 0 = healthy, non-zero = unhealthy.
var healthcheckCmd = &cobra.Command{
	Use:    "healthcheck",
	Short:  "Check that a local packgen server is healthy",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 3 * time.Second}
		resp, err := client.Get("http://localhost:" + healthcheckPort + "/api/info")
		if err != nil {
			return fmt.Errorf("healthcheck failed: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("healthcheck failed: HTTP %d", resp.StatusCode)
		}
		return nil
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthcheckPort, "port", "8080", "server port to check")
	rootCmd.AddCommand(healthcheckCmd)
}
