package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/qoz-dashboard/client"
	"github.com/yourorg/qoz-dashboard/internal/env"
)

func main() {
	_ = godotenv.Load()

	var server string
	rootCmd := &cobra.Command{
		Use:           "qozctl",
		Short:         "Query the QOZ investment dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&server, "server", env.Get("QOZ_SERVER", client.DefaultServer), "dashboard base URL")

	newClient := func() *client.Client { return client.New(server, 5) }

	rootCmd.AddCommand(
		SearchCmd(newClient),
		ZoningCmd(newClient),
		MapCmd(newClient),
		SessionCmd(newClient),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
