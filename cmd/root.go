package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fundfolio",
	Short: "Unit trust and fixed deposit portfolio tracker",
}

var apiPort int

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(apiHandler)
		return apiHandler.StartApi(apiPort)
	},
}

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations(migrationsDir)
	},
}

var seedDir string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo funds, prices and transactions from CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiHandler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(apiHandler)
		return runSeed(apiHandler, seedDir)
	},
}

func init() {
	apiCmd.Flags().IntVar(&apiPort, "port", 3009, "port to listen on")
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "migrations directory")
	seedCmd.Flags().StringVar(&seedDir, "dir", "seed", "seed data directory")

	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
