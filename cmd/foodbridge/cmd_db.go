package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/config"
	"github.com/nikitaraj/foodbridge/database/seeders"
	"github.com/nikitaraj/foodbridge/pkg/database"
)

// foodbridge seed: create the schema and load the registered seeders.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}

		fmt.Println("Seeding database:")
		return seeders.RunAll(database.DB)
	},
}

// bootDB loads config, connects, and ensures the schema exists.
func bootDB() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := database.Connect(); err != nil {
		return err
	}
	return database.DB.AutoMigrate(
		&models.Provider{},
		&models.Receiver{},
		&models.FoodListing{},
		&models.Claim{},
	)
}
