package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/hotel-booking/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "hotel-booking",
		Short:        "Hotel room booking system",
		Long:         "Reserve rooms, order meals and check guests out. Every run starts a fresh in-memory session.",
		RunE:         commands.RunMenu,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Log SQL statements and debug output")

	rootCmd.AddCommand(
		commands.MenuCmd(),
		commands.RoomsCmd(),
		commands.MealsCmd(),
		commands.SchemaCmd(),
		commands.HistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
