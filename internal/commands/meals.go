package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func MealsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meals",
		Short: "Show the meal menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			meals, err := s.svc.ListMeals(context.Background())
			if err != nil {
				return err
			}

			printMeals(cmd.OutOrStdout(), s.cfg.Currency, meals)
			return nil
		},
	}
}
