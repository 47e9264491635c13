package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/hotel-booking/internal/hotel/booking"
)

func RoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List the rooms of a fresh booking session",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var rooms []booking.RoomSummary
			if all {
				rooms, err = s.svc.ListRooms(context.Background())
			} else {
				rooms, err = s.svc.ListBookableRooms(context.Background())
			}
			if err != nil {
				return err
			}

			printRooms(cmd.OutOrStdout(), s.cfg.Currency, rooms, all)
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include occupied rooms and rooms under maintenance")

	return cmd
}
