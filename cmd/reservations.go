package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/roomdesk/internal/hotel"
)

func newViewCmd() *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:   "view",
		Short: "Show one reservation by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.svc.FindByID(id)
			if err != nil {
				if errors.Is(err, hotel.ErrNotFound) {
					return fmt.Errorf("reservation %s not found", id)
				}
				return err
			}
			renderReservations(os.Stdout, []hotel.Reservation{res}, a.cfg.Currency)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "reservation id")
	_ = c.MarkFlagRequired("id")
	return c
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			rs := a.svc.ListAll()
			if len(rs) == 0 {
				fmt.Println("No bookings.")
				return nil
			}
			renderReservations(os.Stdout, rs, a.cfg.Currency)
			return nil
		},
	}
}
