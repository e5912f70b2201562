package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/roomdesk/internal/hotel"
)

func newSearchCmd() *cobra.Command {
	var category, checkIn, checkOut string

	c := &cobra.Command{
		Use:   "search",
		Short: "List rooms available for a date window",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := hotel.ParseDate(checkIn)
			if err != nil {
				return fmt.Errorf("invalid --check-in (want YYYY-MM-DD)")
			}
			to, err := hotel.ParseDate(checkOut)
			if err != nil {
				return fmt.Errorf("invalid --check-out (want YYYY-MM-DD)")
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			rooms, err := a.svc.SearchAvailable(category, from, to)
			if err != nil {
				if errors.Is(err, hotel.ErrDateRange) {
					return fmt.Errorf("check-out must be after check-in")
				}
				return err
			}
			if len(rooms) == 0 {
				fmt.Println("No available rooms.")
				return nil
			}
			renderRooms(os.Stdout, rooms, a.cfg.Currency, false)
			return nil
		},
	}

	c.Flags().StringVar(&category, "category", "", "room category filter (empty for any)")
	c.Flags().StringVar(&checkIn, "check-in", "", "check-in date YYYY-MM-DD")
	c.Flags().StringVar(&checkOut, "check-out", "", "check-out date YYYY-MM-DD")
	_ = c.MarkFlagRequired("check-in")
	_ = c.MarkFlagRequired("check-out")
	return c
}
