package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/example/roomdesk/internal/hotel"
)

func newBookCmd() *cobra.Command {
	var (
		category, checkIn, checkOut, guest string
		selection                          int
		yes                                bool
	)

	c := &cobra.Command{
		Use:   "book",
		Short: "Book an available room",
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
			renderRooms(os.Stdout, rooms, a.cfg.Currency, true)

			if selection < 1 || selection > len(rooms) {
				return fmt.Errorf("invalid --select: pick 1..%d", len(rooms))
			}
			room := rooms[selection-1]
			amount := hotel.Cents(hotel.Nights(from, to)) * room.Price
			fmt.Printf("Amount: %s%s\n", a.cfg.Currency, amount)

			// payment placeholder, confirmation only
			if !yes && !confirm(cmd) {
				fmt.Println("Aborted.")
				return nil
			}

			res, err := a.svc.Book(cmd.Context(), category, from, to, selection-1, guest)
			if err != nil {
				if res.ID != "" && errors.Is(err, hotel.ErrPersistence) {
					// booking stands in memory, durable write failed
					color.Yellow.Printf("Warning: %v\n", err)
					fmt.Println("Booked: " + res.String())
					return err
				}
				return err
			}
			color.Green.Println("Booked: " + res.String())
			return nil
		},
	}

	c.Flags().StringVar(&category, "category", "", "room category filter (empty for any)")
	c.Flags().StringVar(&checkIn, "check-in", "", "check-in date YYYY-MM-DD")
	c.Flags().StringVar(&checkOut, "check-out", "", "check-out date YYYY-MM-DD")
	c.Flags().IntVar(&selection, "select", 1, "1-based index into the listed available rooms")
	c.Flags().StringVar(&guest, "guest", "", "guest name")
	c.Flags().BoolVar(&yes, "yes", false, "skip the pay confirmation prompt")
	_ = c.MarkFlagRequired("check-in")
	_ = c.MarkFlagRequired("check-out")
	_ = c.MarkFlagRequired("guest")
	return c
}

func confirm(cmd *cobra.Command) bool {
	fmt.Print("Confirm pay (yes to proceed): ")
	sc := bufio.NewScanner(cmd.InOrStdin())
	if !sc.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(sc.Text()), "yes")
}
