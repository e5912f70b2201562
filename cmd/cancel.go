package cmd

import (
	"errors"
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/example/roomdesk/internal/hotel"
)

func newCancelCmd() *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a reservation by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.svc.Cancel(cmd.Context(), id); err != nil {
				if errors.Is(err, hotel.ErrNotFound) {
					return fmt.Errorf("reservation %s not found", id)
				}
				return err
			}
			color.Green.Printf("Cancelled %s\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "reservation id")
	_ = c.MarkFlagRequired("id")
	return c
}
