package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/example/roomdesk/internal/hotel"
)

// newShellCmd runs the interactive front-desk menu. Domain errors are printed
// and the loop continues; only a startup load failure aborts.
func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive reservation desk",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Println("\n1.Search 2.Book 3.Cancel 4.View By ID 5.All Bookings 6.Exit")
				fmt.Print("Choice: ")
				if !sc.Scan() {
					return a.svc.SaveOnShutdown(cmd.Context())
				}
				switch strings.TrimSpace(sc.Text()) {
				case "1":
					shellSearch(a, sc)
				case "2":
					shellBook(cmd, a, sc)
				case "3":
					shellCancel(cmd, a, sc)
				case "4":
					shellView(a, sc)
				case "5":
					shellList(a)
				case "6":
					return a.svc.SaveOnShutdown(cmd.Context())
				default:
					fmt.Println("Invalid")
				}
			}
		},
	}
}

func shellSearch(a *app, sc *bufio.Scanner) {
	category := prompt(sc, "Category or ENTER for any: ")
	from, to, ok := promptDates(sc)
	if !ok {
		return
	}
	rooms, err := a.svc.SearchAvailable(category, from, to)
	if err != nil {
		color.Red.Println(err)
		return
	}
	if len(rooms) == 0 {
		fmt.Println("No available rooms.")
		return
	}
	renderRooms(os.Stdout, rooms, a.cfg.Currency, false)
}

func shellBook(cmd *cobra.Command, a *app, sc *bufio.Scanner) {
	category := prompt(sc, "Category or ENTER for any: ")
	from, to, ok := promptDates(sc)
	if !ok {
		return
	}
	rooms, err := a.svc.SearchAvailable(category, from, to)
	if err != nil {
		color.Red.Println(err)
		return
	}
	if len(rooms) == 0 {
		fmt.Println("No available rooms.")
		return
	}
	renderRooms(os.Stdout, rooms, a.cfg.Currency, true)

	idx, err := strconv.Atoi(prompt(sc, "Choose number: "))
	if err != nil || idx < 1 || idx > len(rooms) {
		fmt.Println("Invalid selection.")
		return
	}
	guest := prompt(sc, "Guest name: ")

	room := rooms[idx-1]
	amount := hotel.Cents(hotel.Nights(from, to)) * room.Price
	fmt.Printf("Amount: %s%s\n", a.cfg.Currency, amount)
	if !strings.EqualFold(prompt(sc, "Confirm pay (yes to proceed): "), "yes") {
		fmt.Println("Aborted.")
		return
	}

	res, err := a.svc.Book(cmd.Context(), category, from, to, idx-1, guest)
	if err != nil {
		if res.ID == "" {
			color.Red.Println(err)
			return
		}
		color.Yellow.Printf("Warning: %v\n", err)
	}
	color.Green.Println("Booked: " + res.String())
}

func shellCancel(cmd *cobra.Command, a *app, sc *bufio.Scanner) {
	id := prompt(sc, "Reservation ID: ")
	if err := a.svc.Cancel(cmd.Context(), id); err != nil {
		color.Red.Println(err)
		return
	}
	color.Green.Printf("Cancelled %s\n", id)
}

func shellView(a *app, sc *bufio.Scanner) {
	id := prompt(sc, "Reservation ID: ")
	res, err := a.svc.FindByID(id)
	if err != nil {
		fmt.Println("Not found.")
		return
	}
	fmt.Println(res)
}

func shellList(a *app) {
	rs := a.svc.ListAll()
	if len(rs) == 0 {
		fmt.Println("No bookings.")
		return
	}
	renderReservations(os.Stdout, rs, a.cfg.Currency)
}

func prompt(sc *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

// promptDates reads check-in and check-out, re-prompting on bad input until a
// parsable date arrives or input ends.
func promptDates(sc *bufio.Scanner) (from, to time.Time, ok bool) {
	from, ok = promptDate(sc, "Check-in (YYYY-MM-DD): ")
	if !ok {
		return
	}
	to, ok = promptDate(sc, "Check-out (YYYY-MM-DD): ")
	return
}

func promptDate(sc *bufio.Scanner, label string) (time.Time, bool) {
	fmt.Print(label)
	for sc.Scan() {
		d, err := hotel.ParseDate(strings.TrimSpace(sc.Text()))
		if err == nil {
			return d, true
		}
		fmt.Print("Invalid, enter YYYY-MM-DD: ")
	}
	return time.Time{}, false
}
