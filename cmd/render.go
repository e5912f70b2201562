package cmd

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/example/roomdesk/internal/hotel"
)

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderRooms(w io.Writer, rooms []hotel.Room, currency string, numbered bool) {
	headers := []string{"Room", "Category", "Price/Night"}
	if numbered {
		headers = append([]string{"#"}, headers...)
	}
	table := newTable(w, headers)
	for i, r := range rooms {
		row := []string{r.ID, r.Category, currency + r.Price.String()}
		if numbered {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		table.Append(row)
	}
	table.Render()
}

func renderReservations(w io.Writer, rs []hotel.Reservation, currency string) {
	table := newTable(w, []string{"Reservation", "Room", "Guest", "Check-In", "Check-Out", "Amount"})
	for _, row := range lo.Map(rs, func(r hotel.Reservation, _ int) []string {
		return []string{
			r.ID, r.RoomID, r.Guest,
			r.CheckIn.Format(hotel.DateLayout),
			r.CheckOut.Format(hotel.DateLayout),
			currency + r.Amount.String(),
		}
	}) {
		table.Append(row)
	}
	table.Render()
}
