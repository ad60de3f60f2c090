package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/example/frontdesk/internal/models"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

func newTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true
	return table
}

// PrintRooms writes a room listing as a table.
func PrintRooms(rooms []models.HotelRoom) {
	if len(rooms) == 0 {
		fmt.Println("No rooms found")
		return
	}
	table := newTable()
	table.AddRow("ROOM", "CATEGORY", "PRICE", "STATE")
	for _, r := range rooms {
		state := okMark(r.State)
		if r.State == models.RoomStateReserved {
			state = warnMark(r.State)
		}
		table.AddRow(strconv.Itoa(r.RoomNumber), r.CategoryLabel(), money(r.Price), state)
	}
	fmt.Println(table)
}

// PrintReservations writes a reservation listing as a table.
func PrintReservations(items []models.Reservation) {
	if len(items) == 0 {
		fmt.Println("No reservations found")
		return
	}
	table := newTable()
	table.AddRow("GUEST", "ROOM", "STAY", "GUESTS", "STATUS", "PAYMENT", "PAID")
	for _, r := range items {
		guests := fmt.Sprintf("%dA %dC", r.NumberOfAdults, r.NumberOfChildren)
		stay := r.StartDate + " to " + r.EndDate
		payment := r.PaymentLabel()
		if r.PaymentStatus == models.PaymentNotPaid {
			payment = failMark(payment)
		}
		table.AddRow(r.GuestLabel(), strconv.Itoa(r.HotelRoom.RoomNumber), stay,
			guests, r.StatusLabel(), payment, money(r.PricePaid))
	}
	fmt.Println(table)
}

// PrintAccounts writes an account listing as a table.
func PrintAccounts(accounts []models.Account) {
	if len(accounts) == 0 {
		fmt.Println("No accounts found")
		return
	}
	table := newTable()
	table.AddRow("NAME", "PHONE", "ROLE", "ID")
	for _, a := range accounts {
		table.AddRow(a.FirstName+" "+a.Name, a.PhoneNumber, a.Role, dim(a.ID))
	}
	fmt.Println(table)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
