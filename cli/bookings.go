// File: cli/bookings.go
package cli

import (
	"fmt"

	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newBookingsCmd(app *App) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			result, err := app.Client.ListUserBookings(cmd.Context(), page, limit)
			if err != nil {
				if utils.IsAuthError(err) {
					app.Sessions.Logout()
					return fmt.Errorf("session expired, please log in again")
				}
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load bookings"))
			}
			if len(result.Bookings) == 0 {
				fmt.Println("No bookings yet.")
				return nil
			}
			for _, b := range result.Bookings {
				line := fmt.Sprintf("%s  %s → %s  [%s]", b.ID, b.CheckInDate, b.CheckOutDate, b.DisplayStatus)
				if b.Room != nil {
					line += fmt.Sprintf("  %s room #%s ₹%d/month", b.Room.RoomType, b.Room.RoomNumber, b.Room.MonthlyRent)
					if b.Room.Property != nil {
						line += " @ " + b.Room.Property.Name
					}
				}
				fmt.Println(line)
			}
			fmt.Printf("page %d of %d\n", page, result.TotalPages)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "bookings per page")

	cancel := &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel an upcoming booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			if !confirm("Cancel booking " + args[0] + "?") {
				return nil
			}
			if err := app.Client.CancelBooking(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to cancel booking"))
			}
			fmt.Println("Booking cancelled.")
			return nil
		},
	}
	cmd.AddCommand(cancel)
	return cmd
}
