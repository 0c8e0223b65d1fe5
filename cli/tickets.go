// File: cli/tickets.go
package cli

import (
	"fmt"
	"time"

	"cocoliving/models"
	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newTicketsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List your support tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			tickets, err := app.Client.ListUserTickets(cmd.Context())
			if err != nil {
				if utils.IsAuthError(err) {
					app.Sessions.Logout()
					return fmt.Errorf("session expired, please log in again")
				}
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load tickets"))
			}
			if len(tickets) == 0 {
				fmt.Println("No tickets raised.")
				return nil
			}
			for _, t := range tickets {
				status := "Pending"
				if t.Status == "closed" {
					status = "Closed"
				}
				fmt.Printf("%s  room #%s  %s  [%s]  %s\n", t.SupportCode, t.RoomNumber, t.Date, status, t.Issue)
			}
			return nil
		},
	}

	var input models.TicketInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Raise a support ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			if input.Issue == "" {
				return fmt.Errorf("an issue summary is required")
			}
			if input.Date == "" {
				input.Date = time.Now().Format("2006-01-02")
			}
			if err := app.Client.CreateTicket(cmd.Context(), input); err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to raise ticket"))
			}
			fmt.Println("Ticket raised. Track it under 'tickets'.")
			return nil
		},
	}
	create.Flags().StringVar(&input.RoomNumber, "room", "", "room number")
	create.Flags().StringVar(&input.Issue, "issue", "", "short issue summary")
	create.Flags().StringVar(&input.Description, "description", "", "detailed description")
	create.Flags().StringVar(&input.Priority, "priority", "medium", "low, medium or high")
	create.Flags().StringVar(&input.Date, "date", "", "issue date (YYYY-MM-DD, default today)")
	create.Flags().StringVar(&input.ImagePath, "image", "", "path to an image attachment")
	cmd.AddCommand(create)

	return cmd
}
