// File: cli/listings.go
package cli

import (
	"fmt"

	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newPropertiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "Browse properties and their rate cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := app.Client.ListProperties(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load properties"))
			}
			if len(properties) == 0 {
				fmt.Println("No properties available.")
				return nil
			}
			for _, p := range properties {
				fmt.Printf("%s  %s, %s\n", p.ID, p.Name, p.Address)
				for _, rc := range p.RateCard {
					fmt.Printf("    rate card %s: %s at ₹%d/month\n", rc.RateCardID, rc.RoomType, rc.Rent)
				}
			}
			return nil
		},
	}
}

func newRoomsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "Browse available rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := app.Client.ListRooms(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load rooms"))
			}
			if len(rooms) == 0 {
				fmt.Println("No rooms available.")
				return nil
			}
			for _, r := range rooms {
				owner := ""
				if r.Property != nil {
					owner = fmt.Sprintf(" @ %s, %s", r.Property.Name, r.Property.Address)
				}
				fmt.Printf("room %s (#%s)  %s  ₹%d/month%s\n", r.ID, r.RoomNumber, r.RoomType, r.MonthlyRent, owner)
			}
			return nil
		},
	}
}

func newEventsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List upcoming community events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Client.ListEvents(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load events"))
			}
			if len(events) == 0 {
				fmt.Println("No upcoming events.")
				return nil
			}
			for _, e := range events {
				fmt.Printf("%s  %s at %s (%s)\n", e.Date, e.Title, e.Location, e.Description)
			}
			return nil
		},
	}
}

func newMenuCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show this week's food menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			menus, err := app.Client.ListFoodMenus(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load menu"))
			}
			if len(menus) == 0 {
				fmt.Println("No menu published.")
				return nil
			}
			for day, meals := range menus[0].WeekMenu {
				fmt.Printf("%s: breakfast %s / lunch %s / dinner %s\n", day, meals.Breakfast, meals.Lunch, meals.Dinner)
			}
			return nil
		},
	}
}
