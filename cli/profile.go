// File: cli/profile.go
package cli

import (
	"fmt"
	"strings"

	"cocoliving/models"
	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			sess := app.Sessions.Current()
			user, err := app.Client.GetUser(cmd.Context(), sess.ID)
			if err != nil {
				if utils.IsAuthError(err) {
					app.Sessions.Logout()
					return fmt.Errorf("session expired, please log in again")
				}
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to load profile"))
			}
			fmt.Printf("%s <%s>\n", user.FullName, user.Email)
			fmt.Printf("phone: %s  gender: %s  %s\n", user.Phone, user.Gender, user.UserType)
			if user.Bio != "" {
				fmt.Println("bio:", user.Bio)
			}
			if user.EmergencyContact != "" {
				fmt.Println("emergency contact:", user.EmergencyContact)
			}
			if len(user.LivingPreferences) > 0 {
				fmt.Println("preferences:", strings.Join(user.LivingPreferences, ", "))
			}
			return nil
		},
	}

	var input models.ProfileUpdateInput
	update := &cobra.Command{
		Use:   "update",
		Short: "Update your profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			sess := app.Sessions.Current()
			if err := app.Client.UpdateProfile(cmd.Context(), sess.ID, input); err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to update profile"))
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}
	update.Flags().StringVar(&input.FullName, "name", "", "full name")
	update.Flags().StringVar(&input.Phone, "phone", "", "phone number")
	update.Flags().StringVar(&input.Bio, "bio", "", "short bio")
	update.Flags().StringVar(&input.EmergencyContact, "emergency-contact", "", "emergency contact number")
	update.Flags().StringSliceVar(&input.LivingPreferences, "preferences", nil, "living preferences")
	cmd.AddCommand(update)

	return cmd
}
