// File: cli/password.go
package cli

import (
	"fmt"

	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newPasswordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change or reset your password",
	}

	change := &cobra.Command{
		Use:   "change",
		Short: "Change the password of the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(app); err != nil {
				return err
			}
			oldPassword, err := prompt("Current password")
			if err != nil {
				return err
			}
			newPassword, err := prompt("New password")
			if err != nil {
				return err
			}
			confirmPassword, err := prompt("Confirm new password")
			if err != nil {
				return err
			}
			if newPassword != confirmPassword {
				return fmt.Errorf("passwords do not match")
			}
			if err := app.Client.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to change password"))
			}
			fmt.Println("Password changed.")
			return nil
		},
	}

	var email string
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Reset a forgotten password with an emailed code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var err error
			if email == "" {
				if email, err = prompt("Email address"); err != nil {
					return err
				}
			}
			if err := app.Client.ForgotPassword(ctx, email); err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to send reset code"))
			}
			fmt.Println("Reset code sent to", email)

			otp, err := prompt("Enter code")
			if err != nil {
				return err
			}
			newPassword, err := prompt("New password")
			if err != nil {
				return err
			}
			if err := app.Client.ResetPassword(ctx, email, otp, newPassword); err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "failed to reset password"))
			}
			fmt.Println("Password reset. Please log in.")
			return nil
		},
	}
	reset.Flags().StringVar(&email, "email", "", "account email address")

	cmd.AddCommand(change, reset)
	return cmd
}
