// File: cli/auth.go
package cli

import (
	"fmt"

	"cocoliving/api"
	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an emailed one-time code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if email == "" {
				var err error
				if email, err = prompt("Email address"); err != nil {
					return err
				}
			}

			if err := app.Client.RequestLoginOTP(ctx, email); err != nil {
				if utils.UserMessage(err, "") == "Email not found" {
					return fmt.Errorf("account not found; run 'cocoliving signup' first")
				}
				return fmt.Errorf("couldn't send OTP: %s", utils.UserMessage(err, "please try again"))
			}
			fmt.Println("OTP sent to", email)

			otp, err := prompt("Enter OTP")
			if err != nil {
				return err
			}
			if otp == "" {
				return fmt.Errorf("OTP is required")
			}

			sess, err := app.Client.VerifyLoginOTP(ctx, email, otp)
			if err != nil {
				return fmt.Errorf("%s", utils.UserMessage(err, "Invalid OTP"))
			}
			app.Sessions.Set(sess)
			fmt.Printf("Login successful. Welcome back, %s!\n", sess.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email address")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Sessions.Logout()
			fmt.Println("Logged out!")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.Sessions.Current()
			if sess == nil {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("%s (%s, id %s)\n", sess.FullName, sess.UserType, sess.ID)
			return nil
		},
	}
}

func newSignupCmd(app *App) *cobra.Command {
	var input api.RegisterInput

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account with email verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var err error
			if input.Email == "" {
				if input.Email, err = prompt("Email address"); err != nil {
					return err
				}
			}
			if input.FullName == "" {
				if input.FullName, err = prompt("Full name"); err != nil {
					return err
				}
			}

			if err := app.Client.SendSignupOTP(ctx, input.Email, input.FullName); err != nil {
				return fmt.Errorf("unable to send OTP: %s", utils.UserMessage(err, "please try again"))
			}
			fmt.Println("Verification code sent to", input.Email)

			if input.OTP, err = prompt("Enter OTP"); err != nil {
				return err
			}
			if err := app.Client.VerifySignupOTP(ctx, input.Email, input.OTP); err != nil {
				return fmt.Errorf("OTP verification failed: %s", utils.UserMessage(err, "please try again"))
			}
			if err := app.Client.Register(ctx, input); err != nil {
				return fmt.Errorf("registration failed: %s", utils.UserMessage(err, "please try again"))
			}
			fmt.Println("Registration successful! Please log in to continue.")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&input.UserType, "user-type", "student", "student or professional")
	cmd.Flags().StringVar(&input.DateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
	return cmd
}
