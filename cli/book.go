// File: cli/book.go
package cli

import (
	"fmt"
	"strconv"
	"time"

	"cocoliving/config"
	"cocoliving/models"
	"cocoliving/payment"
	"cocoliving/pricing"
	"cocoliving/utils"

	"github.com/spf13/cobra"
)

func newBookCmd(app *App) *cobra.Command {
	var (
		rateCardID int64
		propertyID int64
		roomType   string
		rent       int64
		months     int
		checkIn    string
		preBook    bool
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a room: quote, confirm, pay",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireSession(app); err != nil {
				return err
			}
			if checkIn == "" {
				checkIn = time.Now().Format("2006-01-02")
			}
			if _, err := time.Parse("2006-01-02", checkIn); err != nil {
				return fmt.Errorf("check-in date must be an ISO date (YYYY-MM-DD): %w", err)
			}

			mode := pricing.FullBook
			if preBook {
				mode = pricing.PreBook
			}
			quote, err := pricing.NewQuote(rent, months, mode)
			if err != nil {
				return err
			}

			fmt.Printf("Rent            ₹%d x %d months = ₹%d\n", quote.MonthlyRent, quote.DurationMonths, quote.MonthlyRent*int64(quote.DurationMonths))
			fmt.Printf("Security deposit (2 months rent)  ₹%d\n", quote.SecurityDeposit)
			fmt.Printf("Net payable                       ₹%d\n", quote.NetPayable)
			if mode == pricing.PreBook {
				fmt.Printf("Pre-book @ 10%%                    ₹%d\n", quote.PreBookAmount)
			}
			fmt.Printf("Due now                           ₹%d\n", quote.AmountDueNow)

			if !confirm("Proceed with booking?") {
				fmt.Println("Booking cancelled.")
				return nil
			}

			sess := app.Sessions.Current()
			userID, err := strconv.ParseInt(sess.ID, 10, 64)
			if err != nil {
				return fmt.Errorf("stored user ID %q is not numeric: %w", sess.ID, err)
			}
			res, err := app.Client.CreateBooking(ctx, models.BookingInput{
				UserID:      userID,
				RateCardID:  rateCardID,
				PropertyID:  propertyID,
				CheckInDate: checkIn,
				MonthlyRent: rent,
				Duration:    months,
				Status:      "pending",
				RoomType:    roomType,
			})
			if err != nil {
				if utils.IsAuthError(err) {
					app.Sessions.Logout()
					return fmt.Errorf("session expired, please log in again")
				}
				return fmt.Errorf("booking failed: %s", utils.UserMessage(err, "Something went wrong."))
			}
			fmt.Println("Booking submitted:", res.Message)

			if res.RedirectURL == "" || res.OrderID == "" {
				return nil
			}
			return runPayment(app, cmd, res.RedirectURL, res.OrderID)
		},
	}

	cmd.Flags().Int64Var(&rateCardID, "rate-card", 0, "rate card ID (see 'properties')")
	cmd.Flags().Int64Var(&propertyID, "property", 0, "property ID")
	cmd.Flags().StringVar(&roomType, "room-type", "", "room type from the rate card")
	cmd.Flags().Int64Var(&rent, "rent", 0, "monthly rent in rupees")
	cmd.Flags().IntVar(&months, "months", 6, "duration in months (3, 6 or 12)")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&preBook, "pre-book", false, "reserve with a 10% upfront payment")
	_ = cmd.MarkFlagRequired("rate-card")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("rent")
	return cmd
}

// runPayment walks the hosted payment flow: open the page in a browser,
// catch the redirect on the loopback listener, then poll the order status.
func runPayment(app *App, cmd *cobra.Command, redirectURL, orderID string) error {
	ctx := cmd.Context()
	cfg := config.AppConfig

	watcher, err := payment.NewWatcher(cfg.PaymentCallbackAddr, cfg.PaymentRedirectBase)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			utils.GetLogger().Sugar().Warnf("failed to stop payment watcher: %v", err)
		}
	}()

	fmt.Println("Open this payment page in your browser:")
	fmt.Println("  " + redirectURL)
	fmt.Println("Waiting for the payment page to finish...")

	if _, err := watcher.Wait(ctx); err != nil {
		return fmt.Errorf("payment not completed: %w", err)
	}

	status, err := payment.NewPoller(app.Client).Await(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to verify payment status: %s", utils.UserMessage(err, "network error"))
	}
	if status == models.PaymentStatusSuccess {
		fmt.Println("Payment successful! Booking confirmed.")
		return nil
	}
	return fmt.Errorf("payment failed: %s", status)
}
