// File: cli/root.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"cocoliving/api"
	"cocoliving/session"

	"github.com/spf13/cobra"
)

// App carries the assembled dependencies every command works against.
type App struct {
	Sessions *session.Manager
	Client   *api.Client
}

// Execute runs the command tree. ctx is cancelled on interrupt so any
// in-flight request is abandoned instead of completing against a screen
// nobody is looking at.
func Execute(ctx context.Context, app *App) error {
	root := &cobra.Command{
		Use:           "cocoliving",
		Short:         "Coco Living co-living rental client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newSignupCmd(app),
		newPropertiesCmd(app),
		newRoomsCmd(app),
		newBookCmd(app),
		newBookingsCmd(app),
		newTicketsCmd(app),
		newEventsCmd(app),
		newMenuCmd(app),
		newProfileCmd(app),
		newPasswordCmd(app),
	)

	return root.ExecuteContext(ctx)
}

// requireSession fails a command up front when nobody is logged in.
func requireSession(app *App) error {
	if app.Sessions.Current() == nil {
		return fmt.Errorf("not logged in; run 'cocoliving login' first")
	}
	return nil
}

// prompt reads one line from stdin.
func prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(label string) bool {
	answer, err := prompt(label + " [y/N]")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
