package inbox

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	notificationApp "helpdesk/internal/application/notification"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/cli"
	"helpdesk/internal/shared/markdown"
)

var (
	env         string
	recipientID uint
	unreadOnly  bool
	markReadID  uint
)

// NewCommand prints an account's notification inbox and can mark a
// single notification as read.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show an account's notification inbox",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&recipientID, "account", 0, "Account ID whose inbox to show")
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread notifications")
	cmd.Flags().UintVar(&markReadID, "mark-read", 0, "Mark this notification ID as read instead of listing")
	cobra.CheckErr(cmd.MarkFlagRequired("account"))

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	bootEnv, err := cli.Setup(env)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := cmd.Context()
	notificationRepo := repository.NewNotificationRepository(database.Get())
	ticketRepo := repository.NewTicketRepository(database.Get())
	svc := notificationApp.NewService(notificationRepo, ticketRepo, markdown.NewRenderer(), bootEnv.Logger.Named("inbox"))

	if markReadID != 0 {
		if err := svc.MarkRead(ctx, recipientID, markReadID); err != nil {
			return err
		}
		fmt.Printf("Notification %d marked as read\n", markReadID)
		return nil
	}

	result, err := svc.ListInbox(ctx, recipientID, unreadOnly)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREAD\tTYPE\tCREATED\tTITLE")
	for _, l := range result.Logs {
		read := " "
		if l.IsRead() {
			read = "x"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			l.ID(),
			read,
			l.Type(),
			l.CreatedAt().Format("2006-01-02 15:04"),
			l.Title(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d notifications, %d unread\n", len(result.Logs), result.UnreadCount)
	return nil
}
