package ticketcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	notificationApp "helpdesk/internal/application/notification"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/cli"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/markdown"
)

var (
	env          string
	title        string
	description  string
	statusCode   string
	priorityCode string
	menuID       uint
	creatorID    uint
	assigneeID   uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Ticket administration",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Ticket title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Ticket description")
	cmd.Flags().StringVar(&statusCode, "status", "", "Status code (defaults to the configured default)")
	cmd.Flags().StringVar(&priorityCode, "priority", "", "Priority code (defaults to the configured default)")
	cmd.Flags().UintVar(&menuID, "menu", 0, "Menu ID the ticket belongs to")
	cmd.Flags().UintVar(&creatorID, "creator", 0, "Creator account ID (required)")
	cmd.Flags().UintVar(&assigneeID, "assignee", 0, "Assignee account ID")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("creator")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	bootEnv, err := cli.Setup(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log := bootEnv.Logger.Named("ticket")
	ctx := cmd.Context()

	gormDB := database.Get()
	ticketRepo := repository.NewTicketRepository(gormDB)
	statusRepo := repository.NewStatusRepository(gormDB)
	priorityRepo := repository.NewPriorityRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	numberGen := repository.NewTicketNumberGenerator(gormDB)

	dispatcher, err := startDispatcher(log, notificationRepo, ticketRepo)
	if err != nil {
		return err
	}
	defer dispatcher.Stop()

	createTicket := ticketUsecases.NewCreateTicketUseCase(
		ticketRepo, statusRepo, priorityRepo, menuRepo, numberGen, dispatcher, log)

	ticketCmd := ticketUsecases.CreateTicketCommand{
		Title:        title,
		Description:  description,
		StatusCode:   statusCode,
		PriorityCode: priorityCode,
		CreatorID:    creatorID,
	}
	if menuID != 0 {
		ticketCmd.MenuID = &menuID
	}
	if assigneeID != 0 {
		ticketCmd.AssigneeID = &assigneeID
	}

	result, err := createTicket.Execute(ctx, ticketCmd)
	if err != nil {
		return err
	}

	fmt.Printf("created ticket %s (id %d)\n", result.Ticket.Number(), result.Ticket.ID())
	return nil
}

// startDispatcher wires the notification service into a running event
// dispatcher so ticket events recorded by this process produce
// notification logs before it exits.
func startDispatcher(
	log logger.Interface,
	notificationRepo *repository.NotificationRepository,
	ticketRepo *repository.TicketRepository,
) (*events.ChannelDispatcher, error) {
	dispatcher := events.NewChannelDispatcher(64, func(event events.DomainEvent, err error) {
		log.Warnw("event handler failed", "event_type", event.GetEventType(), "error", err)
	})

	notifier := notificationApp.NewService(notificationRepo, ticketRepo, markdown.NewRenderer(), log)
	if err := notifier.Register(dispatcher); err != nil {
		return nil, err
	}

	if err := dispatcher.Start(); err != nil {
		return nil, err
	}

	return dispatcher, nil
}
