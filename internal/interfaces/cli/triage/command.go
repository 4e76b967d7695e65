package triage

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/cli"
)

var (
	env             string
	orderBy         string
	assigneeID      uint
	includeResolved bool
	breachedOnly    bool
	escalatedOnly   bool
	limit           int
)

// NewCommand prints the ticket queue in working order: most urgent
// first under the default importance ordering.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Print the ticket queue in urgency order",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&orderBy, "order-by", "o", "importance", "Ordering: importance, sla, deadline, created, priority")
	cmd.Flags().UintVar(&assigneeID, "assignee", 0, "Only tickets assigned to this account ID")
	cmd.Flags().BoolVar(&includeResolved, "include-resolved", false, "Include resolved tickets")
	cmd.Flags().BoolVar(&breachedOnly, "breached", false, "Only tickets with a breached SLA")
	cmd.Flags().BoolVar(&escalatedOnly, "escalated", false, "Only escalated tickets")
	cmd.Flags().IntVarP(&limit, "limit", "n", 25, "Maximum rows to print")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	bootEnv, err := cli.Setup(env)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := cmd.Context()
	ticketRepo := repository.NewTicketRepository(database.Get())
	rankTickets := ticketUsecases.NewRankTicketsUseCase(ticketRepo, bootEnv.Logger.Named("triage"))

	criteria := ticket.Criteria{}
	if assigneeID != 0 {
		criteria.AssigneeID = &assigneeID
	}
	if breachedOnly {
		t := true
		criteria.SLABreached = &t
	}
	if escalatedOnly {
		t := true
		criteria.Escalated = &t
	}

	result, err := rankTickets.Execute(ctx, ticketUsecases.RankTicketsQuery{
		Criteria:        criteria,
		OrderBy:         orderBy,
		IncludeResolved: includeResolved,
	})
	if err != nil {
		return err
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tNUMBER\tSTATUS\tPRIORITY\tAGE\tTITLE")
	for i, t := range result.Tickets {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%dd\t%s\n",
			ticket.UrgencyScore(t, now),
			t.Number(),
			t.Status().Code(),
			t.Priority().Code(),
			t.AgeDays(now),
			t.Title(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d tickets, ordering %s\n", len(result.Tickets), result.Mode)
	return nil
}
