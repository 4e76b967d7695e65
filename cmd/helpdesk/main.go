package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/clearcache"
	"helpdesk/internal/interfaces/cli/grantadmin"
	"helpdesk/internal/interfaces/cli/inbox"
	"helpdesk/internal/interfaces/cli/loadmenu"
	"helpdesk/internal/interfaces/cli/seed"
	"helpdesk/internal/interfaces/cli/ticketcmd"
	"helpdesk/internal/interfaces/cli/triage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - role-based menu access control and ticket triage",
		Long:  `Helpdesk manages menu hierarchies, role and per-user permission grants, and a ticket queue ranked by urgency.`,
	}

	rootCmd.AddCommand(
		seed.NewCommand(),
		loadmenu.NewCommand(),
		grantadmin.NewCommand(),
		clearcache.NewCommand(),
		inbox.NewCommand(),
		ticketcmd.NewCommand(),
		triage.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
