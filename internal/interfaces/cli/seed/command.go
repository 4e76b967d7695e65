package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/cli"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

var env string

type statusSeed struct {
	name       string
	code       string
	statusType ticket.StatusType
	weight     int
	isDefault  bool
}

type prioritySeed struct {
	name      string
	code      string
	weight    int
	color     string
	slaHours  *uint
	isDefault bool
}

var statusSeeds = []statusSeed{
	{"Open", "OPEN", ticket.StatusTypeOpen, 10, true},
	{"In Progress", "IN_PROGRESS", ticket.StatusTypeInProgress, 20, false},
	{"Pending", "PENDING", ticket.StatusTypePending, 30, false},
	{"Resolved", "RESOLVED", ticket.StatusTypeResolved, 40, false},
	{"Closed", "CLOSED", ticket.StatusTypeClosed, 50, false},
	{"Cancelled", "CANCELLED", ticket.StatusTypeCancelled, 60, false},
}

var prioritySeeds = []prioritySeed{
	{"Low", "LOW", 10, "#6c757d", hours(72), false},
	{"Normal", "NORMAL", 20, "#28a745", hours(24), true},
	{"High", "HIGH", 30, "#fd7e14", hours(8), false},
	{"Urgent", "URGENT", 40, "#dc3545", hours(4), false},
	{"Critical", "CRITICAL", 50, "#721c24", hours(1), false},
}

func hours(h uint) *uint { return &h }

// NewCommand seeds the predefined roles and the default ticket status
// and priority tables. Safe to run repeatedly.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed predefined roles, ticket statuses and priorities",
		Long:  `Create the predefined roles (admin, supervisor, agent, customer) and the default ticket status and priority lookup tables. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	bootEnv, err := cli.Setup(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log := bootEnv.Logger.Named("seed")
	ctx := cmd.Context()

	if err := database.EnsureSchema(database.Get()); err != nil {
		return err
	}

	if err := seedRoles(ctx, log); err != nil {
		return err
	}
	if err := seedStatuses(ctx, log); err != nil {
		return err
	}
	if err := seedPriorities(ctx, log); err != nil {
		return err
	}

	log.Infow("seeding completed")
	return nil
}

func seedRoles(ctx context.Context, log logger.Interface) error {
	roleRepo := repository.NewRoleRepository(database.Get())

	names := []string{
		constants.RoleAdmin,
		constants.RoleSupervisor,
		constants.RoleAgent,
		constants.RoleCustomer,
	}

	for _, name := range names {
		existing, err := roleRepo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Debugw("role already exists", "role", name)
			continue
		}

		role, err := permission.NewRole(name)
		if err != nil {
			return fmt.Errorf("failed to build role %q: %w", name, err)
		}
		role.MarkPredefined()

		if err := roleRepo.Save(ctx, role); err != nil {
			return err
		}
		log.Infow("role created", "role", name)
	}

	return nil
}

func seedStatuses(ctx context.Context, log logger.Interface) error {
	statusRepo := repository.NewStatusRepository(database.Get())

	for _, seed := range statusSeeds {
		existing, err := statusRepo.GetByCode(ctx, seed.code)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Debugw("status already exists", "code", seed.code)
			continue
		}

		s, err := ticket.NewStatus(seed.name, seed.code, seed.statusType, seed.weight)
		if err != nil {
			return fmt.Errorf("failed to build status %q: %w", seed.code, err)
		}
		if seed.isDefault {
			s.MarkDefault()
		}

		if err := statusRepo.Save(ctx, s); err != nil {
			return err
		}
		log.Infow("status created", "code", seed.code)
	}

	return nil
}

func seedPriorities(ctx context.Context, log logger.Interface) error {
	priorityRepo := repository.NewPriorityRepository(database.Get())

	for _, seed := range prioritySeeds {
		existing, err := priorityRepo.GetByCode(ctx, seed.code)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Debugw("priority already exists", "code", seed.code)
			continue
		}

		p, err := ticket.NewPriority(seed.name, seed.code, seed.weight, seed.color, seed.slaHours)
		if err != nil {
			return fmt.Errorf("failed to build priority %q: %w", seed.code, err)
		}
		if seed.isDefault {
			p.MarkDefault()
		}

		if err := priorityRepo.Save(ctx, p); err != nil {
			return err
		}
		log.Infow("priority created", "code", seed.code)
	}

	return nil
}
