package grantadmin

import (
	"fmt"

	"github.com/spf13/cobra"

	authzUsecases "helpdesk/internal/application/authz/usecases"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/cli"
	"helpdesk/internal/shared/constants"
)

var (
	env      string
	roleName string
)

// NewCommand grants full capabilities on every menu to a role. By
// default it targets the predefined admin role, which is how a fresh
// install gets a usable administrator after load-menus.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant-admin",
		Short: "Grant full capabilities on all menus to a role",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&roleName, "role", "r", constants.RoleAdmin, "Role to grant")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	bootEnv, err := cli.Setup(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log := bootEnv.Logger.Named("grant-admin")
	ctx := cmd.Context()

	gormDB := database.Get()
	menuRepo := repository.NewMenuRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	grantRepo := repository.NewGrantRepository(gormDB)

	role, err := roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("role %q not found, run seed first", roleName)
	}

	menus, err := menuRepo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(menus) == 0 {
		return fmt.Errorf("no menus configured, run load-menus first")
	}

	specs := make([]permission.GrantSpec, 0, len(menus))
	for _, m := range menus {
		specs = append(specs, permission.GrantSpec{
			MenuID:       m.ID(),
			Capabilities: permission.FullCapabilities(),
		})
	}

	redisClient, err := cli.NewRedisClient(ctx, &bootEnv.Config.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	menuCache := cache.NewRedisRoleMenuCache(redisClient, log)

	replaceGrants := authzUsecases.NewReplaceRoleGrantsUseCase(roleRepo, grantRepo, menuRepo, menuCache, log)
	result, err := replaceGrants.Execute(ctx, authzUsecases.ReplaceRoleGrantsCommand{
		RoleID: role.ID(),
		Grants: specs,
	})
	if err != nil {
		return err
	}

	log.Infow("role granted full capabilities", "role", roleName, "menus", result.Count)
	return nil
}
