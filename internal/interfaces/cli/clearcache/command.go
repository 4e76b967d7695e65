package clearcache

import (
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/interfaces/cli"
)

var env string

// NewCommand drops every cached role menu tree. Useful after editing
// grants or menus directly in the database.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-cache",
		Short: "Drop all cached role menu trees",
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

	log := bootEnv.Logger.Named("clear-cache")
	ctx := cmd.Context()

	redisClient, err := cli.NewRedisClient(ctx, &bootEnv.Config.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	menuCache := cache.NewRedisRoleMenuCache(redisClient, log)
	if err := menuCache.DeleteAll(ctx); err != nil {
		return err
	}

	log.Infow("role menu tree cache cleared")
	return nil
}
