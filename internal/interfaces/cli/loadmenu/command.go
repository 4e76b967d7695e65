package loadmenu

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	menuUsecases "helpdesk/internal/application/menu/usecases"
	"helpdesk/internal/domain/menu"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/cli"
	"helpdesk/internal/shared/errors"
)

var (
	env           string
	file          string
	clearExisting bool
)

// menuEntry is one node of the YAML menu definition. Children nest
// arbitrarily deep up to the hierarchy limit enforced by the domain.
type menuEntry struct {
	Name         string      `yaml:"name"`
	Path         string      `yaml:"path"`
	CreatePath   string      `yaml:"create_path"`
	ListPath     string      `yaml:"list_path"`
	Icon         string      `yaml:"icon"`
	DisplayOrder int         `yaml:"display_order"`
	Children     []menuEntry `yaml:"children"`
}

type menuFile struct {
	Menus []menuEntry `yaml:"menus"`
}

// NewCommand loads a menu hierarchy from a YAML file. Entries whose
// name already exists are skipped, so the command can be re-run after
// editing the file.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load-menus",
		Short: "Load the menu hierarchy from a YAML file",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/menus.yaml", "Path to the menu definition file")
	cmd.Flags().BoolVar(&clearExisting, "clear", false, "Delete all existing menus before loading")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	bootEnv, err := cli.Setup(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log := bootEnv.Logger.Named("load-menus")

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read menu file: %w", err)
	}

	var def menuFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("failed to parse menu file: %w", err)
	}
	if len(def.Menus) == 0 {
		return fmt.Errorf("menu file %s defines no menus", file)
	}

	if err := database.EnsureSchema(database.Get()); err != nil {
		return err
	}

	menuRepo := repository.NewMenuRepository(database.Get())
	createMenu := menuUsecases.NewCreateMenuUseCase(menuRepo, log)

	ctx := cmd.Context()

	if clearExisting {
		removed, err := menuRepo.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear menus: %w", err)
		}
		log.Infow("existing menus cleared", "removed", removed)

		// Cached role trees reference the old menus.
		redisClient, err := cli.NewRedisClient(ctx, &bootEnv.Config.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		if err := cache.NewRedisRoleMenuCache(redisClient, log).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear menu cache: %w", err)
		}
	}
	loader := &menuLoader{createMenu: createMenu, menuRepo: menuRepo}
	for _, entry := range def.Menus {
		if err := loader.load(ctx, entry, nil); err != nil {
			return err
		}
	}
	created, skipped := loader.created, loader.skipped

	log.Infow("menu hierarchy loaded", "file", file, "created", created, "skipped", skipped)
	return nil
}

type menuLoader struct {
	createMenu *menuUsecases.CreateMenuUseCase
	menuRepo   menu.Repository
	created    int
	skipped    int
}

func (l *menuLoader) load(ctx context.Context, entry menuEntry, parentID *uint) error {
	result, err := l.createMenu.Execute(ctx, menuUsecases.CreateMenuCommand{
		Name:         entry.Name,
		Path:         entry.Path,
		CreatePath:   entry.CreatePath,
		ListPath:     entry.ListPath,
		Icon:         entry.Icon,
		ParentID:     parentID,
		DisplayOrder: entry.DisplayOrder,
	})

	var id uint
	switch {
	case err == nil:
		id = result.Menu.ID()
		l.created++
	case errors.IsValidationError(err):
		// Already present, resolve the ID so children still attach.
		existing, getErr := l.menuRepo.GetByPath(ctx, entry.Path)
		if getErr != nil {
			return getErr
		}
		if existing == nil {
			return fmt.Errorf("failed to create menu %q: %w", entry.Name, err)
		}
		id = existing.ID()
		l.skipped++
	default:
		return fmt.Errorf("failed to create menu %q: %w", entry.Name, err)
	}

	for _, child := range entry.Children {
		if err := l.load(ctx, child, &id); err != nil {
			return err
		}
	}

	return nil
}
