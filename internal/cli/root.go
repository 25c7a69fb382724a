package cli

import (
	"time"

	"github.com/alexanderramin/trailmap/internal/config"
	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/alexanderramin/trailmap/internal/service"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// App holds what CLI commands need. Setup, when set, fills the other
// fields from the loaded settings after flags are parsed; tests set the
// fields directly instead.
type App struct {
	Planner    service.PlannerService
	Schedule   scheduler.Schedule
	Logger     *log.Logger
	ServerAddr string

	Now           func() time.Time
	IsInteractive func() bool
	Confirm       func(title string) (bool, error)

	Setup func(v *viper.Viper) error
}

func (a *App) today() domain.Date {
	if a.Now == nil {
		return domain.Today()
	}
	return domain.DateOf(a.Now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// flagKeys maps root persistent flags to config keys.
var flagKeys = map[string]string{
	"store": "store.backend",
	"db":    "store.db_path",
	"root":  "store.root_dir",
}

// NewRootCmd creates the top-level "trailmap" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "trailmap",
		Short:         "Project roadmaps with progress tracking and spaced-repetition training",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			v, err := config.New(configPath)
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return app.Setup(v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.trailmap/config.yaml)")
	flags.String("store", "", "store backend: sqlite or dir")
	flags.String("db", "", "SQLite database path")
	flags.String("root", "", "project folder root for the dir backend")

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newDueCmd(app),
		newServeCmd(app),
	)

	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
