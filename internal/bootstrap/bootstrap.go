package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	cataloginadapter "timearena/internal/modules/catalog/adapter/in"
	catalogoutadapter "timearena/internal/modules/catalog/adapter/out"
	catalogservice "timearena/internal/modules/catalog/service"
	catalogusecase "timearena/internal/modules/catalog/usecase"
	progressinadapter "timearena/internal/modules/progress/adapter/in"
	progressoutadapter "timearena/internal/modules/progress/adapter/out"
	progressout "timearena/internal/modules/progress/port/out"
	progressservice "timearena/internal/modules/progress/service"
	progressusecase "timearena/internal/modules/progress/usecase"
	"timearena/internal/platform/clock"
	"timearena/internal/platform/config"
	"timearena/internal/ui/views/arena"
)

type App struct {
	ProgressCLI progressinadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler

	closers []func() error
}

func New(cfg config.Config, log logrus.FieldLogger) (*App, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}
	app := &App{}
	clk := clock.SystemClock{}

	var store progressout.RecordStore
	switch cfg.Store {
	case config.StoreSQLite:
		sqliteStore, err := progressoutadapter.NewSQLiteRecordStore(cfg.DBPath, cfg.StateKey, clk)
		if err != nil {
			return nil, fmt.Errorf("new sqlite record store: %w", err)
		}
		app.closers = append(app.closers, sqliteStore.Close)
		store = sqliteStore
	default:
		store = progressoutadapter.NewFileRecordStore(cfg.StatePath)
	}

	catalogSvc := catalogservice.NewCatalogService(
		catalogoutadapter.NewYAMLCatalogStore(cfg.CatalogPath),
		catalogoutadapter.NewMarkdownRulesStore(cfg.RulesPath),
	)
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	progressSvc := progressservice.NewProgressService(clk, store, log)
	progressUC := progressusecase.NewInteractor(progressSvc, catalogUC, log)

	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.CatalogCLI = cataloginadapter.NewCLIHandler(catalogUC)
	return app, nil
}

// Close releases the record store.
func (a *App) Close() error {
	var first error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunWatch(app *App) error {
	program := tea.NewProgram(arena.New(app.ProgressCLI), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
