package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	settingsinadapter "sleepmaster/internal/modules/settings/adapter/in"
	settingsoutadapter "sleepmaster/internal/modules/settings/adapter/out"
	settingsdomain "sleepmaster/internal/modules/settings/domain"
	settingsusecase "sleepmaster/internal/modules/settings/usecase"
	statsinadapter "sleepmaster/internal/modules/stats/adapter/in"
	statsoutadapter "sleepmaster/internal/modules/stats/adapter/out"
	statsusecase "sleepmaster/internal/modules/stats/usecase"
	trackerinadapter "sleepmaster/internal/modules/tracker/adapter/in"
	trackeroutadapter "sleepmaster/internal/modules/tracker/adapter/out"
	trackerservice "sleepmaster/internal/modules/tracker/service"
	trackerusecase "sleepmaster/internal/modules/tracker/usecase"
	"sleepmaster/internal/platform/clock"
	"sleepmaster/internal/platform/config"
	"sleepmaster/internal/platform/id"
	"sleepmaster/internal/platform/kv"
	"sleepmaster/internal/platform/random"
	uiapp "sleepmaster/internal/ui/app"
)

type App struct {
	TrackerCLI  trackerinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler

	projector *trackeroutadapter.SQLiteHistoryProjector
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.SessionID{}
	rng := random.SystemSource{}

	store := kv.NewFileStore(cfg.DataDir)

	projector, err := trackeroutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}

	trackerUC := trackerusecase.NewInteractor(
		trackerservice.NewTrackerService(clk, ids, rng),
		trackeroutadapter.NewKVCurrentSessionStore(store),
		trackeroutadapter.NewKVHistoryStore(store, clk),
		projector,
	)

	settingsUC := settingsusecase.NewInteractor(settingsoutadapter.NewKVSettingsStore(store, settingsdomain.Settings{
		Bedtime:   cfg.Bedtime,
		WakeTime:  cfg.WakeTime,
		GoalHours: cfg.GoalHours,
	}))

	statsUC := statsusecase.NewInteractor(clk, statsoutadapter.NewSQLiteSessionIndex(projector.DB()))

	return &App{
		TrackerCLI:  trackerinadapter.NewCLIHandler(trackerUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		projector:   projector,
	}, nil
}

func (a *App) Close() error {
	return a.projector.Close()
}

// settingsBridge narrows the settings handler to the single value the
// tracker view displays.
type settingsBridge struct {
	settings settingsinadapter.CLIHandler
}

func (b settingsBridge) Bedtime(ctx context.Context) (string, error) {
	out, err := b.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return out.Bedtime, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TrackerCLI, settingsBridge{settings: app.SettingsCLI})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
