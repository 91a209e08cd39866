package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	appsinadapter "focusctl/internal/modules/apps/adapter/in"
	appsoutadapter "focusctl/internal/modules/apps/adapter/out"
	appsservice "focusctl/internal/modules/apps/service"
	appsusecase "focusctl/internal/modules/apps/usecase"
	deviceinadapter "focusctl/internal/modules/device/adapter/in"
	deviceoutadapter "focusctl/internal/modules/device/adapter/out"
	deviceservice "focusctl/internal/modules/device/service"
	deviceusecase "focusctl/internal/modules/device/usecase"
	focusinadapter "focusctl/internal/modules/focus/adapter/in"
	focusoutadapter "focusctl/internal/modules/focus/adapter/out"
	focusservice "focusctl/internal/modules/focus/service"
	focususecase "focusctl/internal/modules/focus/usecase"
	intentioninadapter "focusctl/internal/modules/intention/adapter/in"
	intentionoutadapter "focusctl/internal/modules/intention/adapter/out"
	intentionservice "focusctl/internal/modules/intention/service"
	intentionusecase "focusctl/internal/modules/intention/usecase"
	"focusctl/internal/platform/clock"
	"focusctl/internal/platform/config"
	uiapp "focusctl/internal/ui/app"
)

type App struct {
	FocusCLI     focusinadapter.CLIHandler
	IntentionCLI intentioninadapter.CLIHandler
	AppsCLI      appsinadapter.CLIHandler
	DeviceCLI    deviceinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	host := deviceoutadapter.NewGRPCHost(cfg.DevicePlugin)
	deviceUC := deviceusecase.NewInteractor(deviceservice.NewDeviceService(host), host)

	bridge := focusoutadapter.NewDeviceBridge(deviceUC)
	catalogStore := focusoutadapter.NewFileCatalogStore(cfg.StateDir)
	focusUC := focususecase.NewInteractor(
		focusservice.NewFocusService(clk, catalogStore, focusoutadapter.NewFileSettingsStore(cfg.StateDir)),
		catalogStore,
		focusoutadapter.NewFileActiveModeStore(cfg.StateDir),
		bridge,
		bridge,
		bridge,
	)

	projector, err := intentionoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	intentionUC := intentionusecase.NewInteractor(intentionservice.NewIntentionService(
		clk,
		intentionoutadapter.NewFileLogStore(cfg.StateDir),
		projector,
	))

	inventory := appsoutadapter.NewDeviceInventoryAdapter(deviceUC)
	appsUC := appsusecase.NewInteractor(appsservice.NewAppsService(
		appsoutadapter.NewFileFavoritesStore(cfg.StateDir),
		appsoutadapter.NewFileUsageStore(cfg.StateDir),
		inventory,
		inventory,
	))

	return &App{
		FocusCLI:     focusinadapter.NewCLIHandler(focusUC),
		IntentionCLI: intentioninadapter.NewCLIHandler(intentionUC),
		AppsCLI:      appsinadapter.NewCLIHandler(appsUC),
		DeviceCLI:    deviceinadapter.NewCLIHandler(deviceUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.FocusCLI, app.IntentionCLI, app.AppsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
