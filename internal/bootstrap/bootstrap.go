package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	exportinadapter "hourly/internal/modules/export/adapter/in"
	exportoutadapter "hourly/internal/modules/export/adapter/out"
	exportusecase "hourly/internal/modules/export/usecase"
	reportinadapter "hourly/internal/modules/report/adapter/in"
	reportusecase "hourly/internal/modules/report/usecase"
	taskinadapter "hourly/internal/modules/task/adapter/in"
	taskoutadapter "hourly/internal/modules/task/adapter/out"
	taskservice "hourly/internal/modules/task/service"
	taskusecase "hourly/internal/modules/task/usecase"
	timerinadapter "hourly/internal/modules/timer/adapter/in"
	timeroutadapter "hourly/internal/modules/timer/adapter/out"
	timerservice "hourly/internal/modules/timer/service"
	timerusecase "hourly/internal/modules/timer/usecase"
	"hourly/internal/platform/clock"
	"hourly/internal/platform/config"
	"hourly/internal/platform/id"
	"hourly/internal/platform/tx"
	uiapp "hourly/internal/ui/app"
)

type App struct {
	Config    config.Config
	TaskCLI   taskinadapter.CLIHandler
	TimerCLI  timerinadapter.CLIHandler
	ReportCLI reportinadapter.CLIHandler
	ExportCLI exportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	taskStore := taskoutadapter.NewFileTaskStore(cfg.DataDir)
	taskProjector, err := taskoutadapter.NewSQLiteTaskProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new task projector: %w", err)
	}
	taskUC := taskusecase.NewInteractor(
		taskservice.NewTaskService(clk, ids, taskStore, taskProjector, tx.NoopManager{}),
		cfg.DefaultClient,
	)

	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(clk),
		taskUC,
		timeroutadapter.NewFileActiveTimerStore(cfg.DataDir),
	)

	reportUC := reportusecase.NewInteractor(taskUC)
	exportUC := exportusecase.NewInteractor(reportUC, exportoutadapter.NewFileDelivery(cfg.ExportDir))

	return &App{
		Config:    cfg,
		TaskCLI:   taskinadapter.NewCLIHandler(taskUC),
		TimerCLI:  timerinadapter.NewCLIHandler(timerUC),
		ReportCLI: reportinadapter.NewCLIHandler(reportUC),
		ExportCLI: exportinadapter.NewCLIHandler(exportUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TaskCLI, app.TimerCLI, app.ReportCLI, app.Config.DefaultClient)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
