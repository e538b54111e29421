package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"

	activityinadapter "readlog/internal/modules/activity/adapter/in"
	activityoutadapter "readlog/internal/modules/activity/adapter/out"
	activityservice "readlog/internal/modules/activity/service"
	activityusecase "readlog/internal/modules/activity/usecase"
	coversinadapter "readlog/internal/modules/covers/adapter/in"
	coversoutadapter "readlog/internal/modules/covers/adapter/out"
	coversservice "readlog/internal/modules/covers/service"
	coversusecase "readlog/internal/modules/covers/usecase"
	libraryinadapter "readlog/internal/modules/library/adapter/in"
	libraryoutadapter "readlog/internal/modules/library/adapter/out"
	libraryservice "readlog/internal/modules/library/service"
	libraryusecase "readlog/internal/modules/library/usecase"
	renderinadapter "readlog/internal/modules/render/adapter/in"
	renderoutadapter "readlog/internal/modules/render/adapter/out"
	renderservice "readlog/internal/modules/render/service"
	renderusecase "readlog/internal/modules/render/usecase"
	"readlog/internal/platform/config"
	uiapp "readlog/internal/ui/app"
)

type App struct {
	LibraryCLI  libraryinadapter.CLIHandler
	ActivityCLI activityinadapter.CLIHandler
	CoversCLI   coversinadapter.CLIHandler
	RenderCLI   renderinadapter.CLIHandler
}

func New(cfg config.Config) *App {
	libraryStore := libraryoutadapter.NewCSVLibraryStore(cfg.CSVPath)
	libraryProjector := libraryoutadapter.NewSQLiteLibraryProjector(cfg.DBPath)
	libraryUC := libraryusecase.NewInteractor(libraryservice.NewLibraryService(libraryStore, libraryProjector))

	activityUC := activityusecase.NewInteractor(activityservice.NewActivityService(
		activityoutadapter.NewLibrarySessionAdapter(libraryUC),
	))

	coversUC := coversusecase.NewInteractor(coversservice.NewCoverService(
		coversoutadapter.NewDirResolver(cfg.CoversDir),
		coversoutadapter.NewActivityTimelineAdapter(activityUC),
		coversoutadapter.NewOSExternalLauncher(cfg.Reader),
	))

	renderUC := renderusecase.NewInteractor(renderservice.NewRenderService(
		renderoutadapter.NewFileManifestStore(cfg.PluginsDir),
		renderoutadapter.NewGRPCHost(),
		renderoutadapter.NewActivityFrameAdapter(activityUC, coversUC),
	))

	return &App{
		LibraryCLI:  libraryinadapter.NewCLIHandler(libraryUC),
		ActivityCLI: activityinadapter.NewCLIHandler(activityUC),
		CoversCLI:   coversinadapter.NewCLIHandler(coversUC),
		RenderCLI:   renderinadapter.NewCLIHandler(renderUC),
	}
}

func RunTUI(year int, app *App) error {
	model := uiapp.NewModel(year, app.ActivityCLI, app.CoversCLI, app.LibraryCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
