package main

import (
	"log"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/nittu/baby-flashcards/internal/config"
	"github.com/nittu/baby-flashcards/internal/logger"
	"github.com/nittu/baby-flashcards/internal/platform"
	"github.com/nittu/baby-flashcards/internal/playlist"
	"github.com/nittu/baby-flashcards/internal/storage"
	"github.com/nittu/baby-flashcards/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.nittu.babyflashcards"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	configPath := config.GetAppConfigPath()
	cfg, cfgErr := config.LoadAppConfig(configPath)

	appLogger := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if cfgErr != nil {
		appLogger.Warn("failed to load config, using defaults", "path", configPath, "error", cfgErr)
	}
	appLogger.Info("Baby Flashcards starting", "version", version, "config", configPath)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFlashcardTheme())

	kv := openStorage(myApp, cfg, appLogger)

	// Settings are loaded once here and flushed on exit
	settings := config.OpenSettingsStore(kv, appLogger)
	playlists := playlist.NewService(kv, appLogger)

	myWindow := myApp.NewWindow("")
	if platform.IsMobile() {
		myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	} else {
		myWindow.Resize(fyne.NewSize(ui.DesktopWindowWidth, ui.DesktopWindowHeight))
	}

	home := ui.NewHomeUI(myApp, myWindow, settings, playlists, appLogger)
	home.ShowHome()

	myApp.Lifecycle().SetOnStopped(func() {
		if err := settings.Flush(); err != nil {
			appLogger.Error("failed to flush settings", "error", err)
		}
		appLogger.Info("Baby Flashcards stopped")
	})

	myWindow.ShowAndRun()
}

// openStorage picks the key-value backend configured for playlists and settings
func openStorage(a fyne.App, cfg config.AppConfig, appLogger *slog.Logger) storage.KeyValue {
	if cfg.Storage.Backend != config.BackendFile {
		return storage.NewPreferences(a)
	}

	dir, err := cfg.StorageDir()
	if err == nil {
		var fileStore *storage.File
		fileStore, err = storage.NewFile(dir)
		if err == nil {
			appLogger.Info("using file storage", "dir", fileStore.Dir())
			return fileStore
		}
	}

	appLogger.Error("failed to open file storage, keeping data in memory", "error", err)
	return storage.NewMemory()
}
