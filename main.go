package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/random-dog/internal/config"
	"github.com/ytget/random-dog/internal/fetch"
	"github.com/ytget/random-dog/internal/save"
	"github.com/ytget/random-dog/internal/ui"
	"github.com/ytget/random-dog/internal/viewstate"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.random-dog"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	log.WithField("version", version).Info("Random Dog starting")

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDogTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		log.WithError(err).Debug("App icon not found")
	}

	// Initialize services
	fetcher := fetch.NewServiceFromConfig(cfg)
	saver := save.NewServiceFromConfig(cfg)
	log.WithField("output_dir", saver.OutputDir()).Info("Saving dogs to output directory")
	machine := viewstate.NewMachine(fetcher, saver, cfg.EventBacklog)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, machine)
	machine.SetUpdateCallback(rootUI.OnStateChange)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	myApp.Lifecycle().SetOnStarted(func() {
		machine.Start(ctx)
	})
	myApp.Lifecycle().SetOnStopped(cancel)

	// Show and run
	myWindow.ShowAndRun()
	log.Info("Random Dog exiting")
}
