package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/random-dog/internal/config"
	"github.com/ytget/random-dog/internal/model"
	"github.com/ytget/random-dog/internal/platform"
	"github.com/ytget/random-dog/internal/viewstate"
)

// Controller is what the UI needs from the state machine
type Controller interface {
	RequestNewImage()
	RequestSave()
	State() viewstate.State
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	controller   Controller
	settings     *config.Settings
	localization *Localization

	// last rendered state and the actions of its view, by text key
	state   viewstate.State
	buttons map[string]*widget.Button

	reveal func(path string) error
}

// NewRootUI creates the main UI and renders the controller's current state
func NewRootUI(window fyne.Window, app fyne.App, controller Controller) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		controller:   controller,
		settings:     settings,
		localization: localization,
		buttons:      make(map[string]*widget.Button),
		reveal:       platform.OpenFileInManager,
	}

	ui.createMenu()
	ui.Render(controller.State())
	return ui
}

// OnStateChange is the state machine update callback. It may be called from
// any goroutine.
func (ui *RootUI) OnStateChange(s viewstate.State) {
	fyne.Do(func() {
		ui.Render(s)
	})
}

// Render replaces the window content with the view for s. Must run on the
// Fyne thread.
func (ui *RootUI) Render(s viewstate.State) {
	previous := ui.state
	ui.state = s
	ui.buttons = make(map[string]*widget.Button)

	ui.window.SetTitle(ui.Title(s))
	ui.window.SetContent(container.NewPadded(ui.buildView(s)))

	if s.Status == model.ViewStatusSaved && s.Version != previous.Version && ui.settings.GetRevealAfterSave() {
		go ui.revealSaved(s.SavedPath)
	}
}

// Title returns the window title for s
func (ui *RootUI) Title(s viewstate.State) string {
	var subtitle string
	switch s.Status {
	case model.ViewStatusLoaded:
		subtitle = s.Image.Title()
	case model.ViewStatusErrored:
		subtitle = ui.localization.GetText(KeyTitleErrored)
	case model.ViewStatusSaving:
		subtitle = ui.localization.GetText(KeyTitleSaving)
	case model.ViewStatusSaved:
		subtitle = ui.localization.GetText(KeyTitleSaved)
	default:
		subtitle = ui.localization.GetText(KeyTitleLoading)
	}
	return fmt.Sprintf("%s%s%s", subtitle, TitleSeparator, ui.localization.GetText(KeyAppTitle))
}

// buildView creates the content for one state
func (ui *RootUI) buildView(s viewstate.State) fyne.CanvasObject {
	switch s.Status {
	case model.ViewStatusLoaded:
		return ui.buildLoadedView(s.Image)

	case model.ViewStatusErrored:
		return container.NewCenter(container.NewVBox(
			ui.heading(KeySomethingWrong),
			ui.action(KeyTryAgain, ui.controller.RequestNewImage),
		))

	case model.ViewStatusSaving:
		return ui.busyView(KeySaving)

	case model.ViewStatusSaved:
		return container.NewCenter(container.NewVBox(
			ui.heading(KeyDogSaved),
			container.NewHBox(
				ui.action(KeyFindAnother, ui.controller.RequestNewImage),
				ui.action(KeyShowInFolder, func() { go ui.revealSaved(s.SavedPath) }, IconFolder),
			),
		))

	default:
		return ui.busyView(KeySearching)
	}
}

// buildLoadedView shows the image with its two actions
func (ui *RootUI) buildLoadedView(img *model.DogImage) fyne.CanvasObject {
	var picture fyne.CanvasObject
	decoded, err := img.Decode()
	if err != nil {
		log.WithError(err).WithField("file", img.FileName).Warn("Cannot display image")
		picture = container.NewCenter(ui.heading(KeyCannotDisplay))
	} else {
		c := canvas.NewImageFromImage(decoded)
		c.FillMode = canvas.ImageFillContain
		c.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))
		picture = c
	}

	save := ui.action(KeySaveDog, ui.controller.RequestSave)
	save.Importance = widget.HighImportance

	actions := container.NewHBox(ui.action(KeyKeepSearching, ui.controller.RequestNewImage), save)
	return container.NewBorder(nil, container.NewCenter(actions), nil, nil, picture)
}

// busyView shows a message over an infinite progress bar
func (ui *RootUI) busyView(key string) fyne.CanvasObject {
	progress := widget.NewProgressBarInfinite()
	return container.NewCenter(container.NewVBox(ui.heading(key), progress))
}

// heading creates a large centered status text
func (ui *RootUI) heading(key string) *canvas.Text {
	text := canvas.NewText(ui.localization.GetText(key), theme.Color(theme.ColorNameForeground))
	text.TextSize = theme.Size(theme.SizeNameHeadingText)
	text.Alignment = fyne.TextAlignCenter
	return text
}

// action creates a button and registers it for the current view
func (ui *RootUI) action(key string, tapped func(), prefix ...string) *widget.Button {
	label := ui.localization.GetText(key)
	if len(prefix) > 0 {
		label = prefix[0] + " " + label
	}
	btn := widget.NewButton(label, tapped)
	ui.buttons[key] = btn
	return btn
}

// revealSaved opens the file manager at path
func (ui *RootUI) revealSaved(path string) {
	if err := ui.reveal(path); err != nil {
		log.WithError(err).WithField("path", path).Warn("Failed to reveal saved image")
		fyne.Do(func() {
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
		})
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches language and redraws the current view
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds menu and content with the current language
func (ui *RootUI) refreshUITexts() {
	ui.createMenu()
	ui.Render(ui.state)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}).Show()
}
