package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/engine"
	"github.com/tartampluch/go-datewheel/internal/server"
)

// Overrides carries bounds given on the command line. They win over the
// stored preferences for the lifetime of the process.
type Overrides struct {
	Lower  string // YYYY-MM-DD, empty keeps the preference
	Upper  string
	Strict bool
}

// PickerConfig is the engine configuration assembled from preferences.
type PickerConfig struct {
	Lower           time.Time
	Upper           time.Time
	Mode            engine.RangeMode
	Fallback        engine.FallbackPolicy
	ReminderTrigger string
}

// DateWheelApp encapsulates the UI state, preferences, and background logic.
type DateWheelApp struct {
	App            fyne.App
	Window         fyne.Window
	settingsWindow fyne.Window
	Preferences    fyne.Preferences
	I18nBundle     *i18n.Bundle
	Localizer      *i18n.Localizer
	Ctx            context.Context

	Server    *server.FeedServer
	Clock     engine.Clock // Injected clock for testability
	Overrides Overrides

	Picker      *engine.Picker
	Wheel       *WheelPicker
	StatusLabel *widget.Label

	Tray desktop.App
	Menu *fyne.Menu

	MenuNowItem      *fyne.MenuItem
	MenuSettingsItem *fyne.MenuItem

	SupportedLanguages []string
	reminderTrigger    string
}

// NewDateWheelApp constructs the application and wires dependencies.
func NewDateWheelApp(a fyne.App, ctx context.Context, srv *server.FeedServer, overrides Overrides) *DateWheelApp {
	return &DateWheelApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Clock:              engine.RealClock{},
		Overrides:          overrides,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the application services and the main UI loop.
func (app *DateWheelApp) Run() {
	app.SetupI18n()
	app.BuildPicker()
	app.buildMainWindow()

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyPort, app.Server.Port,
			config.LogKeyComponent, config.CompUI)

		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayMenu(app.Menu)
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	go app.refreshWorker()
	app.Window.Show()
	app.App.Run()
}

// BuildPicker creates the engine and the wheel from the stored preferences
// and publishes the initial selection.
func (app *DateWheelApp) BuildPicker() {
	cfg := app.loadPickerConfig()
	app.reminderTrigger = cfg.ReminderTrigger

	app.Picker = engine.NewPicker(app.Clock,
		engine.WithBounds(cfg.Lower, cfg.Upper),
		engine.WithRangeMode(cfg.Mode),
		engine.WithFallback(cfg.Fallback),
		engine.WithOnResolved(app.handleResolved),
	)
	app.Wheel = NewWheelPicker(app.Picker)
	app.Wheel.OnError = app.handleSelectionError
	app.resolveCurrent()
}

// buildMainWindow assembles the wheel, the status line and the menu.
func (app *DateWheelApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	if app.StatusLabel == nil {
		app.StatusLabel = widget.NewLabel(app.GetMsg(config.TKeyStatusNone))
	}
	app.StatusLabel.Alignment = fyne.TextAlignCenter

	app.setupMenu()
	w.SetMainMenu(fyne.NewMainMenu(app.Menu))
	w.SetContent(container.NewBorder(nil, app.StatusLabel, nil, nil, app.Wheel))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetMaster()
}

// setupMenu constructs the menu shared by the window and the system tray.
func (app *DateWheelApp) setupMenu() {
	app.MenuNowItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuNow), func() {
		app.JumpToNow()
	})
	app.MenuSettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})
	app.Menu = fyne.NewMenu(config.AppName, app.MenuNowItem, app.MenuSettingsItem)
}

// RefreshMenu updates localized labels in the menu and the window title.
func (app *DateWheelApp) RefreshMenu() {
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	if app.Menu == nil {
		return
	}
	app.MenuNowItem.Label = app.GetMsg(config.TKeyMenuNow)
	app.MenuSettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// refreshWorker re-resolves the selection every minute so a selection
// that has fallen into the past is clamped even without user input.
func (app *DateWheelApp) refreshWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	ticker := time.NewTicker(config.RefreshInterval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, config.RefreshInterval)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-ticker.C:
			fyne.Do(app.refreshSelection)
		}
	}
}

// refreshSelection follows the year when the default bounds are in use,
// then resolves the current rows against the clock.
func (app *DateWheelApp) refreshSelection() {
	if app.Picker == nil {
		return
	}
	if app.usesDefaultBounds() {
		lower, _ := app.Picker.Bounds()
		if now := app.Clock.Now(); now.Year() != lower.Year() {
			slog.Info(config.MsgYearRollover,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyValue, now.Year())
			app.applyPickerConfig()
			return
		}
	}
	app.resolveCurrent()
}

// resolveCurrent resolves the current rows and moves the wheel if clamped.
func (app *DateWheelApp) resolveCurrent() {
	res, err := app.Picker.Refresh()
	if err != nil {
		app.handleSelectionError(err)
		return
	}
	if res.Outcome == engine.Clamped && app.Wheel != nil {
		app.Wheel.SyncSelection(res.Indices)
	}
}

// JumpToNow moves the wheel to the current moment.
func (app *DateWheelApp) JumpToNow() {
	res, err := app.Picker.SelectNow()
	if err != nil {
		app.handleSelectionError(err)
		return
	}
	app.Wheel.SyncSelection(res.Indices)
}

// applyPickerConfig pushes the stored preferences into the running picker.
func (app *DateWheelApp) applyPickerConfig() {
	cfg := app.loadPickerConfig()
	app.reminderTrigger = cfg.ReminderTrigger

	app.Picker.SetFallback(cfg.Fallback)
	app.Picker.SetRangeMode(cfg.Mode)
	app.Picker.SetBounds(cfg.Lower, cfg.Upper)
	if app.Wheel != nil {
		app.Wheel.Reload()
	}
	app.resolveCurrent()
}

// handleResolved updates the status line and republishes the feed.
func (app *DateWheelApp) handleResolved(res engine.ResolvedSelection) {
	stamp := res.Timestamp.Format(config.DateFormatStatus)
	data := map[string]interface{}{"Time": stamp}

	key := config.TKeyStatusAccepted
	if res.Outcome == engine.Clamped {
		key = config.TKeyStatusClamped
	}
	app.setStatus(app.GetMsgWith(key, data))

	summary := app.GetMsgWith(config.TKeyEvtSummary, data)
	if summary == config.TKeyEvtSummary {
		summary = ""
	}

	ics, err := engine.BuildEventICS(res, engine.ExportOptions{
		Now:             app.Clock.Now(),
		Summary:         summary,
		ReminderTrigger: app.reminderTrigger,
	})
	if err != nil {
		slog.Error(config.ErrExport,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	if app.Server != nil {
		app.Server.Publish(ics, app.Clock.Now())
	}
}

func (app *DateWheelApp) handleSelectionError(err error) {
	slog.Warn(config.ErrSelection,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)
	app.setStatus(app.GetMsg(config.TKeyStatusError))
}

func (app *DateWheelApp) setStatus(text string) {
	if app.StatusLabel == nil {
		app.StatusLabel = widget.NewLabel(text)
		return
	}
	app.StatusLabel.SetText(text)
}

// usesDefaultBounds reports whether neither preferences nor flags pin the bounds.
func (app *DateWheelApp) usesDefaultBounds() bool {
	return app.lowerText() == "" && app.upperText() == ""
}

func (app *DateWheelApp) lowerText() string {
	if app.Overrides.Lower != "" {
		return app.Overrides.Lower
	}
	return app.Preferences.String(config.PrefLowerBound)
}

func (app *DateWheelApp) upperText() string {
	if app.Overrides.Upper != "" {
		return app.Overrides.Upper
	}
	return app.Preferences.String(config.PrefUpperBound)
}

// loadPickerConfig assembles the engine configuration from preferences and flags.
// Missing or malformed bounds fall back to the clock's current year.
func (app *DateWheelApp) loadPickerConfig() PickerConfig {
	now := app.Clock.Now()
	loc := now.Location()

	cfg := PickerConfig{
		Lower:    engine.StartOfYear(now),
		Upper:    engine.EndOfYear(now),
		Mode:     engine.RangeFullYears,
		Fallback: engine.FallbackError,
	}

	if text := app.lowerText(); text != "" {
		if t, err := engine.ParseBound(text, loc); err == nil {
			cfg.Lower = t
		} else {
			slog.Warn(config.ErrBoundParse, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
		}
	}
	if text := app.upperText(); text != "" {
		if t, err := engine.ParseBound(text, loc); err == nil {
			cfg.Upper = t
		} else {
			slog.Warn(config.ErrBoundParse, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
		}
	}

	if app.Overrides.Strict || app.Preferences.Bool(config.PrefRangeStrict) {
		cfg.Mode = engine.RangeStrict
	}
	if app.Preferences.String(config.PrefFallback) == config.FallbackPolicyNearestBound {
		cfg.Fallback = engine.FallbackNearestBound
	}

	if app.Preferences.Bool(config.PrefReminderEnabled) {
		cfg.ReminderTrigger = buildReminderTrigger(
			app.Preferences.IntWithFallback(config.PrefReminderValue, config.DefaultReminderValue),
			app.Preferences.StringWithFallback(config.PrefReminderUnit, config.UnitMinutes),
			app.Preferences.StringWithFallback(config.PrefReminderDir, config.DirBefore),
		)
	}

	return cfg
}

// buildReminderTrigger renders an ISO8601 duration such as "-PT10M".
// Hours and minutes go after the time designator.
func buildReminderTrigger(val int, unit, dir string) string {
	sign := config.ISOPeriodPrefix
	if dir == config.DirBefore {
		sign = config.ISONegativePrefix
	}

	switch unit {
	case config.UnitHours:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, val, config.ISOHour)
	case config.UnitMinutes:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, val, config.ISOMinute)
	default:
		return fmt.Sprintf("%s%d%s", sign, val, config.ISODay)
	}
}
