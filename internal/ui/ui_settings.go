package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/engine"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect     *widget.Select
	lowerEntry     *FilteredEntry
	upperEntry     *FilteredEntry
	strictCheck    *widget.Check
	fallbackSelect *widget.Select
	entryPort      *FilteredEntry
	checkReminder  *widget.Check
	entryRemValue  *FilteredEntry
	selectRemUnit  *widget.Select
	selectRemDir   *widget.Select
}

// ShowSettingsWindow displays the configuration dialog.
func (app *DateWheelApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	var refreshLayout func()
	onLayoutChange := func() {
		if refreshLayout != nil {
			refreshLayout()
		}
	}

	rangeCard := app.buildRangeCard(sw)
	generalCard := app.buildGeneralCard(sw)
	notifCard := app.buildNotifCard(sw, onLayoutChange)

	saveAction := func() {
		if err := app.validateSettings(sw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		rangeCard,
		generalCard,
		notifCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	refreshLayout = func() {
		paddedContent.Refresh()
		w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	}

	w.SetContent(paddedContent)
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })

	refreshLayout()
	w.Show()
}

// newSettingsWidgets creates the form controls pre-filled from preferences.
func (app *DateWheelApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.lowerEntry = NewDateField()
	sw.lowerEntry.SetText(app.Preferences.String(config.PrefLowerBound))
	sw.lowerEntry.Validator = app.validateBound

	sw.upperEntry = NewDateField()
	sw.upperEntry.SetText(app.Preferences.String(config.PrefUpperBound))
	sw.upperEntry.Validator = app.validateBound

	sw.strictCheck = widget.NewCheck(app.GetMsg(config.TKeyLblStrict), nil)
	sw.strictCheck.Checked = app.Preferences.Bool(config.PrefRangeStrict)

	sw.fallbackSelect = widget.NewSelect([]string{
		app.GetMsg(config.TKeyFallbackError),
		app.GetMsg(config.TKeyFallbackNearest),
	}, nil)
	if app.Preferences.String(config.PrefFallback) == config.FallbackPolicyNearestBound {
		sw.fallbackSelect.SetSelected(app.GetMsg(config.TKeyFallbackNearest))
	} else {
		sw.fallbackSelect.SetSelected(app.GetMsg(config.TKeyFallbackError))
	}

	sw.entryPort = NewNumericalEntry(len(strconv.Itoa(config.MaxPort)))
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = app.validatePort

	sw.checkReminder = widget.NewCheck(app.GetMsg(config.TKeyLblEnableRem), nil)
	sw.checkReminder.Checked = app.Preferences.Bool(config.PrefReminderEnabled)

	sw.entryRemValue = NewNumericalEntry(0)
	sw.entryRemValue.SetText(strconv.Itoa(app.Preferences.IntWithFallback(config.PrefReminderValue, config.DefaultReminderValue)))

	sw.selectRemUnit = widget.NewSelect([]string{
		app.GetMsg(config.TKeyUnitDays),
		app.GetMsg(config.TKeyUnitHours),
		app.GetMsg(config.TKeyUnitMinutes),
	}, nil)
	switch app.Preferences.StringWithFallback(config.PrefReminderUnit, config.UnitMinutes) {
	case config.UnitDays:
		sw.selectRemUnit.SetSelected(app.GetMsg(config.TKeyUnitDays))
	case config.UnitHours:
		sw.selectRemUnit.SetSelected(app.GetMsg(config.TKeyUnitHours))
	default:
		sw.selectRemUnit.SetSelected(app.GetMsg(config.TKeyUnitMinutes))
	}

	sw.selectRemDir = widget.NewSelect([]string{
		app.GetMsg(config.TKeyDirBefore),
		app.GetMsg(config.TKeyDirAfter),
	}, nil)
	if app.Preferences.StringWithFallback(config.PrefReminderDir, config.DirBefore) == config.DirAfter {
		sw.selectRemDir.SetSelected(app.GetMsg(config.TKeyDirAfter))
	} else {
		sw.selectRemDir.SetSelected(app.GetMsg(config.TKeyDirBefore))
	}

	return sw
}

// buildRangeCard holds the bounds, the enumeration mode and the fallback policy.
func (app *DateWheelApp) buildRangeCard(sw *settingsWidgets) *widget.Card {
	itemLower := widget.NewFormItem(app.GetMsg(config.TKeyLblLowerBound), sw.lowerEntry)
	itemLower.HintText = app.GetMsg(config.TKeyHelpBound)
	itemUpper := widget.NewFormItem(app.GetMsg(config.TKeyLblUpperBound), sw.upperEntry)
	itemUpper.HintText = app.GetMsg(config.TKeyHelpBound)
	itemFallback := widget.NewFormItem(app.GetMsg(config.TKeyLblFallback), sw.fallbackSelect)

	form := widget.NewForm(itemLower, itemUpper, itemFallback)
	return widget.NewCard(app.GetMsg(config.TKeyLblRange), "", container.NewVBox(form, sw.strictCheck))
}

func (app *DateWheelApp) buildGeneralCard(sw *settingsWidgets) *widget.Card {
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	return widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemPort))
}

// buildNotifCard constructs the reminder UI.
func (app *DateWheelApp) buildNotifCard(sw *settingsWidgets, onLayoutChange func()) *widget.Card {
	controls := container.NewHBox(sw.selectRemUnit, sw.selectRemDir)
	row := container.NewBorder(nil, nil, nil, controls, sw.entryRemValue)

	sw.checkReminder.OnChanged = func(b bool) {
		if b {
			row.Show()
		} else {
			row.Hide()
		}
		if onLayoutChange != nil {
			onLayoutChange()
		}
	}

	if !sw.checkReminder.Checked {
		row.Hide()
	}

	return widget.NewCard(app.GetMsg(config.TKeyLblNotif), "", container.NewVBox(sw.checkReminder, row))
}

func (app *DateWheelApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// validateBound accepts an empty field (current year) or a YYYY-MM-DD date.
func (app *DateWheelApp) validateBound(s string) error {
	if s == "" {
		return nil
	}
	if _, err := engine.ParseBound(s, app.Clock.Now().Location()); err != nil {
		return errors.New(app.GetMsg(config.TKeyErrDate))
	}
	return nil
}

// validateSettings checks every field that blocks saving, including the
// order of the two bounds.
func (app *DateWheelApp) validateSettings(sw *settingsWidgets) error {
	for _, e := range []*FilteredEntry{sw.entryPort, sw.lowerEntry, sw.upperEntry} {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	if sw.lowerEntry.Text == "" || sw.upperEntry.Text == "" {
		return nil
	}
	loc := app.Clock.Now().Location()
	lower, _ := engine.ParseBound(sw.lowerEntry.Text, loc)
	upper, _ := engine.ParseBound(sw.upperEntry.Text, loc)
	if err := engine.ValidateBounds(lower, upper); err != nil {
		slog.Debug(config.ErrPrefSave, config.LogKeyComponent, config.CompUISet, config.LogKeyError, err)
		return errors.New(app.GetMsg(config.TKeyErrBounds))
	}
	return nil
}

// saveSettings persists the data and applies it to the running wheel.
// An empty reminder value disables reminders even when the box is checked.
func (app *DateWheelApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefLowerBound, sw.lowerEntry.Text)
	app.Preferences.SetString(config.PrefUpperBound, sw.upperEntry.Text)
	app.Preferences.SetBool(config.PrefRangeStrict, sw.strictCheck.Checked)

	fallback := config.FallbackPolicyError
	if sw.fallbackSelect.Selected == app.GetMsg(config.TKeyFallbackNearest) {
		fallback = config.FallbackPolicyNearestBound
	}
	app.Preferences.SetString(config.PrefFallback, fallback)

	if sw.entryPort.Text != app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort) {
		slog.Info(config.MsgPortChanged,
			config.LogKeyComponent, config.CompUISet,
			config.LogKeyPort, sw.entryPort.Text)
	}
	app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)

	if sw.entryRemValue.Text == "" {
		app.Preferences.SetBool(config.PrefReminderEnabled, false)
		slog.Info(config.MsgReminderOff, config.LogKeyComponent, config.CompUISet)
	} else {
		app.Preferences.SetBool(config.PrefReminderEnabled, sw.checkReminder.Checked)
		if v, err := strconv.Atoi(sw.entryRemValue.Text); err == nil {
			app.Preferences.SetInt(config.PrefReminderValue, v)
		}
	}

	unit := config.UnitMinutes
	switch sw.selectRemUnit.Selected {
	case app.GetMsg(config.TKeyUnitDays):
		unit = config.UnitDays
	case app.GetMsg(config.TKeyUnitHours):
		unit = config.UnitHours
	}
	app.Preferences.SetString(config.PrefReminderUnit, unit)

	dir := config.DirBefore
	if sw.selectRemDir.Selected == app.GetMsg(config.TKeyDirAfter) {
		dir = config.DirAfter
	}
	app.Preferences.SetString(config.PrefReminderDir, dir)

	app.UpdateLocalizer()
	app.RefreshMenu()
	if app.Picker != nil {
		app.applyPickerConfig()
	}
}
