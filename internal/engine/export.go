package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// ExportOptions parameterizes BuildEventICS.
type ExportOptions struct {
	// Now stamps the event (DTSTAMP).
	Now time.Time

	// Summary is the event title. Defaults to config.FallbackSummary.
	Summary string

	// ReminderTrigger is an ISO8601 duration (e.g. "-PT10M"). Empty disables the alarm.
	ReminderTrigger string
}

// BuildEventICS renders a resolved selection as a one-event iCalendar document.
func BuildEventICS(sel ResolvedSelection, opts ExportOptions) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	summary := opts.Summary
	if summary == "" {
		summary = fmt.Sprintf(config.FallbackSummary, sel.Timestamp.Format(config.DateFormatStatus))
	}

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, selectionUID(sel.Timestamp))
	event.Props.SetText(config.PropSummary, summary)

	stamp := opts.Now
	if stamp.IsZero() {
		stamp = time.Now()
	}
	event.Props.SetDateTime(config.PropDTStamp, stamp.UTC())
	event.Props.SetDateTime(config.PropDTStart, sel.Timestamp.UTC())

	if opts.ReminderTrigger != "" {
		addAlarm(event, opts.ReminderTrigger, summary)
	}
	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyOutcome, sel.Outcome.String(),
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

// selectionUID derives a stable UID from the selected instant.
func selectionUID(ts time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, ts.UTC().Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
