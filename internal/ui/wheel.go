package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/engine"
)

// columnAlign mirrors the wheel: dates hug the hour column, minutes start after it.
var columnAlign = [config.ColumnCount]fyne.TextAlign{
	config.ColumnDate:   fyne.TextAlignTrailing,
	config.ColumnHour:   fyne.TextAlignCenter,
	config.ColumnMinute: fyne.TextAlignLeading,
}

var columnRatio = []float32{
	config.ColumnRatioDate,
	config.ColumnRatioHour,
	config.ColumnRatioMinute,
}

// WheelPicker renders an engine.Picker as three scrollable columns.
// Row changes are forwarded to the Picker; when the Picker clamps a
// selection the columns are moved to the effective rows.
type WheelPicker struct {
	widget.BaseWidget

	picker  *engine.Picker
	columns [config.ColumnCount]*widget.List

	// syncing suppresses OnSelected while the widget moves rows itself.
	syncing bool
	shown   [config.ColumnCount]int

	// OnError receives selection errors; the columns snap back afterwards.
	OnError func(err error)
}

// NewWheelPicker builds the widget and selects the Picker's current rows.
func NewWheelPicker(p *engine.Picker) *WheelPicker {
	w := &WheelPicker{picker: p}
	for col := range w.columns {
		w.columns[col] = w.newColumn(col)
	}
	w.ExtendBaseWidget(w)
	w.SyncSelection(p.Indices())
	return w
}

func (w *WheelPicker) newColumn(col int) *widget.List {
	list := widget.NewList(
		func() int {
			return w.picker.Len(col)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel(config.FallbackStatusNo)
			label.Alignment = columnAlign[col]
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(w.picker.RowTitle(col, id))
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		w.onRowSelected(col, id)
	}
	return list
}

func (w *WheelPicker) onRowSelected(col, row int) {
	if w.syncing {
		return
	}
	w.shown[col] = row
	res, err := w.picker.Select(col, row)
	if err != nil {
		slog.Warn(config.ErrSelection,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyColumn, col,
			config.LogKeyIndex, row,
			config.LogKeyError, err)
		w.SyncSelection(w.picker.Indices())
		if w.OnError != nil {
			w.OnError(err)
		}
		return
	}
	if res.Outcome == engine.Clamped {
		w.SyncSelection(res.Indices)
	}
}

// SyncSelection moves the columns to idx without triggering a new resolve.
func (w *WheelPicker) SyncSelection(idx engine.Indices) {
	w.syncing = true
	defer func() { w.syncing = false }()

	rows := [config.ColumnCount]int{
		config.ColumnDate:   idx.Date,
		config.ColumnHour:   idx.Hour,
		config.ColumnMinute: idx.Minute,
	}
	for col, list := range w.columns {
		if w.picker.Len(col) == 0 {
			list.UnselectAll()
			continue
		}
		list.Select(rows[col])
	}
	w.shown = rows
}

// Shown returns the rows currently highlighted in the columns.
func (w *WheelPicker) Shown() engine.Indices {
	return engine.Indices{
		Date:   w.shown[config.ColumnDate],
		Hour:   w.shown[config.ColumnHour],
		Minute: w.shown[config.ColumnMinute],
	}
}

// Reload refreshes the rows after the Picker's bounds or mode changed.
func (w *WheelPicker) Reload() {
	for _, list := range w.columns {
		list.UnselectAll()
		list.Refresh()
	}
	w.SyncSelection(w.picker.Indices())
}

// CreateRenderer lays the columns out side by side.
func (w *WheelPicker) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, len(w.columns))
	for i, list := range w.columns {
		objects[i] = list
	}
	return widget.NewSimpleRenderer(container.New(&ratioLayout{ratios: columnRatio}, objects...))
}

// ratioLayout gives each object a fixed share of the width and the full height.
type ratioLayout struct {
	ratios []float32
}

func (l *ratioLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	x := float32(0)
	for i, o := range objects {
		width := size.Width * l.ratio(i, len(objects))
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(width, size.Height))
		x += width
	}
}

func (l *ratioLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for i, o := range objects {
		ms := o.MinSize()
		// The narrowest share decides how wide the whole row must be.
		if r := l.ratio(i, len(objects)); r > 0 && ms.Width/r > size.Width {
			size.Width = ms.Width / r
		}
		if ms.Height > size.Height {
			size.Height = ms.Height
		}
	}
	return size
}

func (l *ratioLayout) ratio(i, n int) float32 {
	if i < len(l.ratios) {
		return l.ratios[i]
	}
	return 1 / float32(n)
}
