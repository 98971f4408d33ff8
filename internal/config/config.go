package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go DateWheel"
	AppID             = "com.github.tartampluch.go-datewheel"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagMin          = "min"
	FlagMax          = "max"
	FlagStrict       = "strict"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescMin      = "Lower bound of the date column (YYYY-MM-DD), overrides preferences"
	FlagDescMax      = "Upper bound of the date column (YYYY-MM-DD), overrides preferences"
	FlagDescStrict   = "Only list days inside [min, max] instead of whole years"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Picker Columns
// -----------------------------------------------------------------------------

const (
	ColumnDate   = 0
	ColumnHour   = 1
	ColumnMinute = 2
	ColumnCount  = 3

	HoursPerDay    = 24
	MinutesPerHour = 60

	// SelectionGraceSeconds models "end of the selected minute": a minute
	// is not in the past until its last second has elapsed.
	SelectionGraceSeconds = 59

	// FallbackHour and FallbackMinute are used when the nearest-bound
	// fallback picks the last moment of a day.
	FallbackHour   = 23
	FallbackMinute = 59
)

// WeekdayLabels are the fixed weekday names, Sunday first.
var WeekdayLabels = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// -----------------------------------------------------------------------------
// Range & Fallback Policies
// -----------------------------------------------------------------------------

const (
	RangeModeFullYears = "full_years"
	RangeModeStrict    = "strict"

	FallbackPolicyError        = "error"
	FallbackPolicyNearestBound = "nearest_bound"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 520
	MainWindowWidth     = 420
	MainWindowHeight    = 300

	// Column width ratios of the wheel (date | hour | minute).
	ColumnRatioDate   float32 = 0.5
	ColumnRatioHour   float32 = 0.2
	ColumnRatioMinute float32 = 0.3

	// Preference Keys
	PrefLanguage        = "language"
	PrefLowerBound      = "lower_bound"
	PrefUpperBound      = "upper_bound"
	PrefRangeStrict     = "range_strict"
	PrefFallback        = "fallback_policy"
	PrefServerPort      = "server_port"
	PrefReminderEnabled = "reminder_enabled"
	PrefReminderValue   = "reminder_value"
	PrefReminderUnit    = "reminder_unit"
	PrefReminderDir     = "reminder_direction"
	PrefLastRun         = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "zh"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyWinSettings     = "win_settings_title"
	TKeyMenuSettings    = "menu_settings"
	TKeyMenuNow         = "menu_now"
	TKeyStatusNone      = "status_none"
	TKeyStatusAccepted  = "status_accepted" // Requires Time
	TKeyStatusClamped   = "status_clamped"  // Requires Time
	TKeyStatusError     = "status_error"
	TKeyLblLanguage     = "lbl_language"
	TKeyHelpLanguage    = "help_language"
	TKeyLblRange        = "lbl_range"
	TKeyLblLowerBound   = "lbl_lower_bound"
	TKeyLblUpperBound   = "lbl_upper_bound"
	TKeyHelpBound       = "help_bound"
	TKeyLblStrict       = "lbl_strict"
	TKeyLblFallback     = "lbl_fallback"
	TKeyFallbackError   = "fallback_error"
	TKeyFallbackNearest = "fallback_nearest"
	TKeyLblPort         = "lbl_server_port"
	TKeyHelpPort        = "help_port"
	TKeyLblGeneral      = "lbl_general"
	TKeyLblEnableRem    = "lbl_enable_reminders"
	TKeyUnitDays        = "unit_days"
	TKeyUnitHours       = "unit_hours"
	TKeyUnitMinutes     = "unit_minutes"
	TKeyDirBefore       = "dir_before"
	TKeyDirAfter        = "dir_after"
	TKeyLblNotif        = "lbl_notifications"
	TKeyBtnSave         = "btn_save"
	TKeyBtnCancel       = "btn_cancel"
	TKeyLblFooter       = "lbl_footer"
	TKeyEvtSummary      = "event_summary" // Requires Time

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
	TKeyErrDate      = "err_date_format"
	TKeyErrBounds    = "err_bounds_order"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort          = "18181"
	DefaultLanguage      = "en"
	DefaultReminderValue = 10
	UIDSalt              = "go-datewheel-v1-" // Salt for deterministic UID generation
	RefreshInterval      = 1 * time.Minute
)

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISOTimePrefix     = "T"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go DateWheel//Engine//EN"
	ICalCalName   = "DateWheel"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "godatewheel"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// DateFormatBound is the layout of bounds in flags and preferences.
	DateFormatBound = "2006-01-02"
	// DateFormatRow is the month/day prefix of a date row title.
	DateFormatRow = "01月02日"
	// DateFormatStatus is the layout of resolved timestamps in the status line.
	DateFormatStatus = "2006-01-02 15:04"

	MinPort = 1
	MaxPort = 65535

	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrEmptyRange       = "empty range: lower bound is after upper bound"
	ErrOutOfRange       = "selected index out of range"
	ErrTodayNotFound    = "today is not within the date entries"
	ErrUnknownColumn    = "unknown picker column"
	ErrBoundParse       = "unable to parse bound date"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrLocNotInit       = "localizer not initialized"
	ErrSelection        = "selection could not be resolved"
	ErrExport           = "selection export failed"
	ErrPrefSave         = "invalid settings, not saved"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "No selection yet, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary  = "Selected time: %s"
	FallbackStatus   = "%s"
	FallbackStatusNo = "-"

	TitleStartupError = "Startup Error"

	MsgPortBusy       = "Port %s is busy or unavailable."
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Selection feed updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgRangeBuilt     = "Date entries built"
	MsgSkippedDay     = "Skipping malformed day"
	MsgRangeEmpty     = "Bounds are inverted, date column is empty"
	MsgTodayMissing   = "Today is outside the date entries, selecting first rows"
	MsgSelectionOK    = "Selection accepted"
	MsgSelectionClamp = "Selection clamped to now"
	MsgFallbackUsed   = "Today not found, clamped to nearest bound"
	MsgWorkerStart    = "Refresh worker started"
	MsgWorkerStop     = "Worker stopping due to context cancellation"
	MsgSettingsSaved  = "Saving preferences"
	MsgBoundsOverride = "Bounds overridden from command line"
	MsgYearRollover   = "Year changed, rebuilding default bounds"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgReminderOff    = "Reminders disabled via settings (value is empty)"
	MsgPortChanged    = "Server port changed, takes effect after restart"
)

// -----------------------------------------------------------------------------
// Reminder Units & Directions
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyLower     = "lower"
	LogKeyUpper     = "upper"
	LogKeyMode      = "mode"
	LogKeyColumn    = "column"
	LogKeyIndex     = "index"
	LogKeyOutcome   = "outcome"
	LogKeyTimestamp = "timestamp"
	LogKeyIndices   = "indices"
	LogKeyDuration  = "duration_us"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompPicker = "picker"
	CompExport = "export"
	CompServer = "server"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
