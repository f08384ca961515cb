package config

// Application constants - all pipeline tunables are fixed at compile time.
const (
	// Application Info
	AppName    = "Gym Results Extractor"
	AppVersion = "1.0.0"

	// Default input PDFs (one per report layout, in the downloads dir)
	DefaultEventsPDF     = "events.pdf"
	DefaultIndividualPDF = "individual_allaround.pdf"
	DefaultTeamPDF       = "team_allaround.pdf"

	// Default output CSVs (in the reports dir)
	DefaultEventsCSV     = "events.csv"
	DefaultIndividualCSV = "individual_allaround.csv"
	DefaultTeamCSV       = "team_allaround.csv"

	// File Paths (relative to executable)
	DefaultDataDir      = "data"
	DefaultLogsDir      = "logs"
	DefaultDownloadsDir = "data/downloads"
	DefaultReportsDir   = "data/reports"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Header-row discovery for event-finals tables: how many leading rows
	// are searched for the "Rank ... Name" header.
	HeaderSearchRows = 25
)

// CellPlaceholders are raw cell values treated as empty during line
// normalization. Upstream extractors emit these for blank table cells.
var CellPlaceholders = []string{"", "None", "nan"}

// EventPatterns maps literal page-text markers to event labels, in match
// priority order. These encode the actual report wording and must stay in
// sync with the classifier's regex fallbacks.
var EventPatterns = []struct {
	Marker string
	Label  string
}{
	{"Women's Vault", "Vault"},
	{"Women's Uneven Bars", "Uneven Bars"},
	{"Women's Balance Beam", "Balance Beam"},
	{"Women's Floor Exercise", "Floor"},
}

// UnknownEventLabel is attached to pages whose text matches no event marker.
const UnknownEventLabel = "Unknown"
