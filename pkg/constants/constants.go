// Package constants provides shared constants for the finlit application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxPayoffMonths caps the debt payoff simulation at 50 years
	MaxPayoffMonths = 600

	// DefaultDebtInterestRate is the annual rate applied to debts without one
	DefaultDebtInterestRate = 0.12

	// DefaultAnnualReturn is the annual return applied to investments without one
	DefaultAnnualReturn = 0.08
)

// Country rule keys
const (
	// CountryGlobal is the fallback entry of every rule table
	CountryGlobal = "global"

	// CountryPakistan is the built-in Pakistan entry
	CountryPakistan = "pakistan"

	// CountryItaly is the built-in Italy entry
	CountryItaly = "italy"
)

// Lesson topics used to look up country tips
const (
	TopicBudgeting = "budgeting"
	TopicEmergency = "emergency"
	TopicDebt      = "debt"
	TopicInvesting = "investing"

	// DefaultTip is returned when a country has no tip for a topic
	DefaultTip = "Start with basic principles"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON prints the export document to stdout
	OutputFormatJSON = "json"
)

// Export format constants
const (
	// ExportFormatJSON writes the export document as indented JSON
	ExportFormatJSON = "json"

	// ExportFormatYAML writes the export document as YAML
	ExportFormatYAML = "yaml"

	// DefaultExportFile is the export path used when none is configured
	DefaultExportFile = "finlit_demo.json"

	// ProjectName is recorded in the export document
	ProjectName = "FinLit Finance Tool"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxInvestmentYears bounds the compound interest projection horizon
	MaxInvestmentYears = 100
)
