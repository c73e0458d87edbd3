package worldbank

import "sort"

// Observation window requested from the API.
const (
	StartYear = 2000
	EndYear   = 2024
)

// Indicators maps the tracked World Bank indicator codes to display names.
var Indicators = map[string]string{
	"NY.GDP.MKTP.KD.ZG":    "GDP Growth (%)",
	"FP.CPI.TOTL.ZG":       "Inflation (%)",
	"BX.KLT.DINV.WD.GD.ZS": "FDI (% of GDP)",
	"FS.AST.PRVT.GD.ZS":    "Private Credit (% of GDP)",
	"SL.UEM.TOTL.ZS":       "Unemployment (%)",
	"GC.DOD.TOTL.GD.ZS":    "Central Gov Debt (% of GDP)",
	"EG.ELC.ACCS.ZS":       "Access to Electricity (%)",
	"NE.EXP.GNFS.ZS":       "Exports (% of GDP)",
}

// CountryGroups maps each tracked country group to its ISO-3 member codes.
var CountryGroups = map[string][]string{
	"G7":          {"USA", "GBR", "DEU", "FRA", "ITA", "CAN", "JPN"},
	"AFRICA_TOP5": {"NGA", "ZAF", "EGY", "DZA", "MAR"},
}

// Indicator codes consumed by the report layer.
const (
	GDPGrowthCode   = "NY.GDP.MKTP.KD.ZG"
	InflationCode   = "FP.CPI.TOTL.ZG"
	DebtCode        = "GC.DOD.TOTL.GD.ZS"
	ElectricityCode = "EG.ELC.ACCS.ZS"
	ExportsCode     = "NE.EXP.GNFS.ZS"
)

// GroupNames returns the country group names in sorted order, so fetch task
// lists are deterministic.
func GroupNames() []string {
	names := make([]string, 0, len(CountryGroups))
	for name := range CountryGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IndicatorCodes returns the tracked indicator codes in sorted order.
func IndicatorCodes() []string {
	codes := make([]string, 0, len(Indicators))
	for code := range Indicators {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
