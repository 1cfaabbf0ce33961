// Package rates holds the static lookup tables driving hotel allowances:
// the city classification map and the grade-by-class daily allowance map.
// Both are immutable once constructed and injected into the calculators,
// so extending either table is a configuration change only.
package rates

// City classification tiers.
const (
	ClassA = "A"
	ClassB = "B"
)

// BaselineAllowance is the per-day amount applied when a grade or a
// grade/class pair has no entry in the allowance table.
const BaselineAllowance = 1000

// Config carries externally supplied table contents. Zero-value fields fall
// back to the built-in defaults.
type Config struct {
	CityClass         map[string]string
	Allowance         map[string]map[string]float64
	DefaultClass      string
	BaselineAllowance float64
}

// Table is the immutable rate lookup structure.
type Table struct {
	cityClass    map[string]string
	allowance    map[string]map[string]float64
	defaultClass string
	baseline     float64
}

// New builds a Table from cfg, copying the maps so later mutation of the
// config cannot affect lookups.
func New(cfg Config) *Table {
	t := &Table{
		cityClass:    make(map[string]string, len(cfg.CityClass)),
		allowance:    make(map[string]map[string]float64, len(cfg.Allowance)),
		defaultClass: cfg.DefaultClass,
		baseline:     cfg.BaselineAllowance,
	}
	if t.defaultClass == "" {
		t.defaultClass = ClassB
	}
	if t.baseline == 0 {
		t.baseline = BaselineAllowance
	}
	for city, class := range cfg.CityClass {
		t.cityClass[city] = class
	}
	for grade, byClass := range cfg.Allowance {
		rates := make(map[string]float64, len(byClass))
		for class, amount := range byClass {
			rates[class] = amount
		}
		t.allowance[grade] = rates
	}
	return t
}

// Default returns a Table loaded with the standard city and allowance rules.
func Default() *Table {
	return New(Config{CityClass: DefaultCityClasses(), Allowance: DefaultAllowances()})
}

// CityClass classifies a city name, defaulting for unrecognized cities.
func (t *Table) CityClass(name string) string {
	if class, ok := t.cityClass[name]; ok {
		return class
	}
	return t.defaultClass
}

// AllowanceRate returns the per-day allowance for a grade and city class.
// An unknown grade or a missing grade/class pair yields the baseline rate;
// lookup misses are never errors.
func (t *Table) AllowanceRate(grade, class string) float64 {
	byClass, ok := t.allowance[grade]
	if !ok {
		return t.baseline
	}
	if rate, ok := byClass[class]; ok {
		return rate
	}
	return t.baseline
}

// DefaultClass returns the class applied to unrecognized cities.
func (t *Table) DefaultClass() string {
	return t.defaultClass
}

// DefaultCityClasses returns the standard city classification map.
func DefaultCityClasses() map[string]string {
	return map[string]string{
		// Class A cities
		"Mumbai": ClassA, "Delhi": ClassA, "Bangalore": ClassA, "Chennai": ClassA,
		"Hyderabad": ClassA, "Pune": ClassA, "Kolkata": ClassA, "Ahmedabad": ClassA,
		"Surat": ClassA, "Jaipur": ClassA,

		// Class B cities
		"Coimbatore": ClassB, "Madurai": ClassB, "Trichy": ClassB, "Salem": ClassB,
		"Erode": ClassB, "Tirupur": ClassB, "Vellore": ClassB, "Thanjavur": ClassB,
		"Dindigul": ClassB, "Karur": ClassB, "Nagpur": ClassB, "Indore": ClassB,
		"Bhopal": ClassB, "Visakhapatnam": ClassB, "Vijayawada": ClassB,
		"Guntur": ClassB, "Nellore": ClassB, "Kurnool": ClassB,
		"Rajahmundry": ClassB, "Tirupati": ClassB,
	}
}

// DefaultAllowances returns the standard grade-by-class daily allowances.
func DefaultAllowances() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"SME": {ClassA: 1200, ClassB: 1000},
		"SE":  {ClassA: 1500, ClassB: 1200},
		"MGR": {ClassA: 2000, ClassB: 1500},
		"DGM": {ClassA: 2500, ClassB: 2000},
		"GM":  {ClassA: 3000, ClassB: 2500},
	}
}
