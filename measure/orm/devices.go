package orm

import "strings"

// Samples is the read side of a sample table.
type Samples interface {
	Len() int
	Column(name string) ([]float64, bool)
}

// zeroReporter is implemented by sample tables that can answer the
// dead-sensor check without exposing the column.
type zeroReporter interface {
	AllZero(name string) bool
}

// Group is a sensor orientation plane.
type Group int

const (
	// Horizontal is the default plane; sensors tagged "BPH" or untagged
	// land here.
	Horizontal Group = iota
	// Vertical holds sensors tagged "BPV".
	Vertical
)

func (g Group) String() string {
	switch g {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// DeviceSet holds the column names selected for one run. The four sequences
// are disjoint and keep the order of the raw name lists.
type DeviceSet struct {
	Actuators  []string
	Horizontal []string
	Vertical   []string
	// Excluded holds sensors whose samples are all exactly zero.
	Excluded []string
}

// Sensors returns the sensors of plane g.
func (d DeviceSet) Sensors(g Group) []string {
	if g == Vertical {
		return d.Vertical
	}
	return d.Horizontal
}

// AllSensors returns the horizontal sensors followed by the vertical ones.
func (d DeviceSet) AllSensors() []string {
	out := make([]string, 0, len(d.Horizontal)+len(d.Vertical))
	out = append(out, d.Horizontal...)
	return append(out, d.Vertical...)
}

// devices returns actuators followed by all live sensors.
func (d DeviceSet) devices() []string {
	return append(append([]string(nil), d.Actuators...), d.AllSensors()...)
}

// ColumnName returns the table column that holds raw device name.
func ColumnName(raw string, opts ...Option) string {
	return raw + applyOptions(opts).columnSuffix
}

// ResolveDevices maps raw actuator and sensor names onto columns of src.
//
// A raw name D selects column "D(R)" (see [WithColumnSuffix]); names without
// a column are skipped silently. Sensors reading exactly zero on every sample
// are excluded. The remaining sensors are classified by a case-insensitive
// substring test on the raw name: the horizontal tag ("BPH") wins, then the
// vertical tag ("BPV"), and anything else defaults to horizontal.
//
// A column is used at most once: repeated names and sensors that are also
// actuators keep only their first role.
func ResolveDevices(src Samples, actuators, sensors []string, opts ...Option) DeviceSet {
	cfg := applyOptions(opts)
	return resolveDevices(src, actuators, sensors, cfg)
}

func resolveDevices(src Samples, actuators, sensors []string, cfg config) DeviceSet {
	var set DeviceSet
	used := make(map[string]struct{}, len(actuators)+len(sensors))

	claim := func(raw string) (string, []float64, bool) {
		col := raw + cfg.columnSuffix
		if _, dup := used[col]; dup {
			return "", nil, false
		}
		samples, ok := src.Column(col)
		if !ok {
			return "", nil, false
		}
		used[col] = struct{}{}
		return col, samples, true
	}

	for _, raw := range actuators {
		if col, _, ok := claim(raw); ok {
			set.Actuators = append(set.Actuators, col)
		}
	}

	hTag := strings.ToUpper(cfg.horizontalTag)
	vTag := strings.ToUpper(cfg.verticalTag)
	for _, raw := range sensors {
		col, samples, ok := claim(raw)
		if !ok {
			continue
		}
		if isDead(src, col, samples) {
			set.Excluded = append(set.Excluded, col)
			continue
		}
		upper := strings.ToUpper(raw)
		switch {
		case strings.Contains(upper, hTag):
			set.Horizontal = append(set.Horizontal, col)
		case strings.Contains(upper, vTag):
			set.Vertical = append(set.Vertical, col)
		default:
			set.Horizontal = append(set.Horizontal, col)
		}
	}

	return set
}

func isDead(src Samples, col string, samples []float64) bool {
	if zr, ok := src.(zeroReporter); ok {
		return zr.AllZero(col)
	}
	return allZero(samples)
}

func allZero(x []float64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}
