package strategy

// Config is a scan strategy preset: the score method and filter criteria to
// run, loadable from YAML so recurring scans stay reproducible.
type Config struct {
	Meta   Meta   `yaml:"meta" json:"meta"`
	Method string `yaml:"method" json:"method"`
	Filter Filter `yaml:"filter" json:"filter"`
}

// Meta identifies the preset.
type Meta struct {
	PresetID    string `yaml:"preset_id" json:"preset_id"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description" json:"description"`
}

// Filter holds the hard-cut thresholds.
type Filter struct {
	MinVolume       int64   `yaml:"min_volume" json:"min_volume"`
	TopN            int     `yaml:"top_n" json:"top_n"`
	MinPrice        float64 `yaml:"min_price" json:"min_price"`
	MaxPrice        float64 `yaml:"max_price" json:"max_price"` // <= 0 means unbounded
	RequirePositive bool    `yaml:"require_positive" json:"require_positive"`
}
