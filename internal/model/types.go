// Package model defines shared data structures.
package model

// Config defines analysis settings.
type Config struct {
	Buckets       int
	MaxWordLength int
	WordPolicy    string
}

// ReportConfig defines which report sections are produced and how.
type ReportConfig struct {
	Overall     bool
	CharFreq    bool
	WordFreq    bool
	Format      string
	Order       string
	Top         int
	ExcludePath string
	Color       string
	Output      string
	SQLitePath  string
}

// Sections reports whether any section is enabled.
func (c ReportConfig) Sections() bool {
	return c.Overall || c.CharFreq || c.WordFreq
}

// ShowAll enables every report section.
func (c *ReportConfig) ShowAll() {
	c.Overall = true
	c.CharFreq = true
	c.WordFreq = true
}
