package pipeline

import "github.com/backmassage/spritenorm/internal/rename"

// RunStats counts the outcome of a rename run.
type RunStats struct {
	Renamed         int  `yaml:"renamed"`
	Unchanged       int  `yaml:"unchanged"`
	Skipped         int  `yaml:"skipped"`
	Unmapped        int  `yaml:"unmapped"`
	Failed          int  `yaml:"failed"`
	ZonesNotRenamed int  `yaml:"zones_not_renamed"`
	Cancelled       bool `yaml:"-"`
}

func statsFrom(res *rename.Result) RunStats {
	return RunStats{
		Renamed:         len(res.Moves),
		Unchanged:       res.Unchanged,
		Skipped:         len(res.Skipped),
		Unmapped:        len(res.Unmapped),
		Failed:          len(res.Failed),
		ZonesNotRenamed: len(res.ZoneErrors),
	}
}

// Total returns the number of sprite files the run looked at.
func (s RunStats) Total() int {
	return s.Renamed + s.Unchanged + s.Skipped + s.Unmapped + s.Failed
}

// OK reports whether every file was renamed or already in place.
func (s RunStats) OK() bool {
	return s.Skipped == 0 && s.Unmapped == 0 && s.Failed == 0 && s.ZonesNotRenamed == 0
}
