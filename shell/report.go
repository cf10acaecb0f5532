package shell

import (
	"runtime"

	"github.com/ayoisaiah/compass/internal/config"
)

// Report is a summary of what has been recorded.
type Report struct {
	TotalLogEntries        int `json:"totalLogEntries"`
	ResourcesAccessed      int `json:"resourcesAccessed"`
	TimerSessionsCompleted int `json:"timerSessionsCompleted"`
	AssistantTurns         int `json:"assistantTurns"`
}

// Report summarises the current state. Timer completions are counted for
// this session only.
func (s *Shell) Report() Report {
	return Report{
		TotalLogEntries:        s.Log.Len(),
		ResourcesAccessed:      len(s.Catalog.Progress()),
		TimerSessionsCompleted: s.Timer.Completions(),
		AssistantTurns:         s.Assistant.Len(),
	}
}

// StorageInfo describes the persistence layer.
type StorageInfo struct {
	Error     string `json:"error,omitempty"`
	Used      int    `json:"used"`
	Available bool   `json:"available"`
}

// RuntimeInfo describes the running program.
type RuntimeInfo struct {
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Debug is a diagnostic snapshot.
type Debug struct {
	Modules map[string]bool `json:"modules"`
	Version string          `json:"version"`
	Runtime RuntimeInfo     `json:"runtime"`
	Storage StorageInfo     `json:"storage"`
}

// Debug reports the version, storage state and which components are loaded.
func (s *Shell) Debug() Debug {
	used, _ := s.db.Size()

	d := Debug{
		Version: config.Version,
		Modules: map[string]bool{
			"timer":     s.Timer != nil,
			"activity":  s.Log != nil,
			"catalog":   s.Catalog != nil,
			"assistant": s.Assistant != nil,
		},
		Storage: StorageInfo{
			Available: s.db.Available(),
			Used:      used,
		},
		Runtime: RuntimeInfo{
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		},
	}

	if err := s.db.Err(); err != nil {
		d.Storage.Error = err.Error()
	}

	return d
}
