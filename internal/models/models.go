// Package models defines the persisted state shared by the compass
// components.
package models

import (
	"encoding/json"
	"time"
)

// LogEntry is one timestamped activity record. Entries are immutable once
// created.
type LogEntry struct {
	CreatedAt time.Time `json:"timestamp"`
	ID        EntryID   `json:"id"`
	TimeLabel string    `json:"time"`
	Message   string    `json:"message"`
}

// EntryID identifies a log entry. Exports from the browser edition used
// numeric ids, so numbers are accepted and kept in their decimal form.
type EntryID string

func (id *EntryID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*id = EntryID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*id = EntryID(n.String())

	return nil
}

// Resource describes a learning resource in the catalog.
type Resource struct {
	Title         string   `json:"title"          yaml:"title"`
	Description   string   `json:"description"    yaml:"description"`
	URL           string   `json:"url"            yaml:"url"`
	Category      string   `json:"category"       yaml:"category"`
	Difficulty    string   `json:"difficulty"     yaml:"difficulty"`
	EstimatedTime string   `json:"estimatedTime"  yaml:"estimated_time"`
	Topics        []string `json:"topics"         yaml:"topics"`
	ID            int      `json:"id"             yaml:"id"`
}

// LearningProgress tracks engagement with a single resource.
type LearningProgress struct {
	StartedAt     time.Time  `json:"startedAt"`
	LastAccessed  *time.Time `json:"lastAccessed,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	TimesAccessed int        `json:"timesAccessed"`
	Completed     bool       `json:"completed"`
}

// ProgressMap maps a resource id to its learning progress.
type ProgressMap map[int]LearningProgress

// Clone returns a copy of the map.
func (p ProgressMap) Clone() ProgressMap {
	c := make(ProgressMap, len(p))
	for k, v := range p {
		c[k] = v
	}

	return c
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in the assistant conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Settings holds the user-facing application settings.
type Settings struct {
	Theme               string `json:"theme"`
	Version             string `json:"version"`
	DefaultTimerMinutes int    `json:"defaultTimerMinutes"`
	SoundEnabled        bool   `json:"soundEnabled"`
	AutoBreakReminder   bool   `json:"autoBreakReminder"`
}

// Bundle is the export/import document.
type Bundle struct {
	LearningProgress ProgressMap `json:"learningProgress"`
	ExportDate       string      `json:"exportDate"`
	Progress         []LogEntry  `json:"progress"`
	Settings         Settings    `json:"settings"`
}
