// Package catalog holds the learning resource catalog and tracks progress
// through each resource.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/compass/activity"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/timeutil"
	"github.com/ayoisaiah/compass/store"
)

// ResourceObserver is told when the user starts a resource.
type ResourceObserver interface {
	NotifyResourceStarted(r models.Resource)
}

// Kind is a recommendation class.
type Kind string

const (
	KindNew      Kind = "new"
	KindContinue Kind = "continue"
)

// Recommendation suggests a resource and says why.
type Recommendation struct {
	Kind     Kind
	Reason   string
	Resource models.Resource
}

// Repositories are the persisted parts of the catalog.
type Repositories struct {
	Progress store.Repository[models.ProgressMap]
	Custom   store.Repository[[]models.Resource]
}

// NewRepositories returns the catalog repositories backed by db.
func NewRepositories(db store.DB) Repositories {
	return Repositories{
		Progress: store.NewJSON(db, store.KeyLearning, func() models.ProgressMap {
			return models.ProgressMap{}
		}),
		Custom: store.NewJSON(db, store.KeyCustomResources, func() []models.Resource {
			return nil
		}),
	}
}

// Catalog is the built-in resources followed by the user's own, in the
// order they were added.
type Catalog struct {
	repos    Repositories
	log      activity.Appender
	observer ResourceObserver
	logger   *slog.Logger
	now      timeutil.Clock
	progress models.ProgressMap

	resources  []models.Resource
	maxBuiltin int
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock sets the time source.
func WithClock(c timeutil.Clock) Option {
	return func(cat *Catalog) {
		cat.now = c
	}
}

// WithLogger sets the logger used to report persistence problems.
func WithLogger(l *slog.Logger) Option {
	return func(cat *Catalog) {
		cat.logger = l
	}
}

// Parse decodes a YAML list of resources.
func Parse(b []byte) ([]models.Resource, error) {
	var resources []models.Resource

	if err := yaml.Unmarshal(b, &resources); err != nil {
		return nil, errParseCatalog.Wrap(err)
	}

	if len(resources) == 0 {
		return nil, errEmptyCatalog
	}

	seen := make(map[int]bool, len(resources))

	for i := range resources {
		id := resources[i].ID
		if seen[id] {
			return nil, errDuplicateID.Fmt(id)
		}

		seen[id] = true
	}

	return resources, nil
}

// New builds a catalog from builtin and the saved custom resources and
// progress. Saved custom resources whose id collides with the built-in range
// are dropped.
func New(
	builtin []models.Resource,
	repos Repositories,
	log activity.Appender,
	observer ResourceObserver,
	opts ...Option,
) (*Catalog, error) {
	if len(builtin) == 0 {
		return nil, errEmptyCatalog
	}

	c := &Catalog{
		repos:    repos,
		log:      log,
		observer: observer,
		logger:   slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.resources = append(c.resources, builtin...)
	c.maxBuiltin = maxID(builtin)

	custom, err := repos.Custom.Load()
	if err != nil {
		c.logger.Warn("custom resources reset", slog.Any("error", err))
	}

	for i := range custom {
		if custom[i].ID <= maxID(c.resources) {
			c.logger.Warn(
				"skipping saved resource with conflicting id",
				slog.Int("id", custom[i].ID),
				slog.String("title", custom[i].Title),
			)

			continue
		}

		c.resources = append(c.resources, custom[i])
	}

	c.progress, err = repos.Progress.Load()
	if err != nil {
		c.logger.Warn("learning progress reset", slog.Any("error", err))
	}

	if c.progress == nil {
		c.progress = models.ProgressMap{}
	}

	return c, nil
}

func maxID(resources []models.Resource) int {
	m := resources[0].ID

	for i := range resources {
		m = max(m, resources[i].ID)
	}

	return m
}

// ListAll returns the catalog in insertion order.
func (c *Catalog) ListAll() []models.Resource {
	out := make([]models.Resource, len(c.resources))
	copy(out, c.resources)

	return out
}

// Custom returns the resources added by the user.
func (c *Catalog) Custom() []models.Resource {
	var out []models.Resource

	for i := range c.resources {
		if c.resources[i].ID > c.maxBuiltin {
			out = append(out, c.resources[i])
		}
	}

	return out
}

// Get returns the resource with the given id.
func (c *Catalog) Get(id int) (models.Resource, bool) {
	for i := range c.resources {
		if c.resources[i].ID == id {
			return c.resources[i], true
		}
	}

	return models.Resource{}, false
}

// Progress returns a copy of the learning progress.
func (c *Catalog) Progress() models.ProgressMap {
	return c.progress.Clone()
}

// ReplaceProgress swaps all learning progress for p.
func (c *Catalog) ReplaceProgress(p models.ProgressMap) {
	c.progress = p.Clone()

	c.saveProgress()
}

// RecordInteraction marks a resource as started, or counts another visit if
// it already was. Unknown ids are ignored. It reports whether the id was
// known.
func (c *Catalog) RecordInteraction(id int) bool {
	r, ok := c.Get(id)
	if !ok {
		return false
	}

	now := c.now()

	p, started := c.progress[id]
	if !started {
		p = models.LearningProgress{
			StartedAt:     now,
			TimesAccessed: 1,
		}
	} else {
		p.TimesAccessed++
		p.LastAccessed = &now
	}

	c.progress[id] = p
	c.saveProgress()

	c.log.Append(fmt.Sprintf("Started learning %s 📚", r.Title))

	if c.observer != nil {
		c.observer.NotifyResourceStarted(r)
	}

	return true
}

// MarkCompleted completes a started resource. Resources that were never
// started are left alone. It reports whether anything changed.
func (c *Catalog) MarkCompleted(id int) bool {
	p, started := c.progress[id]
	if !started {
		return false
	}

	now := c.now()

	p.Completed = true
	p.CompletedAt = &now

	c.progress[id] = p
	c.saveProgress()

	if r, ok := c.Get(id); ok {
		c.log.Append(fmt.Sprintf("Completed %s! 🎉", r.Title))
	}

	return true
}

// AddCustom appends a user resource, numbered after the highest id in the
// catalog. Empty optional fields get defaults.
func (c *Catalog) AddCustom(d models.Resource) (models.Resource, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.URL = strings.TrimSpace(d.URL)

	if d.Title == "" {
		return models.Resource{}, errTitleRequired
	}

	if d.URL == "" {
		return models.Resource{}, errURLRequired
	}

	d.ID = maxID(c.resources) + 1

	if d.Category == "" {
		d.Category = "Custom"
	}

	if d.Difficulty == "" {
		d.Difficulty = "Unknown"
	}

	if d.EstimatedTime == "" {
		d.EstimatedTime = "Variable"
	}

	if d.Topics == nil {
		d.Topics = []string{}
	}

	c.resources = append(c.resources, d)

	if err := c.repos.Custom.Save(c.Custom()); err != nil {
		c.logger.Warn("saving custom resources failed", slog.Any("error", err))
	}

	c.log.Append(fmt.Sprintf("Added new resource: %s ➕", d.Title))

	return d, nil
}

// Recommend lists resources not yet started, then started resources that
// are not completed, each in catalog order.
func (c *Catalog) Recommend() []Recommendation {
	var fresh, cont []Recommendation

	for _, r := range c.resources {
		p, started := c.progress[r.ID]

		switch {
		case !started:
			fresh = append(fresh, Recommendation{
				Kind:     KindNew,
				Resource: r,
				Reason:   "You haven't started this yet!",
			})
		case !p.Completed:
			cont = append(cont, Recommendation{
				Kind:     KindContinue,
				Resource: r,
				Reason:   fmt.Sprintf("You've accessed this %d times", p.TimesAccessed),
			})
		}
	}

	return append(fresh, cont...)
}

func (c *Catalog) saveProgress() {
	if err := c.repos.Progress.Save(c.progress); err != nil {
		c.logger.Warn("saving learning progress failed", slog.Any("error", err))
	}
}
