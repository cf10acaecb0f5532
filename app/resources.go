package app

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/compass/catalog"
	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/config"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/ui"
	"github.com/ayoisaiah/compass/report"
)

var (
	errInvalidID = &apperr.Error{
		Message: "%q is not a resource id",
		Kind:    apperr.Validation,
	}

	errUnknownResource = &apperr.Error{
		Message: "no resource with id %d",
		Kind:    apperr.Validation,
	}

	errNotStarted = &apperr.Error{
		Message: "start %q before marking it completed",
		Kind:    apperr.Validation,
	}

	errInvalidSort = &apperr.Error{
		Message: "unknown sort order %q: use id or title",
		Kind:    apperr.Validation,
	}
)

var difficulties = []string{"Beginner", "Intermediate", "Advanced", "Unknown"}

func progressText(p models.LearningProgress, ok bool) string {
	switch {
	case !ok:
		return "not started"
	case p.Completed:
		return ui.Green("completed")
	default:
		return ui.Cyan(fmt.Sprintf("accessed %d×", p.TimesAccessed))
	}
}

func printResourcesTable(
	w io.Writer,
	resources []models.Resource,
	progress models.ProgressMap,
) error {
	tableBody := make([][]string, len(resources))

	for i := range resources {
		r := resources[i]
		p, ok := progress[r.ID]

		tableBody[i] = []string{
			strconv.Itoa(r.ID),
			r.Title,
			r.Category,
			r.Difficulty,
			r.EstimatedTime,
			progressText(p, ok),
		}
	}

	tableBody = append([][]string{
		{"ID", "TITLE", "CATEGORY", "DIFFICULTY", "TIME", "PROGRESS"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}

func resourcesListAction(ctx *cli.Context, e *env) error {
	resources := e.shell.Catalog.ListAll()
	if ctx.Bool(customFlag.Name) {
		resources = e.shell.Catalog.Custom()
	}

	switch ctx.String(sortFlag.Name) {
	case "id":
	case "title":
		slices.SortStableFunc(resources, func(a, b models.Resource) int {
			switch {
			case natural.Less(a.Title, b.Title):
				return -1
			case natural.Less(b.Title, a.Title):
				return 1
			}

			return 0
		})
	default:
		return errInvalidSort.Fmt(ctx.String(sortFlag.Name))
	}

	if ctx.Bool(jsonFlag.Name) {
		return printJSON(config.Stdout, resources)
	}

	if len(resources) == 0 {
		pterm.Info.Println("No resources found")
		return nil
	}

	return printResourcesTable(config.Stdout, resources, e.shell.Catalog.Progress())
}

func resourceArg(ctx *cli.Context, e *env) (models.Resource, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return models.Resource{}, errMissingArg.Fmt("id")
	}

	id, err := strconv.Atoi(arg)
	if err != nil {
		return models.Resource{}, errInvalidID.Fmt(arg)
	}

	r, ok := e.shell.Catalog.Get(id)
	if !ok {
		return models.Resource{}, errUnknownResource.Fmt(id)
	}

	return r, nil
}

func resourcesStartAction(ctx *cli.Context, e *env) error {
	r, err := resourceArg(ctx, e)
	if err != nil {
		return err
	}

	e.shell.Catalog.RecordInteraction(r.ID)

	report.Success("Started learning %s 📚", r.Title)
	pterm.Println(ui.Highlight(r.URL))

	history := e.shell.Assistant.History()
	pterm.Println(history[len(history)-1].Content)

	return nil
}

func resourcesCompleteAction(ctx *cli.Context, e *env) error {
	r, err := resourceArg(ctx, e)
	if err != nil {
		return err
	}

	if !e.shell.Catalog.MarkCompleted(r.ID) {
		return errNotStarted.Fmt(r.Title)
	}

	report.Success("Completed %s! 🎉", r.Title)

	return nil
}

// promptResource asks for the fields of a new resource.
func promptResource() (models.Resource, error) {
	var (
		r      models.Resource
		topics string
	)

	r.Difficulty = "Unknown"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&r.Title),
			huh.NewInput().
				Title("URL").
				Value(&r.URL),
			huh.NewInput().
				Title("Description").
				Value(&r.Description),
			huh.NewInput().
				Title("Category").
				Placeholder("Custom").
				Value(&r.Category),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(huh.NewOptions(difficulties...)...).
				Value(&r.Difficulty),
			huh.NewInput().
				Title("Estimated time").
				Placeholder("Variable").
				Value(&r.EstimatedTime),
			huh.NewInput().
				Title("Topics").
				Description("Separate topics with commas").
				Value(&topics),
		),
	)

	if err := form.Run(); err != nil {
		return r, err
	}

	r.Topics = splitTopics(topics)

	return r, nil
}

func splitTopics(s string) []string {
	var topics []string

	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}

	return topics
}

func resourcesAddAction(ctx *cli.Context, e *env) error {
	var (
		draft models.Resource
		err   error
	)

	if ctx.IsSet(titleFlag.Name) {
		draft = models.Resource{
			Title:         ctx.String(titleFlag.Name),
			URL:           ctx.String(urlFlag.Name),
			Description:   ctx.String(descriptionFlag.Name),
			Category:      ctx.String(categoryFlag.Name),
			Difficulty:    ctx.String(difficultyFlag.Name),
			EstimatedTime: ctx.String(estimatedTimeFlag.Name),
			Topics:        ctx.StringSlice(topicsFlag.Name),
		}
	} else {
		draft, err = promptResource()
		if err != nil {
			return err
		}
	}

	r, err := e.shell.Catalog.AddCustom(draft)
	if err != nil {
		return err
	}

	report.Success("Added new resource: %s ➕ (id %d)", r.Title, r.ID)

	return nil
}

func recommendationLabel(k catalog.Kind) string {
	if k == catalog.KindNew {
		return ui.Green("new")
	}

	return ui.Yellow("continue")
}

func resourcesRecommendAction(_ *cli.Context, e *env) error {
	recs := e.shell.Catalog.Recommend()
	if len(recs) == 0 {
		pterm.Info.Println("Nothing to recommend right now. Add a resource with 'compass resources add'")
		return nil
	}

	tableBody := [][]string{{"ID", "TITLE", "", "WHY"}}

	for _, rec := range recs {
		tableBody = append(tableBody, []string{
			strconv.Itoa(rec.Resource.ID),
			rec.Resource.Title,
			recommendationLabel(rec.Kind),
			rec.Reason,
		})
	}

	return ui.PrintTable(tableBody, config.Stdout)
}
