package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/compass/tui"
)

// section renders a heading followed by an indented body.
func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
}

func helpText() string {
	var b strings.Builder

	b.WriteString(section("DESCRIPTION", "\t\t{{.Usage}}"))
	b.WriteString(section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	))
	b.WriteString("{{if .Version}}" + section("VERSION", "\t\t{{.Version}}") + "{{end}}")
	b.WriteString(section("COMMANDS", commandsHelp()))
	b.WriteString(section("OPTIONS", fmt.Sprintf(
		"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n{{end}}",
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)))
	b.WriteString(section("KEY BINDINGS", keysHelp()))
	b.WriteString(section("ENVIRONMENTAL VARIABLES", envHelp()))

	return b.String()
}

// commandsHelp lists each command group with its subcommands beneath it.
func commandsHelp() string {
	return fmt.Sprintf(
		"{{range .VisibleCommands}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}"+
			"{{range .VisibleCommands}}      %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
		pterm.Green("{{join .Names `, `}}"),
		pterm.Cyan("{{.Name}}"),
	)
}

// keysHelp documents the bindings of the interactive timer, which starts
// when compass runs without a command.
func keysHelp() string {
	var b strings.Builder

	for _, k := range tui.Bindings() {
		h := k.Help()
		fmt.Fprintf(&b, "\t\t%s\t%s\n", pterm.Green(h.Key), h.Desc)
	}

	b.WriteString("\t\tWhile typing in an input only enter, esc and ctrl+c act as shortcuts.")

	return b.String()
}

func envHelp() string {
	return strings.Join([]string{
		"\t\tCOMPASS_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.",
		"\t\tCOMPASS_ASSISTANT_API_KEY: API key for the remote assistant. Overrides the config file but not a key saved with 'compass assistant key'.",
		"\t\tCOMPASS_ENV: use separate config, data and log files named after this value (e.g. 'dev').",
	}, "\n\n")
}
