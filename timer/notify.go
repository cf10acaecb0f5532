package timer

import (
	"errors"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

// NoOp is an Alerter and Notifier that does nothing. It stands in for
// capabilities that are disabled or unavailable.
type NoOp struct{}

func (NoOp) Alert() error {
	return nil
}

func (NoOp) Notify(string, string) error {
	return nil
}

// Desktop shows notifications through the operating system.
type Desktop struct {
	// Icon is an optional path to an image shown with the notification
	Icon string
}

func (d Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, d.Icon)
}

// Command runs a user supplied command on completion. The title and message
// are appended as the final two arguments.
type Command struct {
	name string
	args []string
}

// NewCommand parses cmd with shell quoting rules. An empty cmd yields a
// Command that does nothing.
func NewCommand(cmd string) (*Command, error) {
	words, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errNotifyCmd.Wrap(err)
	}

	c := &Command{}

	if len(words) > 0 {
		c.name = words[0]
		c.args = words[1:]
	}

	return c, nil
}

func (c *Command) Notify(title, message string) error {
	if c.name == "" {
		return nil
	}

	args := append(append([]string(nil), c.args...), title, message)

	return exec.Command(c.name, args...).Run()
}

// Notifiers fans a notification out to every notifier and joins the errors.
type Notifiers []Notifier

func (ns Notifiers) Notify(title, message string) error {
	var errs []error

	for _, n := range ns {
		if err := n.Notify(title, message); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
