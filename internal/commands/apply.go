package commands

import (
	"fmt"

	"github.com/KrOnAsK/swatch/internal/sinks"
)

type ApplyCmd struct {
	Name string `arg:"" name:"name" help:"Palette to apply." required:""`
}

func (a *ApplyCmd) Run(ctx *Context) error {
	statuses, err := sinks.ApplyAll(a.Name, sinks.Defaults()...)
	if err != nil {
		return err
	}

	for _, status := range statuses {
		switch {
		case status.Skipped:
			fmt.Printf("%s %s: %v\n", WarningStyle.Render("skipped"), status.Sink, status.Err)
		case status.Err != nil:
			fmt.Printf("%s %s: %v\n", ErrorStyle.Render("failed"), status.Sink, status.Err)
		default:
			fmt.Printf("%s %s\n", OkStyle.Render("applied"), status.Sink)
		}
	}
	return nil
}
