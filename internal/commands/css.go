package commands

import (
	"fmt"

	"github.com/KrOnAsK/swatch/internal/palette"
)

type CssCmd struct {
	Name   string `arg:"" name:"name" help:"Palette to render." required:""`
	Prefix string `name:"prefix" help:"Prefix for CSS variable names." default:"color"`
}

func (c *CssCmd) Run(ctx *Context) error {
	css, err := palette.CSSVariables(c.Name, c.Prefix)
	if err != nil {
		return err
	}
	fmt.Println(css)
	return nil
}
