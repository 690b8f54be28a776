package preview

import (
	"fmt"

	"go.scnd.dev/open/flaskgen/command/flaskgen/app"
	"go.scnd.dev/open/flaskgen/command/flaskgen/common/config"
	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/blueprint"
	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/printer"
)

type Command struct {
	Name string `arg:"" optional:"" help:"Project name."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	// * load optional configuration
	conf, err := config.Load(".")
	if err != nil {
		return err
	}

	// * resolve project name, argument beats configuration
	name := command.Name
	if name == "" {
		name = *conf.Name
	}

	// * build blueprint
	bp, err := blueprint.New(name)
	if err != nil {
		return err
	}

	// * render tree
	output, err := printer.PrintTree(bp)
	if err != nil {
		return err
	}

	fmt.Print(output)

	return nil
}
