package main

import (
	"github.com/alecthomas/kong"
	"go.scnd.dev/open/flaskgen/command/flaskgen/app"
	"go.scnd.dev/open/flaskgen/command/flaskgen/subcommand/generate"
	"go.scnd.dev/open/flaskgen/command/flaskgen/subcommand/preview"
)

type Command struct {
	Verbose  bool              `help:"Enable verbose output." short:"v"`
	Generate *generate.Command `cmd:"generate" default:"withargs" help:"Generate a new Flask project scaffold."`
	Preview  *preview.Command  `cmd:"preview" help:"Print the scaffold tree without writing files."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("flaskgen"),
		kong.Description("Flask Project Structure Generator"),
	)
	err := ctx.Run(&app.App{
		Verbose: command.Verbose,
	})
	ctx.FatalIfErrorf(err)
}
