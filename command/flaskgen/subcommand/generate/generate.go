package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lithammer/dedent"

	"go.scnd.dev/open/flaskgen/command/flaskgen/app"
	"go.scnd.dev/open/flaskgen/command/flaskgen/common/config"
	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/blueprint"
	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/emit"
)

type Command struct {
	Name  string `arg:"" optional:"" help:"Project name."`
	Force bool   `help:"Remove an existing project tree before generating." short:"f"`
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

	// * force clean structure
	if command.Force {
		root := filepath.Join(*conf.Output, bp.Name)
		if err := os.RemoveAll(root); err != nil {
			return fmt.Errorf("unable to remove %s: %w", root, err)
		}
	}

	// * emit scaffold
	result, err := emit.Emit(*conf.Output, bp, &emit.Options{
		Verbose: app.Verbose,
	})
	if err != nil {
		return err
	}

	// * print completion summary
	fmt.Printf("\nProject '%s' created: %d directories, %d files\n", bp.Name, result.Directories, result.Files)
	fmt.Print(NextSteps(bp.Name))

	return nil
}

// NextSteps is the informational epilogue printed after a successful run.
func NextSteps(name string) string {
	return fmt.Sprintf(dedent.Dedent(`
		Next steps:
		  cd %s
		  python -m venv venv
		  source venv/bin/activate
		  pip install -r requirements.txt
		  flask run
	`), name)
}
