package blueprint

import (
	"strings"

	"go.scnd.dev/open/flaskgen/command/flaskgen/template"
	"go.scnd.dev/open/flaskgen/util"
)

// DefaultName is the project name used when none is given.
const DefaultName = "myflaskapp"

type File struct {
	Path string
	Body []byte
}

type Phase struct {
	Label string
	Files []File
}

// Blueprint is the full scaffold description for one project: the ordered
// directory list and the ordered, phase-grouped file table. It is built
// once per invocation and holds the payloads with the project name and
// title already substituted.
type Blueprint struct {
	Name        string
	Title       string
	Directories []string
	Phases      []Phase
}

func New(name string) (*Blueprint, error) {
	if name == "" {
		name = DefaultName
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	blueprint := &Blueprint{
		Name:  name,
		Title: util.ToTitleCase(name),
	}
	blueprint.Directories = directories()
	blueprint.Phases = phases(blueprint.Name, blueprint.Title)

	return blueprint, nil
}

// Files returns the file table flattened in emission order.
func (r *Blueprint) Files() []File {
	var files []File
	for _, phase := range r.Phases {
		files = append(files, phase.Files...)
	}
	return files
}

func directories() []string {
	return []string{
		"app/core", "app/middleware", "app/models", "app/routes",
		"app/schemas", "app/services", "app/utils", "app/decorators",
		"app/validators", "app/static/css", "app/static/js", "app/static/images",
		"app/templates/errors", "tests/unit", "tests/integration",
		"migrations", "docs", "logs",
	}
}

func phases(name string, title string) []Phase {
	// * single uniform substitution pass over every payload
	replacer := strings.NewReplacer("{{name}}", name, "{{title}}", title)
	render := func(body []byte) []byte {
		return []byte(replacer.Replace(string(body)))
	}

	return []Phase{
		{
			Label: "Creating core application files",
			Files: []File{
				{Path: "app/__init__.py", Body: render(template.StructureAppInit)},
				{Path: "app/core/__init__.py", Body: nil},
				{Path: "app/core/config.py", Body: render(template.StructureCoreConfig)},
				{Path: "app/core/extensions.py", Body: render(template.StructureCoreExtensions)},
			},
		},
		{
			Label: "Creating models",
			Files: []File{
				{Path: "app/models/__init__.py", Body: []byte("from app.models.user import User")},
				{Path: "app/models/user.py", Body: render(template.StructureModelsUser)},
			},
		},
		{
			Label: "Creating routes",
			Files: []File{
				{Path: "app/routes/__init__.py", Body: nil},
				{Path: "app/routes/main.py", Body: render(template.StructureRoutesMain)},
				{Path: "app/routes/api.py", Body: render(template.StructureRoutesApi)},
				{Path: "app/routes/auth.py", Body: render(template.StructureRoutesAuth)},
			},
		},
		{
			Label: "Creating services",
			Files: []File{
				{Path: "app/services/__init__.py", Body: nil},
				{Path: "app/decorators/__init__.py", Body: nil},
				{Path: "app/schemas/__init__.py", Body: nil},
				{Path: "app/utils/__init__.py", Body: nil},
				{Path: "app/validators/__init__.py", Body: nil},
				{Path: "app/middleware/__init__.py", Body: nil},
			},
		},
		{
			Label: "Creating templates",
			Files: []File{
				{Path: "app/templates/base.html", Body: render(template.StructureBaseHtml)},
				{Path: "app/templates/index.html", Body: render(template.StructureIndexHtml)},
				{Path: "app/templates/errors/404.html", Body: render(template.StructureError404Html)},
				{Path: "app/templates/errors/500.html", Body: render(template.StructureError500Html)},
			},
		},
		{
			Label: "Creating static assets",
			Files: []File{
				{Path: "app/static/css/style.css", Body: render(template.StructureStyleCss)},
				{Path: "app/static/js/main.js", Body: []byte("console.log('Flask app loaded');\n")},
			},
		},
		{
			Label: "Creating tests",
			Files: []File{
				{Path: "tests/__init__.py", Body: nil},
				{Path: "tests/unit/__init__.py", Body: nil},
				{Path: "tests/integration/__init__.py", Body: nil},
				{Path: "tests/conftest.py", Body: render(template.StructureConftest)},
				{Path: "tests/integration/test_routes.py", Body: render(template.StructureTestRoutes)},
				{Path: "tests/integration/test_db.py", Body: render(template.StructureTestDb)},
			},
		},
		{
			Label: "Creating configuration files",
			Files: []File{
				{Path: "requirements.txt", Body: render(template.StructureRequirements)},
				{Path: ".env.example", Body: render(template.StructureEnvExample)},
				{Path: ".gitignore", Body: render(template.StructureGitignore)},
				{Path: "run.py", Body: render(template.StructureRunPy)},
				{Path: "README.md", Body: render(template.StructureReadme)},
			},
		},
	}
}
