package template

import (
	_ "embed"
)

//go:embed structure/app-init.py
var StructureAppInit []byte

//go:embed structure/core-config.py
var StructureCoreConfig []byte

//go:embed structure/core-extensions.py
var StructureCoreExtensions []byte

//go:embed structure/models-user.py
var StructureModelsUser []byte

//go:embed structure/routes-main.py
var StructureRoutesMain []byte

//go:embed structure/routes-api.py
var StructureRoutesApi []byte

//go:embed structure/routes-auth.py
var StructureRoutesAuth []byte

//go:embed structure/base.html
var StructureBaseHtml []byte

//go:embed structure/index.html
var StructureIndexHtml []byte

//go:embed structure/error-404.html
var StructureError404Html []byte

//go:embed structure/error-500.html
var StructureError500Html []byte

//go:embed structure/style.css
var StructureStyleCss []byte

//go:embed structure/conftest.py
var StructureConftest []byte

//go:embed structure/test-routes.py
var StructureTestRoutes []byte

//go:embed structure/test-db.py
var StructureTestDb []byte

//go:embed structure/requirements.txt
var StructureRequirements []byte

//go:embed structure/env-example
var StructureEnvExample []byte

//go:embed structure/gitignore
var StructureGitignore []byte

//go:embed structure/run.py
var StructureRunPy []byte

//go:embed structure/readme.md
var StructureReadme []byte
