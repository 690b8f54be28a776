package printer

import (
	"bytes"
	"path"
	"strings"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/blueprint"
)

// PrintTree renders the blueprint as a directory tree rooted at the
// project name, directories first, then files in emission order.
func PrintTree(bp *blueprint.Blueprint) (string, error) {
	root := gtree.NewRoot(bp.Name)
	nodes := make(map[string]*gtree.Node)

	var ensure func(dir string) *gtree.Node
	ensure = func(dir string) *gtree.Node {
		if node, ok := nodes[dir]; ok {
			return node
		}
		parent := root
		base := dir
		if idx := strings.LastIndex(dir, "/"); idx >= 0 {
			parent = ensure(dir[:idx])
			base = dir[idx+1:]
		}
		node := parent.Add(base)
		nodes[dir] = node
		return node
	}

	for _, dir := range bp.Directories {
		ensure(dir)
	}
	for _, file := range bp.Files() {
		parent := root
		if dir := path.Dir(file.Path); dir != "." {
			parent = ensure(dir)
		}
		parent.Add(path.Base(file.Path))
	}

	var buffer bytes.Buffer
	if err := gtree.OutputProgrammably(&buffer, root); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
