package printer

import (
	"strings"
	"testing"

	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/blueprint"
)

func TestPrintTree(t *testing.T) {
	bp, err := blueprint.New("demo")
	if err != nil {
		t.Fatalf("Failed to build blueprint: %v", err)
	}

	output, err := PrintTree(bp)
	if err != nil {
		t.Fatalf("Failed to render tree: %v", err)
	}

	if !strings.HasPrefix(output, "demo\n") {
		t.Errorf("Expected tree rooted at demo, got %q", strings.SplitN(output, "\n", 2)[0])
	}

	for _, want := range []string{"app", "user.py", "requirements.txt", "errors", "404.html", "logs"} {
		if !strings.Contains(output, want) {
			t.Errorf("Tree output missing %q", want)
		}
	}
}
