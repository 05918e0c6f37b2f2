package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteReport writes a JaCoCo-style HTML source report under root with the
// requested number of covered, partially covered and uncovered lines.
func WriteReport(t testing.TB, root, rel string, covered, partial, uncovered int) string {
	t.Helper()

	var body strings.Builder

	line := 1
	emit := func(class string, count int) {
		for i := 0; i < count; i++ {
			fmt.Fprintf(&body, "<span class=\"%s\" id=\"L%d\">statement();</span>\n", class, line)
			line++
		}
	}

	emit("fc", covered)
	emit("pc bpc", partial)
	emit("nc", uncovered)

	html := "<html><body><pre class=\"source lang-java linenums\">\n" + body.String() + "</pre></body></html>\n"

	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("mkdir report dir: %v", err)
	}

	if err := os.WriteFile(full, []byte(html), 0o600); err != nil {
		t.Fatalf("write report %s: %v", rel, err)
	}

	return full
}
