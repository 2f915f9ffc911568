package facade

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures drives every testdata/fixtures/<name> directory through
// Analyze. A fixture supplies input.sol25 plus an exitcode.txt naming the
// exit code Analyze's error must carry (absent for a fixture expected to
// succeed). Either way, the fixture's output — the generated XML on
// success, or the rendered "Error N: ...\nDetail: ..." text on failure —
// is checked against a go-snaps snapshot keyed by the fixture's name, so
// a regression shows up as a snapshot diff rather than a hand-maintained
// expected.xml file per fixture.
func TestFixtures(t *testing.T) {
	root := filepath.Join("testdata", "fixtures")
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading %s: %v", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		t.Run(entry.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, "input.sol25"))
			if err != nil {
				t.Fatalf("reading input.sol25: %v", err)
			}
			out, aerr := Analyze(strings.NewReader(string(src)))

			wantCode, err := os.ReadFile(filepath.Join(dir, "exitcode.txt"))
			if err != nil {
				if aerr != nil {
					t.Fatalf("unexpected error: %v detail=%v", aerr.Message, aerr.Detail)
				}
				snaps.MatchSnapshot(t, out)
				return
			}

			code, err := strconv.Atoi(strings.TrimSpace(string(wantCode)))
			if err != nil {
				t.Fatalf("exitcode.txt: %v", err)
			}
			if aerr == nil || int(aerr.Code) != code {
				t.Fatalf("got error %v, want code %d", aerr, code)
			}
			var buf bytes.Buffer
			aerr.Report(&buf)
			snaps.MatchSnapshot(t, buf.String())
		})
	}
}
