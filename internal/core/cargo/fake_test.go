package cargo_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// fakeCargo answers `cargo metadata` from testdata/metadata.json and
// `cargo tree` from trees, keyed by "<manifest dir name> <edges>".
type fakeCargo struct {
	mu       sync.Mutex
	metadata []byte
	trees    map[string]string
	calls    [][]string
	failures int
}

var fixtureTrees = map[string]string{
	"zero-dep normal": `zero-dep v0.1.0 (/work/fixtures/zero-dep)
`,
	"single-dep normal": `single-dep v0.1.0 (/work/fixtures/single-dep)
zero-dep v0.1.0 (/work/fixtures/zero-dep)
`,
	"double-dep normal": `double-dep v0.1.0 (/work/fixtures/double-dep)
single-dep v0.1.0 (/work/fixtures/single-dep)
zero-dep v0.1.0 (/work/fixtures/zero-dep)
`,
	"triple-dep normal": `triple-dep v0.1.0 (/work/fixtures/triple-dep)
double-dep v0.1.0 (/work/fixtures/double-dep)
single-dep v0.1.0 (/work/fixtures/single-dep)
zero-dep v0.1.0 (/work/fixtures/zero-dep)
zero-dep v0.1.0 (/work/fixtures/zero-dep) (*)
`,
	"triple-dep dev": `triple-dep v0.1.0 (/work/fixtures/triple-dep)
serde v1.0.197
`,
	"triple-dep all": `triple-dep v0.1.0 (/work/fixtures/triple-dep)
double-dep v0.1.0 (/work/fixtures/double-dep)
single-dep v0.1.0 (/work/fixtures/single-dep)
zero-dep v0.1.0 (/work/fixtures/zero-dep)
zero-dep v0.1.0 (/work/fixtures/zero-dep) (*)
serde v1.0.197
`,
	"zero-dep dev": `zero-dep v0.1.0 (/work/fixtures/zero-dep)
[dev-dependencies]
rand v0.8.5
`,
}

func newFakeCargo(t *testing.T) *fakeCargo {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "metadata.json"))
	require.NoError(t, err, "Failed to read metadata fixture")
	return &fakeCargo{metadata: data, trees: fixtureTrees}
}

func (f *fakeCargo) run(name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{name}, args...))

	if f.failures > 0 {
		f.failures--
		return nil, errors.New("error: could not find `Cargo.toml`")
	}

	switch args[0] {
	case "metadata":
		return f.metadata, nil
	case "tree":
		key := filepath.Base(filepath.Dir(flagValue(args, "--manifest-path"))) + " " + flagValue(args, "--edges")
		out, ok := f.trees[key]
		if !ok {
			return nil, fmt.Errorf("no tree fixture for %q", key)
		}
		return []byte(out), nil
	}
	return nil, fmt.Errorf("unexpected cargo subcommand %q", args[0])
}

func (f *fakeCargo) callCount(subcommand string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if len(c) > 1 && c[1] == subcommand {
			n++
		}
	}
	return n
}

func (f *fakeCargo) lastCall(subcommand string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if len(f.calls[i]) > 1 && f.calls[i][1] == subcommand {
			return f.calls[i]
		}
	}
	return nil
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// newOptions returns Options wired to the fake and a buffer collecting logs.
func newOptions(t *testing.T, fake *fakeCargo) (*cargo.Options, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts := &cargo.Options{}
	opts.Manifest.ManifestPath = "/work/fixtures/Cargo.toml"
	opts.SetRunner(fake.run)
	opts.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return opts, &logs
}

func names(pkgs []*metadata.Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.Name)
	}
	return out
}
