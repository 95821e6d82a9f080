package args_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
)

type fixedArgs []string

func (f fixedArgs) ToArgs() []string { return f }

func TestAddToCmd(t *testing.T) {
	t.Parallel()
	cmd := exec.Command("cargo", "build")
	got := args.AddToCmd(cmd, fixedArgs{"--release", "--target", "wasm32-unknown-unknown"})

	assert.Same(t, cmd, got)
	assert.Equal(t, []string{"cargo", "build", "--release", "--target", "wasm32-unknown-unknown"}, cmd.Args)
}

func TestAppend(t *testing.T) {
	t.Parallel()
	assert.Empty(t, args.Append(nil, "--target", ""))
	assert.Equal(t, []string{"--target", "x86_64-unknown-linux-gnu"}, args.Append(nil, "--target", "x86_64-unknown-linux-gnu"))
}

func TestRepeat(t *testing.T) {
	t.Parallel()
	got := args.Repeat([]string{"--workspace"}, "--package", []string{"b", "a", "b"})
	assert.Equal(t, []string{"--workspace", "--package", "b", "--package", "a", "--package", "b"}, got)
}

func TestFirstSet(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "custom", args.FirstSet("custom", "release"))
	assert.Equal(t, "release", args.FirstSet("", "release"))
	assert.Equal(t, "", args.FirstSet("", ""))
}
