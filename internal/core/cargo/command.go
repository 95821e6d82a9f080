package cargo

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nightconcept/cargo-extra-go/internal/core/args"
	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
	"github.com/nightconcept/cargo-extra-go/internal/core/toolchain"
)

const (
	// LinkArgsEnv is set on cargo processes that should strip their output.
	LinkArgsEnv = "RUSTFLAGS"
	stripFlags  = "-C link-args=-s"

	// DefaultTarget is the triple BuiltBin assumes when none was given.
	DefaultTarget = "wasm32-unknown-unknown"
)

// Channel is the toolchain cargo runs with. Optimize needs nightly.
func (o *Options) Channel() string {
	if o.Build.Optimize {
		return "nightly"
	}
	return o.Toolchain.ChannelOrDefault()
}

// CargoCmd returns a cargo process template without a subcommand. When the
// binary is plain `cargo` the channel is selected with a `+<channel>`
// argument.
func (o *Options) CargoCmd() *exec.Cmd {
	bin := o.Toolchain.Bin()
	cmd := exec.Command(bin)
	if strings.EqualFold(bin, toolchain.DefaultBin) {
		cmd.Args = append(cmd.Args, "+"+o.Channel())
	}
	if o.Build.LinkArgs || o.Build.Optimize {
		cmd.Env = append(os.Environ(), LinkArgsEnv+"="+stripFlags)
	}
	return cmd
}

// AddArgsToCmd appends ToArgs to cmd, then `--` and Slop when there is any.
func (o *Options) AddArgsToCmd(cmd *exec.Cmd) *exec.Cmd {
	args.AddToCmd(cmd, o)
	if len(o.Slop) > 0 {
		cmd.Args = append(cmd.Args, "--")
		cmd.Args = append(cmd.Args, o.Slop...)
	}
	return cmd
}

// BuildCmd returns `cargo build` with every option applied.
func (o *Options) BuildCmd() *exec.Cmd {
	cmd := o.CargoCmd()
	cmd.Args = append(cmd.Args, "build")
	return o.AddArgsToCmd(cmd)
}

// BuiltBin is where `cargo build` leaves the wasm binary of target.
func (o *Options) BuiltBin(target metadata.Target) (string, error) {
	dir, err := o.TargetDir()
	if err != nil {
		return "", err
	}
	triple := args.FirstSet(o.Build.Target, DefaultTarget)
	return filepath.Join(dir, triple, o.Build.ProfileName(), target.WasmBinName()), nil
}
