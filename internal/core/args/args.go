// Package args defines how argument groups turn into cargo command lines and
// how partial groups combine.
package args

import "os/exec"

// Args is implemented by every argument group. ToArgs must be pure: the same
// field values always yield the same tokens in the same order.
type Args interface {
	ToArgs() []string
}

// Merger combines other into the receiver. The receiver takes precedence:
// optional values already set are kept, booleans are OR'ed and sequences are
// concatenated with the receiver's elements first.
type Merger[T any] interface {
	Merge(other T)
}

// AddToCmd appends the serialized group to cmd's arguments.
func AddToCmd(cmd *exec.Cmd, a Args) *exec.Cmd {
	cmd.Args = append(cmd.Args, a.ToArgs()...)
	return cmd
}

// Append adds a flag followed by its value when value is set.
func Append(dst []string, flag, value string) []string {
	if value == "" {
		return dst
	}
	return append(dst, flag, value)
}

// Repeat adds the flag once for every value, keeping their order.
func Repeat(dst []string, flag string, values []string) []string {
	for _, v := range values {
		dst = append(dst, flag, v)
	}
	return dst
}

// FirstSet returns self when it is set, otherwise other.
func FirstSet(self, other string) string {
	if self != "" {
		return self
	}
	return other
}
