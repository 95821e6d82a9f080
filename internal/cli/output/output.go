// Package output prints packages the way every cargo-extra command shows
// them.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	rootColor    = color.New(color.FgHiBlack, color.Bold, color.Underline).SprintFunc()
	nameColor    = color.New(color.FgWhite).SprintFunc()
	versionColor = color.New(color.FgMagenta).SprintFunc()
	pathColor    = color.New(color.FgHiBlack).SprintFunc()
)

// Root prints the workspace root followed by an empty line.
func Root(w io.Writer, path string) {
	fmt.Fprintln(w, rootColor(path))
	fmt.Fprintln(w)
}

// Header prints a section title such as "packages:".
func Header(w io.Writer, title string) {
	fmt.Fprintln(w, headerColor(title+":"))
}

// Package prints p as `name@version manifest-path`.
func Package(w io.Writer, p *metadata.Package) {
	fmt.Fprintf(w, "%s@%s %s\n", nameColor(p.Name), versionColor(p.VersionString()), pathColor(p.ManifestPath))
}

// Packages prints pkgs under title, or empty when there are none.
func Packages(w io.Writer, title string, pkgs []*metadata.Package, empty string) {
	Header(w, title)
	if len(pkgs) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for _, p := range pkgs {
		Package(w, p)
	}
}
