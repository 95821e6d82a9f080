package cargo

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nightconcept/cargo-extra-go/internal/core/metadata"
)

// SimilarPackageError is returned by FindPackage when no package has the
// requested name but one differs from it only in case or separators.
type SimilarPackageError struct {
	Name    string
	Similar string
}

func (e *SimilarPackageError) Error() string {
	return fmt.Sprintf("found similar package for %s ~ %s", e.Name, e.Similar)
}

// FindPackage returns the package called name. It returns nil and no error
// when nothing matches, and a *SimilarPackageError when only a near match
// such as `foo_bar` for `foo-bar` exists.
func (o *Options) FindPackage(name string) (*metadata.Package, error) {
	pkgs, err := o.Packages()
	if err != nil {
		return nil, err
	}

	want := normalizeName(name)
	var similar string
	for _, p := range pkgs {
		if p.Name == name {
			return p, nil
		}
		if similar == "" && normalizeName(p.Name) == want {
			similar = p.Name
		}
	}
	if similar != "" {
		return nil, &SimilarPackageError{Name: name, Similar: similar}
	}
	return nil, nil
}

// normalizeName splits name into words on separators and case changes and
// joins them upper-cased with '-': "fooBar", "foo_bar" and "Foo-Bar" all
// become "FOO-BAR".
func normalizeName(name string) string {
	runes := []rune(name)
	var words []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(word) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		word = append(word, r)
	}
	flush()

	return cases.Upper(language.Und).String(strings.Join(words, "-"))
}
