package metadata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DependencyKind classifies a dependency edge.
type DependencyKind int

const (
	// Normal dependencies are needed to build and run the package.
	Normal DependencyKind = iota
	// Development dependencies are only needed for tests, examples and benches.
	Development
	// Build dependencies are only needed by build scripts.
	Build
	// Unknown covers any other kind. When querying the dependency tree it
	// means every kind of edge.
	Unknown
)

// String returns the name cargo uses for the kind in its JSON output.
func (k DependencyKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Development:
		return "dev"
	case Build:
		return "build"
	default:
		return "unknown"
	}
}

// Edges returns the value `cargo tree --edges` expects for the kind.
func (k DependencyKind) Edges() string {
	switch k {
	case Normal, Development, Build:
		return k.String()
	default:
		return "all"
	}
}

// ParseDependencyKind accepts the names printed by String and Edges, plus
// "development" and "all".
func ParseDependencyKind(s string) (DependencyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "dev", "development":
		return Development, nil
	case "build":
		return Build, nil
	case "all", "unknown":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown dependency kind %q (expected normal, dev, build or all)", s)
}

// UnmarshalJSON decodes cargo's representation, where a normal dependency
// has a null kind.
func (k *DependencyKind) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode dependency kind: %w", err)
	}
	if s == nil {
		*k = Normal
		return nil
	}
	switch *s {
	case "normal":
		*k = Normal
	case "dev":
		*k = Development
	case "build":
		*k = Build
	default:
		*k = Unknown
	}
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (k DependencyKind) MarshalJSON() ([]byte, error) {
	if k == Normal {
		return []byte("null"), nil
	}
	return json.Marshal(k.String())
}
