package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Triple is a major.minor.patch version encoded as three integers, the form
// manifests use for pack and engine versions.
type Triple [3]int

// PackVersion is the version given to every generated pack and module.
var PackVersion = Triple{1, 0, 0}

// DefaultMinEngine is the minimum engine version used when none is supplied.
// Triple is an array, so every use gets its own copy.
var DefaultMinEngine = Triple{1, 20, 50}

// String renders t as "X.Y.Z".
func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t[0], t[1], t[2])
}

// ParseTriple parses a dotted "X.Y.Z" version into a Triple. Exactly three
// numeric parts are required; leading zeros are accepted ("1.20.050" is
// 1.20.50), pre-release and build suffixes are rejected.
func ParseTriple(s string) (Triple, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Triple{}, fmt.Errorf("parsing version %q: expected X.Y.Z", s)
	}
	for i, part := range parts {
		if trimmed := strings.TrimLeft(part, "0"); trimmed != part {
			if trimmed == "" {
				trimmed = "0"
			}
			parts[i] = trimmed
		}
	}

	v, err := semver.StrictNewVersion(strings.Join(parts, "."))
	if err != nil {
		return Triple{}, fmt.Errorf("parsing version %q: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return Triple{}, fmt.Errorf("parsing version %q: expected X.Y.Z without suffix", s)
	}
	return Triple{int(v.Major()), int(v.Minor()), int(v.Patch())}, nil
}

// parseSemver validates a script module version such as "1.8.0" or
// "1.9.0-beta". A leading "v" is tolerated and stripped.
func parseSemver(version string) (string, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if _, err := semver.NewVersion(version); err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}
	return version, nil
}
