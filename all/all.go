// Package all imports all bundled versioning schemes.
//
// Import this package for its side effects to register every scheme:
//
//	import (
//		"github.com/git-pkgs/offset"
//		_ "github.com/git-pkgs/offset/all"
//	)
//
//	// Now all schemes are available
//	schemes := offset.SupportedSchemes()
//	// ["docker", "loose", "pep440", "semver"]
package all

import (
	_ "github.com/git-pkgs/offset/internal/docker"
	_ "github.com/git-pkgs/offset/internal/loose"
	_ "github.com/git-pkgs/offset/internal/pep440"
	_ "github.com/git-pkgs/offset/internal/semver"
)
