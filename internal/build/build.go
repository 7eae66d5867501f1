package build

import "fmt"

// Set at link time with -ldflags "-X github.com/bornholm/nokdoc/internal/build.ProjectVersion=..."
var (
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
)

var (
	ShortVersion = ProjectVersion
	LongVersion  = fmt.Sprintf("%s (%s, built %s)", ProjectVersion, GitRef, BuildDate)
)
