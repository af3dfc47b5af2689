package segments

import "strings"

const (
	noExecMarker      = "# pwmc:no_exec"
	noExecMarkerTight = "#pwmc:no_exec"
)

// IsExecutable reports whether a code segment should be evaluated. A
// segment whose text, trimmed of surrounding whitespace, starts with the
// no_exec marker is never evaluated.
func IsExecutable(text string) bool {
	text = strings.TrimSpace(text)
	return !strings.HasPrefix(text, noExecMarker) &&
		!strings.HasPrefix(text, noExecMarkerTight)
}
