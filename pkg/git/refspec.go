package git

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// refNamePattern enforces the reference naming rules from
// git-check-ref-format(1). The negative lookaheads cover the positional
// rules (no leading slash, no "..", no "@{", no ".lock" component, no
// trailing slash or dot) that a plain character class cannot express.
var refNamePattern = regexp2.MustCompile(
	`^(?!@$)(?!/)(?!.*(?:\.\.|//|@\{|\\))(?!.*\.lock(?:/|$))(?!.*[/.]$)[^\x00-\x20\x7f~^:?*\[]+$`,
	regexp2.None,
)

// ValidRefName reports whether name is a valid git reference name.
func ValidRefName(name string) bool {
	ok, err := refNamePattern.MatchString(name)
	return err == nil && ok
}

// ValidRefSpec reports whether spec is usable for a push: an optional
// leading '+', then one or two valid ref names separated by ':'.
func ValidRefSpec(spec string) bool {
	spec = strings.TrimPrefix(spec, "+")

	names := strings.Split(spec, ":")
	if len(names) > 2 {
		return false
	}

	for _, name := range names {
		if !ValidRefName(name) {
			return false
		}
	}

	return true
}
