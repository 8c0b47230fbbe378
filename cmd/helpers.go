package cmd

import (
	"regexp"
	"strings"
)

// triggerPattern matches the leading "openclaw" trigger word of a query.
var triggerPattern = regexp.MustCompile(`(?i)^openclaw\s*`)

// normalizeQuery joins the command-line words and strips the trigger word.
func normalizeQuery(args []string) string {
	q := strings.Join(args, " ")
	q = triggerPattern.ReplaceAllString(q, "")
	return strings.TrimSpace(q)
}
