// Package htmlsanitize cleans rendered lesson HTML before it reaches a
// template as trusted markup.
package htmlsanitize

import (
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func lessonPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		// Fenced code blocks keep their language for syntax styling.
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
		// Tables and callouts authored in lessons may carry presentational classes.
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements(
			"table", "thead", "tbody", "tr", "th", "td", "div", "span", "p",
		)
		p.AllowElements("u", "s", "sub", "sup", "mark", "kbd")
		policy = p
	})
	return policy
}

// Sanitize removes scripts, event handlers, and unsafe URLs from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return lessonPolicy().Sanitize(s)
}

// SanitizeBytes is Sanitize for rendered buffers.
func SanitizeBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return lessonPolicy().SanitizeBytes(b)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
