package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

// Lesson describes a lesson file to create in tests.
type Lesson struct {
	Route   string
	Title   string
	Summary string
	Body    string
}

// Markdown renders l as a lesson file with front matter.
func (l Lesson) Markdown() string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "route: %q\n", l.Route)
	fmt.Fprintf(&b, "title: %q\n", l.Title)
	if l.Summary != "" {
		fmt.Fprintf(&b, "summary: %q\n", l.Summary)
	}
	b.WriteString("---\n\n")
	b.WriteString(l.Body)
	return b.String()
}

// fileName maps a route to a file name: /system-admin -> system-admin.md.
func fileName(route string) string {
	name := strings.Trim(route, "/")
	if name == "" {
		name = "index"
	}
	return strings.ReplaceAll(name, "/", "-") + ".md"
}

// LessonFS builds an in-memory lesson directory.
func LessonFS(lessons ...Lesson) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, l := range lessons {
		fsys[fileName(l.Route)] = &fstest.MapFile{Data: []byte(l.Markdown())}
	}
	return fsys
}

// WriteLesson writes l into dir and returns the file path.
func WriteLesson(t *testing.T, dir string, l Lesson) string {
	t.Helper()
	path := filepath.Join(dir, fileName(l.Route))
	if err := os.WriteFile(path, []byte(l.Markdown()), 0o644); err != nil {
		t.Fatalf("write lesson %s: %v", l.Route, err)
	}
	return path
}

// LessonsFor returns a minimal lesson for every route.
func LessonsFor(routes []string) []Lesson {
	out := make([]Lesson, len(routes))
	for i, r := range routes {
		out[i] = Lesson{
			Route: r,
			Title: "Lesson " + r,
			Body:  "## Overview\n\n```sh\nls -la\n```\n",
		}
	}
	return out
}
