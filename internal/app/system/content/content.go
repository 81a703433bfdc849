// Package content loads lesson bodies written in Markdown and renders them
// to sanitized HTML.
//
// Each lesson file starts with a YAML front matter block naming the catalog
// route it belongs to:
//
//	---
//	route: /commands
//	title: "Essential Commands: The Core Toolkit"
//	summary: Master these fundamental file operations.
//	---
//
// Fenced code blocks tagged sh, bash, shell, or console are also collected as
// copyable command examples.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dalemusser/penguinpathways/internal/app/system/htmlsanitize"
)

var (
	// ErrNoContent is returned for a route with no lesson file.
	ErrNoContent = errors.New("no lesson content for route")
	// ErrMissingFrontMatter is returned for a file without a front matter block.
	ErrMissingFrontMatter = errors.New("lesson file has no front matter")
	// ErrDuplicateLesson is returned when two files claim the same route.
	ErrDuplicateLesson = errors.New("two lesson files share a route")
	// ErrCoverage is returned by Check when lessons and routes disagree.
	ErrCoverage = errors.New("lesson content does not match catalog")
)

// FrontMatter is the metadata block at the top of a lesson file.
type FrontMatter struct {
	Route   string `yaml:"route"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Lesson is a parsed, not yet rendered, lesson file.
type Lesson struct {
	FrontMatter
	File string
	Body []byte
}

// Heading is a section of a rendered lesson.
type Heading struct {
	ID    string
	Title string
}

// Example is one copyable command from a lesson.
type Example struct {
	Text    string `json:"text" yaml:"text"`
	Lang    string `json:"lang" yaml:"lang"`
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
}

// Page is a rendered lesson.
type Page struct {
	Route    string
	Title    string
	Summary  string
	HTML     template.HTML
	Headings []Heading
	Examples []Example
}

// Library holds every lesson of a content source and caches rendered pages.
// It is safe for concurrent use.
type Library struct {
	fsys  fs.FS
	md    goldmark.Markdown
	cache *gocache.Cache
	log   *zap.Logger

	mu      sync.RWMutex
	lessons map[string]Lesson
}

// NewLibrary loads every *.md file at the root of fsys.
func NewLibrary(fsys fs.FS, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Library{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		cache: gocache.New(gocache.NoExpiration, 0),
		log:   logger,
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the content source. On error the previous lessons stay
// in place.
func (l *Library) Reload() error {
	lessons, err := load(l.fsys)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.lessons = lessons
	l.mu.Unlock()
	l.cache.Flush()
	l.log.Debug("lessons loaded", zap.Int("count", len(lessons)))
	return nil
}

// Routes returns the routes that have a lesson, sorted.
func (l *Library) Routes() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.lessons))
	for r := range l.lessons {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Lesson returns the parsed lesson for route.
func (l *Library) Lesson(route string) (Lesson, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	les, ok := l.lessons[route]
	return les, ok
}

// Page renders the lesson for route, using the cache when possible.
func (l *Library) Page(route string) (Page, error) {
	if v, ok := l.cache.Get(route); ok {
		if p, ok := v.(Page); ok {
			return p, nil
		}
	}

	les, ok := l.Lesson(route)
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrNoContent, route)
	}
	p, err := l.render(les)
	if err != nil {
		return Page{}, fmt.Errorf("render %s: %w", les.File, err)
	}
	l.cache.Set(route, p, gocache.NoExpiration)
	return p, nil
}

// Examples returns the copyable commands of the lesson at route.
func (l *Library) Examples(route string) ([]Example, error) {
	p, err := l.Page(route)
	if err != nil {
		return nil, err
	}
	return p.Examples, nil
}

// Check verifies that every route has exactly one lesson and every lesson
// belongs to one of routes.
func (l *Library) Check(routes []string) error {
	have := l.Routes()
	var problems []string
	for _, r := range routes {
		if _, ok := slices.BinarySearch(have, r); !ok {
			problems = append(problems, "missing lesson for "+r)
		}
	}
	for _, r := range have {
		if !slices.Contains(routes, r) {
			problems = append(problems, "lesson for unknown route "+r)
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrCoverage, strings.Join(problems, "; "))
	}
	return nil
}

func (l *Library) render(les Lesson) (Page, error) {
	doc := l.md.Parser().Parse(text.NewReader(les.Body))

	var buf bytes.Buffer
	if err := l.md.Renderer().Render(&buf, les.Body, doc); err != nil {
		return Page{}, err
	}

	headings, examples := outline(doc, les.Body)
	return Page{
		Route:    les.Route,
		Title:    les.Title,
		Summary:  les.Summary,
		HTML:     template.HTML(htmlsanitize.SanitizeBytes(buf.Bytes())),
		Headings: headings,
		Examples: examples,
	}, nil
}

func load(fsys fs.FS) (map[string]Lesson, error) {
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}
	lessons := make(map[string]Lesson, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		les, err := parseLesson(path.Base(name), raw)
		if err != nil {
			return nil, err
		}
		if prev, ok := lessons[les.Route]; ok {
			return nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicateLesson, les.Route, prev.File, les.File)
		}
		lessons[les.Route] = les
	}
	return lessons, nil
}

func parseLesson(name string, raw []byte) (Lesson, error) {
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	const fence = "---\n"
	if !bytes.HasPrefix(raw, []byte(fence)) {
		return Lesson{}, fmt.Errorf("%w: %s", ErrMissingFrontMatter, name)
	}
	rest := raw[len(fence):]
	end := bytes.Index(rest, []byte("\n"+fence))
	if end < 0 {
		return Lesson{}, fmt.Errorf("%w: %s", ErrMissingFrontMatter, name)
	}

	var fm FrontMatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return Lesson{}, fmt.Errorf("parse front matter of %s: %w", name, err)
	}
	if !strings.HasPrefix(fm.Route, "/") {
		return Lesson{}, fmt.Errorf("%s: front matter route %q must start with /", name, fm.Route)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return Lesson{}, fmt.Errorf("%s: front matter has no title", name)
	}

	return Lesson{
		FrontMatter: fm,
		File:        name,
		Body:        rest[end+len("\n"+fence):],
	}, nil
}
