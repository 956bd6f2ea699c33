package diffblock

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/showdiff/internal/cache"
	"github.com/dshills/showdiff/internal/diffparse"
	"github.com/dshills/showdiff/internal/gitctx"
	"github.com/dshills/showdiff/internal/logging"
	"github.com/dshills/showdiff/internal/redact"
	"github.com/dshills/showdiff/internal/render"
	"github.com/dshills/showdiff/internal/revrange"
)

// NoChangesHTML is emitted when the range contains no changes.
const NoChangesHTML = "<p>No changes</p>"

// Result describes one processed block.
type Result struct {
	Range     string           `json:"range"`
	Exclude   string           `json:"exclude"`
	Pathspecs []string         `json:"pathspecs,omitempty"`
	Repo      string           `json:"repo"`
	Files     []diffparse.File `json:"files"`
	Additions int              `json:"additions"`
	Deletions int              `json:"deletions"`
	Redacted  int              `json:"redacted,omitempty"`
	Truncated bool             `json:"truncated,omitempty"`
	Cached    bool             `json:"cached,omitempty"`
	HTML      string           `json:"-"`
}

// Empty reports whether the range produced no changes.
func (r *Result) Empty() bool { return len(r.Files) == 0 }

// Processor renders show-diff blocks against a repository.
type Processor struct {
	// Root is the repository directory used when a block has no path key.
	Root string
	// Git returns the differ for a repository root. Nil uses gitctx.NewRepo.
	Git func(root string) gitctx.Differ
	// Timeout bounds each git invocation of the default differ.
	Timeout  time.Duration
	Compiler revrange.Compiler
	Renderer *render.Renderer
	// Cache may be nil.
	Cache   *cache.Cache
	Redact  redact.Policy
	Options gitctx.DiffOptions
	Log     logging.Logger
}

// Process runs the block body through the whole pipeline. The returned Result
// is non-nil whenever the block configuration compiled, even on git failure.
func (p *Processor) Process(ctx context.Context, source string) (*Result, error) {
	cfg, err := revrange.Parse(source)
	if err != nil {
		return nil, err
	}
	revRange, err := p.Compiler.RevisionRange(cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Range:     revRange,
		Exclude:   p.Compiler.ExcludedPaths(cfg),
		Pathspecs: p.Compiler.Pathspecs(cfg),
		Repo:      p.resolveRoot(cfg.Path),
	}
	log := p.Log.WithValues("range", res.Range, "repo", res.Repo)
	log.Debug("running git diff", "pathspecs", res.Pathspecs)

	d, err := p.differ(res.Repo).Diff(ctx, res.Range, res.Pathspecs, p.Options)
	if err != nil {
		return res, err
	}
	res.Truncated = d.Truncated
	if strings.TrimSpace(d.Diff) == "" {
		res.HTML = NoChangesHTML
		return res, nil
	}

	files, redacted := redact.Files(diffparse.Parse(d.Diff), p.Redact)
	res.Files = files
	res.Redacted = redacted
	res.Additions, res.Deletions = diffparse.Stats(files)
	if len(files) == 0 {
		res.HTML = NoChangesHTML
		return res, nil
	}

	key := cache.BuildKey(d.Diff, p.cacheSettings()...)
	if p.Cache != nil {
		if cached, ok := p.Cache.Get(key); ok {
			log.Debug("cache hit")
			res.HTML = cached
			res.Cached = true
			return res, nil
		}
	}

	out, err := p.renderer().Render(files)
	if err != nil {
		return res, fmt.Errorf("rendering diff: %w", err)
	}
	res.HTML = out
	if p.Cache != nil {
		if err := p.Cache.Put(key, out); err != nil {
			log.Error(err, "writing render cache")
		}
	}
	log.Debug("rendered block", "files", len(files), "additions", res.Additions, "deletions", res.Deletions)
	return res, nil
}

// HTML returns the block's rendered HTML, or the error as escaped
// preformatted text.
func (p *Processor) HTML(ctx context.Context, source string) string {
	res, err := p.Process(ctx, source)
	if err != nil {
		p.Log.Error(err, "show-diff block failed")
		return ErrorHTML(err)
	}
	return res.HTML
}

// ErrorHTML formats err for display in place of a block.
func ErrorHTML(err error) string {
	return `<pre class="show-diff-error">` + html.EscapeString(err.Error()) + "</pre>"
}

func (p *Processor) resolveRoot(override string) string {
	root := p.Root
	if root == "" {
		root = "."
	}
	switch {
	case override == "":
		return root
	case filepath.IsAbs(override):
		return filepath.Clean(override)
	default:
		return filepath.Join(root, override)
	}
}

func (p *Processor) differ(root string) gitctx.Differ {
	if p.Git != nil {
		return p.Git(root)
	}
	return gitctx.NewRepo(root, p.Timeout)
}

var defaultRenderer = render.New(render.Options{Highlight: true})

// renderer must not assign p.Renderer; a Processor is shared across goroutines.
func (p *Processor) renderer() *render.Renderer {
	if p.Renderer == nil {
		return defaultRenderer
	}
	return p.Renderer
}

// cacheSettings lists everything besides the diff text that changes output.
func (p *Processor) cacheSettings() []string {
	opts := p.renderer().Options()
	settings := []string{
		"drawFileList=" + strconv.FormatBool(opts.DrawFileList),
		"highlight=" + strconv.FormatBool(opts.Highlight),
		"redactSecrets=" + strconv.FormatBool(p.Redact.Secrets),
		"redactPaths=" + strings.Join(p.Redact.Paths, ","),
	}
	names := make([]string, 0, len(opts.Templates))
	for name := range opts.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		settings = append(settings, "template:"+name+"="+opts.Templates[name])
	}
	return settings
}
