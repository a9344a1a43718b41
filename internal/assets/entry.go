package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	oerrors "github.com/openclaw-cn/panel-inject/internal/errors"
	"github.com/openclaw-cn/panel-inject/internal/output"
)

// EntrySource names the strategy that selected the main bundle.
type EntrySource string

const (
	// SourceManifest means a bundler manifest named the entry.
	SourceManifest EntrySource = "manifest"

	// SourceHTML means index.html referenced the entry script.
	SourceHTML EntrySource = "html"

	// SourceHeuristic means the name heuristic matched.
	SourceHeuristic EntrySource = "heuristic"
)

// MainPatterns are the name fragments that mark an entry bundle.
var MainPatterns = []string{"index-", "index.js", ".bundle.js", "main"}

// manifestPaths are tried in order, relative to the control-ui directory.
var manifestPaths = []string{
	filepath.Join(".vite", "manifest.json"),
	"manifest.json",
}

// Entry is the selected main bundle.
type Entry struct {
	Name   string      `json:"name" yaml:"name"`
	Source EntrySource `json:"source" yaml:"source"`
}

// ResolveEntry selects the main bundle among dir.Scripts.
//
// Only scripts whose name contains one of MainPatterns qualify. Among those a
// bundler manifest entry is preferred, then a type="module" script referenced
// by index.html, then the first qualifying script in listing order. Unreadable
// manifests or HTML fall through to the next strategy. A MainBundleNotFound
// error is returned when no script qualifies.
func ResolveEntry(dir *Directory) (Entry, error) {
	known := make(map[string]bool, len(dir.Scripts))
	for _, s := range dir.Scripts {
		known[s] = true
	}

	for _, rel := range manifestPaths {
		p := filepath.Join(dir.UIDir, rel)
		name, err := entryFromManifest(p, known)
		if err != nil {
			output.Debug("manifest skipped", "path", p, "error", err)
			continue
		}
		if name != "" {
			return Entry{Name: name, Source: SourceManifest}, nil
		}
	}

	indexPath := filepath.Join(dir.UIDir, "index.html")
	name, err := entryFromHTML(indexPath, known)
	if err != nil {
		output.Debug("index.html skipped", "path", indexPath, "error", err)
	} else if name != "" {
		return Entry{Name: name, Source: SourceHTML}, nil
	}

	if name := MatchMain(dir.Scripts); name != "" {
		return Entry{Name: name, Source: SourceHeuristic}, nil
	}

	return Entry{}, oerrors.NewMainBundleNotFoundError(dir.Path, dir.Scripts)
}

// MatchMain returns the first script whose name contains any MainPatterns
// fragment, or "" when none does.
func MatchMain(scripts []string) string {
	for _, s := range scripts {
		if isMain(s) {
			return s
		}
	}
	return ""
}

func isMain(name string) bool {
	for _, p := range MainPatterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// manifestChunk is the subset of a Vite manifest record we read.
type manifestChunk struct {
	File    string `json:"file"`
	IsEntry bool   `json:"isEntry"`
}

// entryFromManifest returns the first entry chunk, in manifest document
// order, whose file is a known script and matches MainPatterns. A missing
// manifest yields "" and no error.
func entryFromManifest(p string, known map[string]bool) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	chunks, err := decodeManifest(data)
	if err != nil {
		return "", fmt.Errorf("parsing manifest: %w", err)
	}

	for _, c := range chunks {
		if !c.IsEntry || c.File == "" {
			continue
		}
		if name := path.Base(c.File); known[name] && isMain(name) {
			return name, nil
		}
	}
	return "", nil
}

// decodeManifest decodes the top-level manifest object, keeping the records
// in the order they appear in the document.
func decodeManifest(data []byte) ([]manifestChunk, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("manifest is not a JSON object")
	}

	var chunks []manifestChunk
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var c manifestChunk
		if err := dec.Decode(&c); err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// entryFromHTML returns the first module <script src> in the page that points
// at a known script matching MainPatterns. A missing page yields "" and no
// error.
func entryFromHTML(p string, known map[string]bool) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parsing index.html: %w", err)
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "script" {
			if name := moduleScriptName(n); name != "" && known[name] && isMain(name) {
				found = name
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return found, nil
}

// moduleScriptName returns the base file name of a type="module" script
// element's src, ignoring query strings and fragments. Classic and
// non-JavaScript scripts yield "".
func moduleScriptName(n *html.Node) string {
	var src, typ string
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "src":
			src = a.Val
		case "type":
			typ = strings.ToLower(strings.TrimSpace(a.Val))
		}
	}
	if src == "" {
		return ""
	}
	if typ != "module" {
		return ""
	}
	if u, err := url.Parse(src); err == nil {
		src = u.Path
	}
	return path.Base(src)
}
