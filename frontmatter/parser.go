// Package frontmatter parses post metadata blocks using adrg/frontmatter.
package frontmatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"github.com/fwojciec/blogmeta"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements blogmeta.FrontMatterParser at compile time.
var _ blogmeta.FrontMatterParser = (*Parser)(nil)

// dateLayouts lists the accepted spellings of publishDate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// quoteStripper removes stray quotes left inside list elements.
var quoteStripper = strings.NewReplacer(`"`, "", "'", "")

const (
	formatYAML = "yaml"
	formatTOML = "toml"
	formatJSON = "json"
)

// formats mirrors the adrg/frontmatter defaults, but every format captures
// the raw block so Parse can decode it itself.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", capture(formatYAML)),
	frontmatter.NewFormat("---yaml", "---", capture(formatYAML)),
	frontmatter.NewFormat("+++", "+++", capture(formatTOML)),
	frontmatter.NewFormat("---toml", "---", capture(formatTOML)),
	frontmatter.NewFormat(";;;", ";;;", capture(formatJSON)),
	frontmatter.NewFormat("---json", "---", capture(formatJSON)),
	{Start: "{", End: "}", Unmarshal: capture(formatJSON), UnmarshalDelims: true, RequiresNewLine: true},
}

// block is a front matter block as found in the document.
type block struct {
	format string
	data   []byte
}

func capture(format string) frontmatter.UnmarshalFunc {
	return func(data []byte, v any) error {
		b, ok := v.(*block)
		if !ok {
			return fmt.Errorf("unexpected front matter target %T", v)
		}
		b.format = format
		b.data = bytes.Clone(data)
		return nil
	}
}

// Parser reads YAML (---), TOML (+++) or JSON front matter.
//
// YAML values keep their source text: "yes", "no" and "2025.10" stay
// strings rather than being resolved to booleans or floats. A YAML block
// that does not decode, such as one with an unquoted colon in a title, is
// read line by line instead: "key: value" scalars and "key: [a, b]" lists
// at the start of a line. Fields of the wrong shape are ignored rather
// than failing the whole document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits content into front matter and body. Malformed TOML or JSON
// front matter returns EINVALID.
func (p *Parser) Parse(content string) (*blogmeta.FrontMatter, string, error) {
	var b block
	body, err := frontmatter.Parse(strings.NewReader(content), &b, formats...)
	if err != nil {
		return nil, "", blogmeta.Errorf(blogmeta.EINVALID, "malformed front matter: %v", err)
	}

	f, err := decode(b)
	if err != nil {
		return nil, "", blogmeta.Errorf(blogmeta.EINVALID, "malformed front matter: %v", err)
	}

	date := f.timestamp("publishDate")
	if date.IsZero() {
		date = f.timestamp("date")
	}

	return &blogmeta.FrontMatter{
		Title:       f.scalar("title"),
		Description: f.scalar("description"),
		Category:    f.scalar("category"),
		Tags:        f.list("tags"),
		PublishDate: date,
		Draft:       f.flag("draft"),
	}, string(body), nil
}

// field is a front matter value kept as text.
type field struct {
	text  string
	items []string
	list  bool
}

// fields maps front matter keys to their values.
type fields map[string]field

func decode(b block) (fields, error) {
	switch b.format {
	case formatYAML:
		return decodeYAML(b.data), nil
	case formatTOML:
		var raw map[string]any
		if err := toml.Unmarshal(b.data, &raw); err != nil {
			return nil, err
		}
		return fromMap(raw), nil
	case formatJSON:
		var raw map[string]any
		if err := json.Unmarshal(b.data, &raw); err != nil {
			return nil, err
		}
		return fromMap(raw), nil
	default:
		return nil, nil
	}
}

// decodeYAML reads the top-level mapping of a YAML block, keeping each
// scalar's source text. Blocks that are not valid YAML are scanned line by
// line.
func decodeYAML(data []byte) fields {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return scanLines(data)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return scanLines(data)
	}

	f := make(fields)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, resolve(root.Content[i+1])
		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag == "!!null" {
				continue
			}
			f[key] = field{text: val.Value}
		case yaml.SequenceNode:
			var items []string
			for _, item := range val.Content {
				if item = resolve(item); item.Kind == yaml.ScalarNode {
					items = append(items, item.Value)
				}
			}
			f[key] = field{items: items, list: true}
		}
	}
	return f
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

var (
	lineRe = regexp.MustCompile(`(?m)^([A-Za-z_][\w-]*):[ \t]*(.*)$`)
	listRe = regexp.MustCompile(`^\[(.*)\]$`)
)

// scanLines reads "key: value" lines at the start of a line. Everything
// after the first colon is the value. Bracketed values are lists. The first
// occurrence of a key wins.
func scanLines(data []byte) fields {
	f := make(fields)
	for _, m := range lineRe.FindAllSubmatch(data, -1) {
		key, val := string(m[1]), strings.TrimSpace(string(m[2]))
		if _, ok := f[key]; ok {
			continue
		}
		if list := listRe.FindStringSubmatch(val); list != nil {
			f[key] = field{items: strings.Split(list[1], ","), list: true}
			continue
		}
		// Unterminated flow collections carry no usable value.
		if strings.HasPrefix(val, "[") || strings.HasPrefix(val, "{") {
			continue
		}
		f[key] = field{text: strings.Trim(val, `"'`)}
	}
	return f
}

// fromMap converts decoded TOML or JSON into fields.
func fromMap(raw map[string]any) fields {
	f := make(fields, len(raw))
	for key, v := range raw {
		if list, ok := v.([]any); ok {
			var items []string
			for _, item := range list {
				items = append(items, text(item))
			}
			f[key] = field{items: items, list: true}
			continue
		}
		f[key] = field{text: text(v)}
	}
	return f
}

// text renders a decoded scalar. Maps and lists yield "".
func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// scalar returns the trimmed text of key. Lists yield "".
func (f fields) scalar(key string) string {
	v, ok := f[key]
	if !ok || v.list {
		return ""
	}
	return strings.TrimSpace(v.text)
}

// list returns the trimmed, unquoted, non-empty elements of key.
// Scalars are not treated as single-element lists.
func (f fields) list(key string) []string {
	v, ok := f[key]
	if !ok || !v.list {
		return nil
	}

	var out []string
	for _, item := range v.items {
		s := strings.TrimSpace(quoteStripper.Replace(strings.TrimSpace(item)))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (f fields) flag(key string) bool {
	b, _ := strconv.ParseBool(f.scalar(key))
	return b
}

func (f fields) timestamp(key string) time.Time {
	s := f.scalar(key)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
