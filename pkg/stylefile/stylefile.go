package stylefile

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/logging"
	"github.com/arthur-debert/chromazone/pkg/rules"
)

// BuiltinName is the pseudo path reported for built-in styles.
const BuiltinName = "built-in"

//go:embed builtin.styles
var builtinStyles []byte

var (
	sectionLine = regexp.MustCompile(`^\s*\[(\w+)\]\s*$`)
	entryLine   = regexp.MustCompile(`^\s*"(.*)"\s*(.*)$`)
)

// Entry is one pattern/style line.
type Entry struct {
	Pattern string
	Style   string
	Line    int // 1-based line number in the file
}

// Section is a named, ordered list of entries.
type Section struct {
	Name    string
	Path    string // file the section was read from
	Entries []Entry
}

// Sources flattens the section into rule sources, in declaration order,
// with an origin of the form "path:line [name]".
func (s *Section) Sources() []rules.Source {
	out := make([]rules.Source, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, rules.Source{
			Pattern: e.Pattern,
			Style:   e.Style,
			Origin:  fmt.Sprintf("%s:%d [%s]", s.Path, e.Line, s.Name),
		})
	}
	return out
}

// File is a parsed style file.
type File struct {
	Path     string
	sections []*Section
	byName   map[string]*Section
}

// Parse reads style file content. path is only used to label origins.
func Parse(path string, content []byte) (*File, error) {
	logger := logging.GetLogger("stylefile.parse")
	f := &File{Path: path, byName: make(map[string]*Section)}

	var current *Section
	sc := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if m := sectionLine.FindStringSubmatch(line); m != nil {
			current = f.section(m[1])
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if current == nil {
			logger.Debug().Str("path", path).Int("line", lineNo).Msg("Ignoring line outside any section")
			continue
		}

		e, ok := ParseEntry(line)
		if !ok {
			logger.Debug().Str("path", path).Int("line", lineNo).Str("text", line).Msg("Ignoring unrecognised line")
			continue
		}
		e.Line = lineNo
		current.Entries = append(current.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read style file %s", path)
	}

	logger.Debug().Str("path", path).Int("sections", len(f.sections)).Msg("Style file parsed")
	return f, nil
}

// section returns the section called name, creating it on first use.
func (f *File) section(name string) *Section {
	if s, ok := f.byName[name]; ok {
		return s
	}
	s := &Section{Name: name, Path: f.Path}
	f.sections = append(f.sections, s)
	f.byName[name] = s
	return s
}

// ParseEntry parses a `"<regex>" <style>` line. The style is trimmed; it
// may be empty, which rule construction later rejects.
func ParseEntry(line string) (Entry, bool) {
	m := entryLine.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Pattern: m[1], Style: strings.TrimSpace(m[2])}, true
}

// Load reads and parses the style file at path. A missing file yields an
// empty File.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger := logging.GetLogger("stylefile.load")
			logger.Debug().Str("path", path).Msg("No style file")
			return &File{Path: path, byName: make(map[string]*Section)}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read style file %s", path)
	}
	return Parse(path, content)
}

// Builtin returns the styles shipped with chromazone.
func Builtin() *File {
	f, err := Parse(BuiltinName, builtinStyles)
	if err != nil {
		panic(fmt.Sprintf("stylefile: built-in styles: %v", err))
	}
	return f
}

// Section returns the section called name.
func (f *File) Section(name string) (*Section, bool) {
	s, ok := f.byName[name]
	return s, ok
}

// Sections returns all sections in the order they first appear.
func (f *File) Sections() []*Section {
	return f.sections
}
