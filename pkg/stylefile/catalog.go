package stylefile

import (
	"sort"

	"github.com/arthur-debert/chromazone/pkg/errors"
)

// Catalog resolves style names against the user's file first and the
// built-in styles second.
type Catalog struct {
	user    *File
	builtin *File
}

// NewCatalog creates a Catalog. user may be nil.
func NewCatalog(user *File) *Catalog {
	return &Catalog{user: user, builtin: Builtin()}
}

// Lookup returns the section called name.
func (c *Catalog) Lookup(name string) (*Section, error) {
	if c.user != nil {
		if s, ok := c.user.Section(name); ok {
			return s, nil
		}
	}
	if s, ok := c.builtin.Section(name); ok {
		return s, nil
	}

	err := errors.Newf(errors.ErrStyleNotFound, "no style named %q", name).
		WithDetail(errors.DetailStyle, name)
	if c.user != nil {
		err = err.WithDetail("path", c.user.Path)
	}
	return nil, err
}

// Sections returns every visible section sorted by name. User sections
// shadow built-in ones of the same name.
func (c *Catalog) Sections() []*Section {
	seen := make(map[string]bool)
	var out []*Section
	if c.user != nil {
		for _, s := range c.user.Sections() {
			seen[s.Name] = true
			out = append(out, s)
		}
	}
	for _, s := range c.builtin.Sections() {
		if !seen[s.Name] {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
