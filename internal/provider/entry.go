package provider

import "github.com/mwhite7112/edulookup/internal/lookup"

// Entry is a record projected onto the display roles, ready for a
// presentation layer. Missing fields carry the profile placeholder.
type Entry struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category,omitempty"`
	Link        string            `json:"link,omitempty"`
	Fields      map[string]string `json:"fields"`
}

// Entry projects r onto the display roles.
func (f Fields) Entry(r lookup.Record) Entry {
	placeholder := f.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	e := Entry{
		Name:        r.Display(f.Name, placeholder),
		Description: r.Display(f.Description, placeholder),
		Fields:      r.Fields,
	}
	if f.Category != "" {
		e.Category = r.Display(f.Category, placeholder)
	}
	if f.Link != "" {
		e.Link, _ = r.Get(f.Link)
	}
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	return e
}

// Entries projects every record of rs.
func (f Fields) Entries(rs lookup.ResultSet) []Entry {
	out := make([]Entry, 0, len(rs.Records))
	for _, r := range rs.Records {
		out = append(out, f.Entry(r))
	}
	return out
}
