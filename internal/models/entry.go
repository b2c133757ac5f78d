package models

// Field is one (type, name) pair of a structure declaration
type Field struct {
	Type string // field type as written, e.g. "Expression*"
	Name string // field name, also used as the constructor parameter name
}

// Declaration renders the field as "Type Name"
func (f Field) Declaration() string {
	return f.Type + " " + f.Name
}

// Initializer renders the constructor initializer "Name(Name)"
func (f Field) Initializer() string {
	return f.Name + "(" + f.Name + ")"
}

// Entry represents a parsed specification entry
type Entry struct {
	Index  int     // 1-based position in the entry list
	Raw    string  // original line the entry was parsed from
	Name   string  // structure name
	Fields []Field // fields in declaration order
}

// EntryList is an ordered list of raw specification lines.
// Order is the order in which structures are emitted.
type EntryList []string

// Clone returns a copy of the list so callers can't mutate shared defaults
func (l EntryList) Clone() EntryList {
	out := make(EntryList, len(l))
	copy(out, l)
	return out
}
