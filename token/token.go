// Package token defines the closed set of terminal tag literals for one
// DocTags grammar version.
package token

import (
	"strconv"
)

// Fixed structural tags:
const (
	Document    = "<doctag>"
	DocumentEnd = "</doctag>"
	PageBreak   = "<page_break>"

	Table    = "<otsl>"
	TableEnd = "</otsl>"
	RowBreak = "<nl>"

	Picture    = "<picture>"
	PictureEnd = "</picture>"

	Smiles    = "<smiles>"
	SmilesEnd = "</smiles>"

	Code    = "<code>"
	CodeEnd = "</code>"

	OrderedList      = "<ordered_list>"
	OrderedListEnd   = "</ordered_list>"
	UnorderedList    = "<unordered_list>"
	UnorderedListEnd = "</unordered_list>"
	ListItem         = "<list_item>"
	ListItemEnd      = "</list_item>"

	Inline    = "<inline>"
	InlineEnd = "</inline>"

	Caption    = "<caption>"
	CaptionEnd = "</caption>"
)

// DefaultLocations is the number of location tags (<loc_0> ... <loc_499>)
// in the default catalog. Coordinates are quantized to this grid.
const DefaultLocations = 500

// SectionHeaderLevels is the number of numbered section header tag pairs.
const SectionHeaderLevels = 6

// textLabels are the label names with an open/close tag pair wrapping a text
// body. Numbered section headers are appended at catalog construction.
var textLabels = []string{
	"caption",
	"checkbox_selected",
	"checkbox_unselected",
	"footnote",
	"formula",
	"page_footer",
	"page_header",
	"paragraph",
	"reference",
	"text",
	"title",
}

// cellLabels are the OTSL cell kind tags, excluding the row separator.
var cellLabels = []string{
	"fcel", // full cell
	"ecel", // empty cell
	"ched", // column header
	"rhed", // row header
	"srow", // section row
	"lcel", // left-looking span mark
	"ucel", // up-looking span mark
	"xcel", // 2d span mark
}

var codeLanguages = []string{
	"Ada", "Awk", "Bash", "bc", "C", "C#", "C++", "CMake", "COBOL", "CSS",
	"Ceylon", "Clojure", "Crystal", "Cuda", "Cython", "D", "Dart", "dc",
	"Dockerfile", "Elixir", "Erlang", "FORTRAN", "Forth", "Go", "HTML",
	"Haskell", "Haxe", "Java", "JavaScript", "Julia", "Kotlin", "Lisp",
	"Lua", "Matlab", "MoonScript", "Nim", "OCaml", "ObjectiveC", "Octave",
	"PHP", "Pascal", "Perl", "Prolog", "Python", "Racket", "Ruby", "Rust",
	"SML", "SQL", "Scala", "Scheme", "Swift", "TypeScript", "VisualBasic",
	"XML", "YAML", "unknown",
}

var pictureClasses = []string{
	"bar_chart", "bar_code", "cad_drawing", "chemistry_markush_structure",
	"chemistry_molecular_structure", "electrical_diagram", "flow_chart",
	"heatmap", "icon", "line_chart", "logo", "map", "natural_image",
	"other", "pie_chart", "qr_code", "remote_sensing", "screenshot",
	"signature", "stacked_bar_chart", "stamp", "stratigraphic_chart",
	"scatter_chart",
}

// Open returns the opening tag for a label name.
func Open(label string) string {
	return "<" + label + ">"
}

// Close returns the closing tag for a label name.
func Close(label string) string {
	return "</" + label + ">"
}

// Location returns the location tag for grid index i.
func Location(i int) string {
	return "<loc_" + strconv.Itoa(i) + ">"
}

// Catalog enumerates every terminal of one grammar version. A catalog is
// immutable; accessors return fresh slices.
type Catalog struct {
	locations int
	terminals []string
}

// New creates a catalog with the given number of location tags.
func New(locations int) *Catalog {
	c := &Catalog{locations: locations}

	add := func(ts ...string) {
		c.terminals = append(c.terminals, ts...)
	}

	add(Document, DocumentEnd, PageBreak)
	for _, label := range c.TextLabels() {
		add(Open(label), Close(label))
	}
	for i := 0; i < locations; i++ {
		add(Location(i))
	}
	add(Table, TableEnd, RowBreak)
	add(c.CellTags()...)
	add(Code, CodeEnd)
	add(c.CodeLanguageTags()...)
	add(Picture, PictureEnd)
	add(c.PictureClassTags()...)
	add(Smiles, SmilesEnd)
	add(OrderedList, OrderedListEnd, UnorderedList, UnorderedListEnd)
	add(ListItem, ListItemEnd)
	add(Inline, InlineEnd)

	return c
}

// Default creates the catalog of the current grammar version.
func Default() *Catalog {
	return New(DefaultLocations)
}

// Terminals returns every terminal literal. No two entries are equal; this
// is a precondition of the grammar self-check, not separately enforced here.
func (c *Catalog) Terminals() []string {
	res := make([]string, len(c.terminals))
	copy(res, c.terminals)
	return res
}

// TextLabels returns the label names having open/close pairs around a text
// body, including the numbered section header levels.
func (c *Catalog) TextLabels() []string {
	res := make([]string, 0, len(textLabels)+SectionHeaderLevels)
	res = append(res, textLabels...)
	for i := 1; i <= SectionHeaderLevels; i++ {
		res = append(res, "section_header_level_"+strconv.Itoa(i))
	}
	return res
}

// LocationTags returns the location terminals <loc_0> ... <loc_N-1>.
func (c *Catalog) LocationTags() []string {
	res := make([]string, c.locations)
	for i := range res {
		res[i] = Location(i)
	}
	return res
}

// CellTags returns the OTSL cell kind terminals, excluding the row separator.
func (c *Catalog) CellTags() []string {
	res := make([]string, len(cellLabels))
	for i, l := range cellLabels {
		res[i] = Open(l)
	}
	return res
}

// CodeLanguageTags returns the code language terminals (<_Python_> etc.).
func (c *Catalog) CodeLanguageTags() []string {
	res := make([]string, len(codeLanguages))
	for i, l := range codeLanguages {
		res[i] = "<_" + l + "_>"
	}
	return res
}

// PictureClassTags returns the picture classification terminals.
func (c *Catalog) PictureClassTags() []string {
	res := make([]string, len(pictureClasses))
	for i, l := range pictureClasses {
		res[i] = Open(l)
	}
	return res
}
