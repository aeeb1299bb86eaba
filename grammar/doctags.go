package grammar

import (
	"github.com/docling-go/doctags/token"
)

// DocTags builds the document structure grammar over the given token catalog.
//
// Repetition and optional sub-structures are encoded through ordered
// alternatives, longest alternative first: the recognizer commits to the
// first derivable alternative, so reordering productions here changes the
// accepted language.
func DocTags(c *token.Catalog) *Grammar {
	nts := []Nonterm{
		nt("Document",
			seq(Term(token.Document), Ref("Body"), Term(token.DocumentEnd))),

		// One or more pages, break-delimited; a page is one or more items.
		nt("Body",
			seq(Ref("Page"), Term(token.PageBreak), Ref("Body")),
			seq(Ref("Page"))),
		nt("Page",
			seq(Ref("DocItem"), Ref("Page")),
			seq(Ref("DocItem"))),
		nt("DocItem",
			seq(Ref("TextItem")),
			seq(Ref("TableItem")),
			seq(Ref("PictureItem")),
			seq(Ref("OrderedList")),
			seq(Ref("UnorderedList")),
			seq(Ref("InlineGroup"))),

		nt("TextItem", textItemProductions(c)...),
		nt("TextBody",
			seq(Ref("LocBlock"), Content()),
			seq(Ref("LocBlock")),
			seq(Content()),
			seq()),
		nt("CodeBody",
			seq(Ref("LocBlock"), Ref("CodeLang"), Content()),
			seq(Ref("LocBlock")),
			seq(Ref("CodeLang"), Content()),
			seq()),

		// Exactly four location tags, order-insensitive selection.
		nt("LocBlock",
			seq(Ref("Loc"), Ref("Loc"), Ref("Loc"), Ref("Loc"))),
		nt("Loc", terminalChoice(c.LocationTags())...),
		nt("CodeLang", terminalChoice(c.CodeLanguageTags())...),

		nt("TableItem",
			seq(Term(token.Table), Ref("TableContent"), Term(token.TableEnd))),
		nt("TableContent",
			seq(Ref("LocBlock"), Ref("TableRest")),
			seq(Ref("TableRest"))),
		nt("TableRest",
			seq(Ref("TableBody"), Term(token.RowBreak), Ref("Caption")),
			seq(Ref("TableBody")),
			seq(Term(token.RowBreak), Ref("Caption")),
			seq()),
		nt("TableBody",
			seq(Ref("Row"), Term(token.RowBreak), Ref("TableBody")),
			seq(Ref("Row"))),
		nt("Row",
			seq(Ref("Cell"), Ref("Row")),
			seq(Ref("Cell"))),
		nt("Cell",
			seq(Ref("CellTag"), Content()),
			seq(Ref("CellTag"))),
		nt("CellTag", terminalChoice(c.CellTags())...),

		nt("PictureItem",
			seq(Term(token.Picture), Ref("PictureContent"), Term(token.PictureEnd))),
		nt("PictureContent",
			seq(Ref("LocBlock"), Ref("PictureMeta")),
			seq(Ref("PictureMeta"))),
		nt("PictureMeta",
			seq(Ref("PicClass"), Ref("PictureAnno")),
			seq(Ref("PictureAnno"))),
		nt("PictureAnno",
			seq(Ref("Smiles"), Ref("PictureCaption")),
			seq(Ref("PictureCaption"))),
		nt("PictureCaption",
			seq(Ref("Caption")),
			seq()),
		nt("PicClass", terminalChoice(c.PictureClassTags())...),
		nt("Smiles",
			seq(Term(token.Smiles), Content(), Term(token.SmilesEnd))),
		nt("Caption",
			seq(Term(token.Caption), Ref("TextBody"), Term(token.CaptionEnd))),

		nt("OrderedList",
			seq(Term(token.OrderedList), Ref("ListItems"), Term(token.OrderedListEnd))),
		nt("UnorderedList",
			seq(Term(token.UnorderedList), Ref("ListItems"), Term(token.UnorderedListEnd))),
		nt("ListItems",
			seq(Ref("ListItem"), Ref("ListItems")),
			seq(Ref("ListItem"))),
		nt("ListItem",
			seq(Term(token.ListItem), Ref("ListItemBody"), Term(token.ListItemEnd))),
		nt("ListItemBody",
			seq(Ref("OrderedList")),
			seq(Ref("UnorderedList")),
			seq(Ref("InlineGroup")),
			seq(Ref("TextBody"))),

		nt("InlineGroup",
			seq(Term(token.Inline), Ref("InlineItems"), Term(token.InlineEnd))),
		nt("InlineItems",
			seq(Ref("TextItem"), Ref("InlineItems")),
			seq(Ref("TextItem"))),
	}

	return New("Document", c.Terminals(), nts)
}

func nt(name string, prods ...Production) Nonterm {
	return Nonterm{Name: name, Productions: prods}
}

func seq(syms ...Symbol) Production {
	return Production(syms)
}

// terminalChoice builds one single-terminal alternative per literal.
func terminalChoice(literals []string) []Production {
	prods := make([]Production, len(literals))
	for i, l := range literals {
		prods[i] = seq(Term(l))
	}
	return prods
}

// textItemProductions yields one open/body/close alternative per text label,
// plus the code block form.
func textItemProductions(c *token.Catalog) []Production {
	labels := c.TextLabels()
	prods := make([]Production, 0, len(labels)+1)
	for _, label := range labels {
		prods = append(prods, seq(Term(token.Open(label)), Ref("TextBody"), Term(token.Close(label))))
	}
	prods = append(prods, seq(Term(token.Code), Ref("CodeBody"), Term(token.CodeEnd)))
	return prods
}
