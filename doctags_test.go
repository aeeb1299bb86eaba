package doctags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docling-go/doctags"
)

func TestValidate(t *testing.T) {
	samples := []struct {
		name   string
		raw    string
		accept bool
	}{
		{"annotated text", "<doctag><text><loc_1><loc_2><loc_3><loc_4>hello</text></doctag>", true},
		{"bare text", "<doctag><text></text></doctag>", true},
		{"empty body", "<doctag></doctag>", false},
		{"nested lists", "<doctag><unordered_list><list_item><ordered_list><list_item>x</list_item></ordered_list></list_item></unordered_list></doctag>", true},
		{"mismatched table close", "<doctag><otsl><fcel>a<nl></caption></doctag>", false},
		{"unknown tag inside text", "<doctag><text><custom>x</custom></text></doctag>", true},
		{"unknown tag as item", "<doctag><custom>x</custom></doctag>", false},
		{"whitespace heavy", "<doctag>\n\t<text>\n\t\thello world\n\t</text>\n</doctag>", true},
		{"empty string", "", false},
		{"free text", "just some text", false},
	}

	for _, s := range samples {
		s := s
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, s.accept, doctags.Validate(s.raw))
			// Same decision on a repeated call against the shared grammar.
			assert.Equal(t, s.accept, doctags.Validate(s.raw))
		})
	}
}

func TestValidateWhitespaceInvariance(t *testing.T) {
	compact := "<doctag><section_header_level_2>Intro</section_header_level_2><text>body</text></doctag>"
	spaced := "  <doctag>\n  <section_header_level_2> Intro </section_header_level_2>\n  <text> body </text>\n  </doctag>  "
	assert.True(t, doctags.Validate(compact))
	assert.Equal(t, doctags.Validate(compact), doctags.Validate(spaced))
}

func TestValidateFullDocument(t *testing.T) {
	raw := `<doctag>
<title>Optimized Table Tokenization</title>
<text><loc_74><loc_85><loc_158><loc_114>Some Author, Some Lab</text>
<section_header_level_1>1. Introduction</section_header_level_1>
<text>Lorem ipsum dolor sit amet.</text>
<otsl><loc_81><loc_87><loc_419><loc_186><ched>Year<ched>Count<nl><fcel>2016<fcel>49823<nl><fcel>2017<fcel>695944<nl><caption>Table 1: counts per year.</caption></otsl>
<picture><loc_104><loc_85><loc_413><loc_170><bar_chart><caption>Fig. 1: a chart.</caption></picture>
<page_break>
<formula>E=mc^2</formula>
<code><_Python_>print("hi")</code>
<text>The end.</text>
</doctag>`
	assert.True(t, doctags.Validate(raw))
}
