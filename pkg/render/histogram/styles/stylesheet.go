// Package styles builds the stylesheet embedded in every histogram scene.
//
// The stylesheet is a pure function of fixed design constants. Rule order
// and property order are part of the output contract: [Stylesheet.String]
// is byte-stable so scenes stay byte-identical across renders.
package styles

import (
	"strings"
)

// Class names shared between the stylesheet and the scene assembler.
const (
	ClassXAxis  = "x-axis"
	ClassYAxis  = "y-axis"
	ClassLabelA = "label-variant-a"
	ClassLabelB = "label-variant-b"
	ClassBar    = "bar"
	ClassLegend = "legend"
)

// MobileBreakpoint is the media condition of the responsive block.
const MobileBreakpoint = "(max-width: 500px)"

// Decl is a single property declaration.
type Decl struct {
	Property string
	Value    string
}

// Rule applies declarations to a selector list.
type Rule struct {
	Selector string
	Decls    []Decl
}

// Media is a block of rules guarded by a media condition.
type Media struct {
	Condition string
	Rules     []Rule
}

// Stylesheet is an ordered set of rules followed by media blocks.
type Stylesheet struct {
	Rules []Rule
	Media []Media
}

func labelVariant(class, fill string) Rule {
	return Rule{
		Selector: "." + class,
		Decls: []Decl{
			{"white-space", "pre"},
			{"font-size", "15px"},
			{"fill", fill},
			{"text-anchor", "end"},
			{"word-spacing", "0"},
		},
	}
}

// Build returns the histogram stylesheet.
func Build() Stylesheet {
	xText := "." + ClassXAxis + " text"
	yText := "." + ClassYAxis + " text"
	labels := "." + ClassLabelB + ", ." + ClassLabelA

	return Stylesheet{
		Rules: []Rule{
			{Selector: "text", Decls: []Decl{{"font-family", "arial, monospace"}}},
			{Selector: yText + ", " + xText, Decls: []Decl{
				{"text-anchor", "middle"},
				{"fill", "rgb(103, 102, 102)"},
				{"font-size", "12px"},
			}},
			labelVariant(ClassLabelA, "rgb(253, 200, 39)"),
			labelVariant(ClassLabelB, "rgb(33, 125, 245)"),
		},
		Media: []Media{{
			Condition: MobileBreakpoint,
			Rules: []Rule{
				{Selector: xText + ":nth-of-type(2n), " + yText + ":nth-of-type(2n)", Decls: []Decl{
					{"transition", "opacity 1s ease-in-out"},
					{"opacity", "0"},
				}},
				{Selector: labels, Decls: []Decl{{"font-size", "170%"}}},
				{Selector: yText, Decls: []Decl{{"font-size", "120%"}}},
				{Selector: xText, Decls: []Decl{{"font-size", "120%"}}},
			},
		}},
	}
}

// Lookup returns the declarations of a top-level selector as a map.
func (s Stylesheet) Lookup(selector string) (map[string]string, bool) {
	return lookup(s.Rules, selector)
}

// LookupMedia returns the declarations of a selector inside the media block
// with the given condition.
func (s Stylesheet) LookupMedia(condition, selector string) (map[string]string, bool) {
	for _, m := range s.Media {
		if m.Condition == condition {
			return lookup(m.Rules, selector)
		}
	}
	return nil, false
}

func lookup(rules []Rule, selector string) (map[string]string, bool) {
	for _, r := range rules {
		if r.Selector == selector {
			props := make(map[string]string, len(r.Decls))
			for _, d := range r.Decls {
				props[d.Property] = d.Value
			}
			return props, true
		}
	}
	return nil, false
}

// String serializes the stylesheet, two-space indented, one declaration per
// line.
func (s Stylesheet) String() string {
	var b strings.Builder
	for _, r := range s.Rules {
		writeRule(&b, r, "")
	}
	for _, m := range s.Media {
		b.WriteString("@media " + m.Condition + " {\n")
		for _, r := range m.Rules {
			writeRule(&b, r, "  ")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeRule(b *strings.Builder, r Rule, indent string) {
	b.WriteString(indent + r.Selector + " {\n")
	for _, d := range r.Decls {
		b.WriteString(indent + "  " + d.Property + ": " + d.Value + ";\n")
	}
	b.WriteString(indent + "}\n")
}
