// Package css builds the GTK style sheet that mirrors widget colors.
//
// Every hosted widget gets a class derived from its handle. The sheet keeps
// one rule per class and renders them in the order the classes were first
// seen, so regenerating after a color change is stable.
package css

import (
	"fmt"
	"strings"

	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// ClassPrefix starts every generated class name.
const ClassPrefix = "exf-"

// ClassFor returns the CSS class for the widget with handle h.
func ClassFor(h service.Handle) string {
	return ClassPrefix + strings.ReplaceAll(h.String(), "-", "")[:12]
}

type rule struct {
	fore     paint.Color
	back     paint.Color
	gradient *paint.Gradient
	// subnode is the GTK node that draws the widget's text area, if any.
	subnode string
}

// Sheet accumulates color rules.
type Sheet struct {
	rules map[string]rule
	order []string
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{rules: make(map[string]rule)}
}

func (s *Sheet) put(class string, r rule) {
	if _, ok := s.rules[class]; !ok {
		s.order = append(s.order, class)
	}
	s.rules[class] = r
}

// SetColors sets the colors for class. A non-empty subnode receives the
// colors too, for widgets such as entries whose text is drawn by a child
// node.
func (s *Sheet) SetColors(class string, fore, back paint.Color, subnode string) {
	s.put(class, rule{fore: fore, back: back, subnode: subnode})
}

// SetGradient paints class with g over a solid fallback color.
func (s *Sheet) SetGradient(class string, fore, back paint.Color, g paint.Gradient) {
	s.put(class, rule{fore: fore, back: back, gradient: &g})
}

// Remove drops the rule for class.
func (s *Sheet) Remove(class string) {
	if _, ok := s.rules[class]; !ok {
		return
	}
	delete(s.rules, class)
	for i, c := range s.order {
		if c == class {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of rules.
func (s *Sheet) Len() int { return len(s.order) }

// String renders the sheet.
func (s *Sheet) String() string {
	var b strings.Builder
	for _, class := range s.order {
		r := s.rules[class]
		writeRule(&b, "."+class, r)
		if r.subnode != "" {
			writeRule(&b, "."+class+" > "+r.subnode, rule{fore: r.fore, back: r.back})
		}
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, r rule) {
	fmt.Fprintf(b, "%s {\n", selector)
	fmt.Fprintf(b, "    color: %s;\n", r.fore.CSS())
	fmt.Fprintf(b, "    background-color: %s;\n", r.back.CSS())
	if r.gradient != nil {
		fmt.Fprintf(b, "    background-image: %s;\n", r.gradient.CSS())
	} else {
		b.WriteString("    background-image: none;\n")
	}
	b.WriteString("}\n")
}
