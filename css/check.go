package css

import (
	"fmt"
)

// Source is a named stylesheet.
type Source struct {
	Name string
	Data []byte
}

// Problem found while checking stylesheets.
type Problem struct {
	File     string
	Property string
	Message  string
}

func (p Problem) String() string {
	if p.Property == "" {
		return fmt.Sprintf("%s: %s", p.File, p.Message)
	}
	return fmt.Sprintf("%s: %s: %s", p.File, p.Property, p.Message)
}

// Result summarizes check of a set of stylesheets.
type Result struct {
	Declared   int
	References int
	Problems   []Problem
}

// Check verifies set of stylesheets meant to be used together: every custom
// property is declared once and every var() reference points to a property
// declared in one of them.
func (p *Parser) Check(sources []Source) *Result {
	res := &Result{}

	type declared struct {
		file string
	}
	decls := make(map[string]declared)
	sheets := make([]*Stylesheet, len(sources))

	for i, src := range sources {
		sheet := p.Parse(src.Data, src.Name)
		sheets[i] = sheet
		for _, w := range sheet.Warnings {
			res.Problems = append(res.Problems, Problem{File: src.Name, Message: w})
		}
		for _, d := range sheet.CustomProperties() {
			if prev, exists := decls[d.Property]; exists {
				res.Problems = append(res.Problems, Problem{
					File:     src.Name,
					Property: d.Property,
					Message:  "declared again, first declaration in " + prev.file,
				})
				continue
			}
			decls[d.Property] = declared{file: src.Name}
			res.Declared++
		}
	}

	for i, sheet := range sheets {
		for _, r := range sheet.Rules {
			for _, d := range r.Declarations {
				for _, ref := range d.References() {
					res.References++
					if _, ok := decls[ref]; !ok {
						res.Problems = append(res.Problems, Problem{
							File:     sources[i].Name,
							Property: d.Property,
							Message:  "refers to undefined " + ref,
						})
					}
				}
			}
		}
	}
	return res
}
