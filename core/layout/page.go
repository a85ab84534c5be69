package layout

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
)

// Page is a fixed-size page and its draw commands in painting order.
type Page struct {
	DocumentType document.DocumentType `json:"document_type,omitempty"`
	Reference    string                `json:"reference,omitempty"`
	Orientation  document.Orientation  `json:"orientation"`
	WidthMm      float64               `json:"width_mm"`
	HeightMm     float64               `json:"height_mm"`
	Commands     []Command             `json:"-"`
}

type pageJSON struct {
	DocumentType document.DocumentType `json:"document_type,omitempty"`
	Reference    string                `json:"reference,omitempty"`
	Orientation  document.Orientation  `json:"orientation"`
	WidthMm      float64               `json:"width_mm"`
	HeightMm     float64               `json:"height_mm"`
	Commands     []json.RawMessage     `json:"commands"`
}

func (p Page) MarshalJSON() ([]byte, error) {
	out := pageJSON{
		DocumentType: p.DocumentType,
		Reference:    p.Reference,
		Orientation:  p.Orientation,
		WidthMm:      p.WidthMm,
		HeightMm:     p.HeightMm,
		Commands:     make([]json.RawMessage, len(p.Commands)),
	}
	for i, c := range p.Commands {
		b, err := MarshalCommand(c)
		if err != nil {
			return nil, errors.Wrapf(err, "command %d", i)
		}
		out.Commands[i] = b
	}
	return json.Marshal(out)
}

func (p *Page) UnmarshalJSON(b []byte) error {
	var in pageJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	cmds := make([]Command, len(in.Commands))
	for i, raw := range in.Commands {
		c, err := UnmarshalCommand(raw)
		if err != nil {
			return errors.Wrapf(err, "command %d", i)
		}
		cmds[i] = c
	}
	*p = Page{
		DocumentType: in.DocumentType,
		Reference:    in.Reference,
		Orientation:  in.Orientation,
		WidthMm:      in.WidthMm,
		HeightMm:     in.HeightMm,
		Commands:     cmds,
	}
	return nil
}

// Box returns the page outline.
func (p Page) Box() Box {
	return Box{Width: p.WidthMm, Height: p.HeightMm}
}

// Extent is the union of all command bounds, or the zero Box for an empty page.
func (p Page) Extent() Box {
	if len(p.Commands) == 0 {
		return Box{}
	}
	ext := p.Commands[0].Bounds()
	for _, c := range p.Commands[1:] {
		ext = ext.Union(c.Bounds())
	}
	return ext
}

// Count returns how many commands of each kind the page holds.
func (p Page) Count() map[string]int {
	counts := make(map[string]int)
	for _, c := range p.Commands {
		counts[c.Kind()]++
	}
	return counts
}

func (p Page) add(cmds ...Command) Page {
	p.Commands = append(p.Commands, cmds...)
	return p
}
