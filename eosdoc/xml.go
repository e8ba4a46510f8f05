/*
 * xml.go, part of hefesto2xml.
 *
 * Copyright 2026 Sia Ghelichkhani
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package eosdoc

import (
	"encoding/xml"
	"io"
)

//Rendering walks the finished tree and emits tokens; it never decides
//anything about content. All semantics live in the assembler.

// WriteXML renders the document tree into the target schema, two-space
// indented.
func WriteXML(m *Module, w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	start := xml.StartElement{
		Name: xml.Name{Local: "module"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: xmlns},
			{Name: xml.Name{Local: "id"}, Value: m.ID},
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := writeBlurb(enc, m.Blurb); err != nil {
		return err
	}
	if err := writeLets(enc, m.Lets); err != nil {
		return err
	}
	for _, p := range m.Phases {
		if err := writePhase(enc, p); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func writePhase(enc *xml.Encoder, p Phase) error {
	switch ph := p.(type) {
	case *DebyeSolid:
		start := phaseStart(DebyeSolidType, ph.ID)
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeBlurb(enc, ph.Blurb); err != nil {
			return err
		}
		if err := writeText(enc, "formula", nil, ph.Formula); err != nil {
			return err
		}
		if err := writeLets(enc, ph.Lets); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	case *LandauPhase:
		start := phaseStart(LandauType, ph.ID)
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeBlurb(enc, ph.Blurb); err != nil {
			return err
		}
		if err := writeLets(enc, ph.Lets); err != nil {
			return err
		}
		if err := writePhase(enc, ph.Inner); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	case *SolutionPhase:
		start := phaseStart(ph.Type, ph.ID)
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeBlurb(enc, ph.Blurb); err != nil {
			return err
		}
		if err := writeLets(enc, ph.Lets); err != nil {
			return err
		}
		for _, m := range ph.Members {
			if err := writePhase(enc, m); err != nil {
				return err
			}
		}
		for _, t := range ph.Interactions {
			if err := writeInteraction(enc, t); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	}
	return nil
}

func writeInteraction(enc *xml.Encoder, t InteractionTerm) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "interaction"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "unit"}, Value: t.Unit},
			{Name: xml.Name{Local: "value"}, Value: t.Value},
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, ref := range t.Refs {
		el := xml.StartElement{
			Name: xml.Name{Local: "phase"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "ref"}, Value: ref}},
		}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeLets(enc *xml.Encoder, lets []Let) error {
	for _, l := range lets {
		attrs := []xml.Attr{{Name: xml.Name{Local: "name"}, Value: l.Name}}
		if l.Unit != "" {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "unit"}, Value: l.Unit})
		}
		if err := writeText(enc, "let", attrs, l.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeBlurb(enc *xml.Encoder, text string) error {
	if text == "" {
		return nil
	}
	return writeText(enc, "blurb", nil, text)
}

func writeText(enc *xml.Encoder, name string, attrs []xml.Attr, text string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func phaseStart(typ, id string) xml.StartElement {
	return xml.StartElement{
		Name: xml.Name{Local: "phase"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "type"}, Value: typ},
			{Name: xml.Name{Local: "id"}, Value: id},
		},
	}
}
