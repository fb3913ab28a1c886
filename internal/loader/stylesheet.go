package loader

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/softwcons/qlcheck/internal/stylesheet"
	"github.com/softwcons/qlcheck/internal/types"
)

// LoadStylesheet decodes a serialized QLS stylesheet
func LoadStylesheet(r io.Reader) (*stylesheet.Stylesheet, error) {
	root, err := readDocument(r, "stylesheet")
	if err != nil {
		return nil, err
	}
	return decodeStylesheet(root)
}

// LoadStylesheetFile decodes the serialized QLS stylesheet stored at path
func LoadStylesheetFile(path string) (*stylesheet.Stylesheet, error) {
	f, err := openFile(path, "stylesheet")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadStylesheet(f)
}

func decodeStylesheet(root *yaml.Node) (*stylesheet.Stylesheet, error) {
	m, err := asMapping(root)
	if err != nil {
		return nil, err
	}
	name, err := m.scalar("stylesheet")
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}
	sheet := &stylesheet.Stylesheet{Name: name, Line: line, Column: col}

	pagesNode, ok := m.get("pages")
	if !ok {
		return sheet, nil
	}
	items, err := asSequence(pagesNode, "pages")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		page, err := decodePage(item)
		if err != nil {
			return nil, err
		}
		sheet.Pages = append(sheet.Pages, page)
	}
	return sheet, nil
}

func decodePage(n *yaml.Node) (*stylesheet.Page, error) {
	m, err := asMapping(n)
	if err != nil {
		return nil, err
	}
	name, err := m.scalar("page")
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}
	segments, defaults, err := decodeBody(m)
	if err != nil {
		return nil, err
	}
	return &stylesheet.Page{Name: name, Segments: segments, Defaults: defaults, Line: line, Column: col}, nil
}

// decodeBody reads the segments and defaults shared by pages and sections
func decodeBody(m *mapping) ([]stylesheet.Segment, []*stylesheet.DefaultStyle, error) {
	var segments []stylesheet.Segment
	var defaults []*stylesheet.DefaultStyle

	if n, ok := m.get("segments"); ok {
		items, err := asSequence(n, "segments")
		if err != nil {
			return nil, nil, err
		}
		for _, item := range items {
			seg, err := decodeSegment(item)
			if err != nil {
				return nil, nil, err
			}
			segments = append(segments, seg)
		}
	}

	if n, ok := m.get("defaults"); ok {
		items, err := asSequence(n, "defaults")
		if err != nil {
			return nil, nil, err
		}
		for _, item := range items {
			d, err := decodeDefault(item)
			if err != nil {
				return nil, nil, err
			}
			defaults = append(defaults, d)
		}
	}

	return segments, defaults, nil
}

func decodeSegment(n *yaml.Node) (stylesheet.Segment, error) {
	m, err := asMapping(n)
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}

	switch {
	case m.has("section"):
		name, err := m.scalar("section")
		if err != nil {
			return nil, err
		}
		segments, defaults, err := decodeBody(m)
		if err != nil {
			return nil, err
		}
		return &stylesheet.Section{Name: name, Segments: segments, Defaults: defaults, Line: line, Column: col}, nil

	case m.has("question"):
		id, err := m.scalar("question")
		if err != nil {
			return nil, err
		}
		q := &stylesheet.Question{ID: id, Line: line, Column: col}
		if wn, ok := m.get("widget"); ok {
			w, err := decodeWidget(wn)
			if err != nil {
				return nil, err
			}
			q.Widgets = append(q.Widgets, w)
		}
		if wn, ok := m.get("widgets"); ok {
			items, err := asSequence(wn, "widgets")
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				w, err := decodeWidget(item)
				if err != nil {
					return nil, err
				}
				q.Widgets = append(q.Widgets, w)
			}
		}
		return q, nil

	default:
		return nil, errorAt(n, "unknown segment: expected section or question")
	}
}

func decodeDefault(n *yaml.Node) (*stylesheet.DefaultStyle, error) {
	m, err := asMapping(n)
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}
	typeName, err := m.scalar("type")
	if err != nil {
		return nil, err
	}
	t := types.Parse(typeName)
	if t == types.Undefined {
		typeNode, _ := m.get("type")
		return nil, errorAt(typeNode, "unknown question type %q", typeName)
	}
	wn, err := m.require("widget")
	if err != nil {
		return nil, err
	}
	w, err := decodeWidget(wn)
	if err != nil {
		return nil, err
	}
	return &stylesheet.DefaultStyle{Type: t, Widget: w, Line: line, Column: col}, nil
}

// decodeWidget accepts either a bare widget name or a mapping with kind,
// params and style.
func decodeWidget(n *yaml.Node) (*stylesheet.StyledWidget, error) {
	if n.Kind == yaml.ScalarNode {
		kind, err := widgetKind(n, n.Value)
		if err != nil {
			return nil, err
		}
		return &stylesheet.StyledWidget{Kind: kind, Line: n.Line, Column: n.Column}, nil
	}

	m, err := asMapping(n)
	if err != nil {
		return nil, err
	}
	line, col, err := m.position()
	if err != nil {
		return nil, err
	}
	name, err := m.scalar("kind")
	if err != nil {
		return nil, err
	}
	kindNode, _ := m.get("kind")
	kind, err := widgetKind(kindNode, name)
	if err != nil {
		return nil, err
	}
	w := &stylesheet.StyledWidget{Kind: kind, Line: line, Column: col}

	if pn, ok := m.get("params"); ok {
		items, err := asSequence(pn, "params")
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.Kind != yaml.ScalarNode {
				return nil, errorAt(item, "widget parameters must be scalars")
			}
			w.Params = append(w.Params, item.Value)
		}
	}

	if sn, ok := m.get("style"); ok {
		style := make(map[string]string)
		if err := sn.Decode(&style); err != nil {
			return nil, errorAt(sn, "invalid widget style: %v", err)
		}
		w.Style = style
	}
	return w, nil
}

func widgetKind(n *yaml.Node, name string) (stylesheet.WidgetKind, error) {
	kind := stylesheet.ParseWidgetKind(name)
	if kind == stylesheet.UnknownWidget {
		return kind, errorAt(n, "unknown widget %q", name)
	}
	return kind, nil
}
