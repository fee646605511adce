// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/hogevo/profile"
	"github.com/js-arias/hogevo/taxonomy"
)

const yStep = 12

type node struct {
	x     float64
	y     int
	topY  int
	botY  int
	color color.Color

	id    int
	tax   string
	depth int

	anc  *node
	desc []*node
}

type svgTree struct {
	y     int
	x     float64
	taxSz int
	root  *node
}

func copyTree(t *taxonomy.Tree, xStep float64) svgTree {
	maxSz := 0
	var root *node
	ids := make(map[int]*node)
	for _, id := range t.Nodes() {
		var anc *node
		p := t.Parent(id)
		if p >= 0 {
			anc = ids[p]
		}

		n := &node{
			id:    id,
			tax:   t.Taxon(id),
			depth: t.Depth(id),
			color: color.RGBA{A: 255},
			anc:   anc,
		}
		if anc == nil {
			root = n
		} else {
			anc.desc = append(anc.desc, n)
		}
		ids[id] = n
		if len(n.tax) > maxSz {
			maxSz = len(n.tax)
		}
	}

	s := svgTree{root: root}
	s.prepare(root, xStep)
	s.y = s.y * yStep
	s.taxSz = maxSz

	return s
}

func (s *svgTree) prepare(n *node, xStep float64) {
	n.x = float64(n.depth)*xStep + 10
	if s.x < n.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d, xStep)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

// SetColor colors each node of the tree
// by the relative intensity of an event,
// scaled by the maximum count of the event
// over the whole taxonomy.
// Nodes without events keep the default black color.
func (s *svgTree) setColor(prof *profile.Profile, event string, grad func(float64) color.Color) {
	counts := make(map[int]float64, len(prof.Nodes()))
	var max float64
	for _, id := range prof.Nodes() {
		ev := prof.Events(id)
		if ev.Root {
			continue
		}

		var v float64
		switch event {
		case "gained":
			v = float64(ev.Gained)
		case "lost":
			v = float64(ev.Lost)
		case "single":
			v = float64(ev.Single)
		case "duplicated":
			v = float64(ev.Duplicated)
		}
		counts[id] = v
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return
	}

	s.root.setColor(counts, max, grad)
}

func (n *node) setColor(counts map[int]float64, max float64, grad func(float64) color.Color) {
	if v, ok := counts[n.id]; ok {
		n.color = grad(v / max)
	}

	for _, d := range n.desc {
		d.setColor(counts, max, grad)
	}
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 5)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(int(s.x) + s.taxSz*6)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.label(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func (n node) draw(e *xml.Encoder) {
	r, g, b, _ := n.color.RGBA()
	rgb := fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)

	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "stroke"}, Value: rgb},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.desc == nil {
		return
	}

	// draws vertical line
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(int(n.topY))
	ln.Attr[3].Value = strconv.Itoa(int(n.botY))
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder) {
	tx := xml.StartElement{
		Name: xml.Name{Local: "text"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
			{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(int(n.y + 5))},
			{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
			{Name: xml.Name{Local: "font-style"}, Value: "italic"},
		},
	}
	if n.desc != nil {
		// internal node names go above the branch
		tx.Attr[0].Value = strconv.Itoa(int(n.x + 4))
		tx.Attr[1].Value = strconv.Itoa(int(n.y - 4))
		tx.Attr[3].Value = "normal"
	}
	e.EncodeToken(tx)
	e.EncodeToken(xml.CharData(n.tax))
	e.EncodeToken(tx.End())

	for _, d := range n.desc {
		d.label(e)
	}
}
