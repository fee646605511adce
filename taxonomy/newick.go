// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/js-arias/hogevo/genome"
)

// Newick reads a taxonomy from a tree
// in newick (parenthetical) format.
//
// All terminals must be named.
// Internal node names are optional:
// an unnamed internal node will be named
// by the concatenation of its descendant terminals,
// separated by slashes.
// Branch lengths are accepted
// and ignored.
//
// Here is an example tree:
//
//	((((HUMAN,PANTR)Primates,(MOUSE,RATNO)Rodents)Euarchontoglires,CANFA)Mammalia,XENTR)Vertebrata;
func Newick(r io.Reader) (*Tree, error) {
	p := &newickParser{r: bufio.NewReader(r)}

	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if r, err := p.next(); err == nil && r != ';' {
		return nil, fmt.Errorf("newick: unexpected character %q", r)
	}

	if err := nameNode(root); err != nil {
		return nil, err
	}

	t, err := New(root.name)
	if err != nil {
		return nil, err
	}
	if err := t.addNewick(0, root); err != nil {
		return nil, err
	}
	return t, nil
}

// A scratch is a node of a newick tree
// before it is added to a taxonomy.
type scratch struct {
	name     string
	children []*scratch
}

// NameNode names unnamed internal nodes
// with the concatenation of their descendant terminals.
func nameNode(n *scratch) error {
	if len(n.children) == 0 {
		if n.name == "" {
			return fmt.Errorf("newick: expecting a name for all terminals: %w", genome.ErrInvalidArgument)
		}
		return nil
	}

	for _, c := range n.children {
		if err := nameNode(c); err != nil {
			return err
		}
	}
	if n.name == "" {
		n.name = strings.Join(n.leaves(), "/")
	}
	return nil
}

func (n *scratch) leaves() []string {
	if len(n.children) == 0 {
		return []string{n.name}
	}
	var ls []string
	for _, c := range n.children {
		ls = append(ls, c.leaves()...)
	}
	return ls
}

func (t *Tree) addNewick(id int, n *scratch) error {
	for _, c := range n.children {
		cID, err := t.Add(id, c.name)
		if err != nil {
			return err
		}
		if err := t.addNewick(cID, c); err != nil {
			return err
		}
	}
	return nil
}

type newickParser struct {
	r *bufio.Reader
}

// Next returns the next rune of the input
// that is not a space.
func (p *newickParser) next() (rune, error) {
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		return r, nil
	}
}

func (p *newickParser) node() (*scratch, error) {
	r, err := p.next()
	if err != nil {
		return nil, fmt.Errorf("newick: unexpected end of data")
	}

	n := &scratch{}
	if r == '(' {
		for {
			c, err := p.node()
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, c)

			r, err = p.next()
			if err != nil {
				return nil, fmt.Errorf("newick: unexpected end of data")
			}
			if r == ',' {
				continue
			}
			if r == ')' {
				break
			}
			return nil, fmt.Errorf("newick: unexpected character %q", r)
		}
	} else {
		p.r.UnreadRune()
	}

	name, err := p.label()
	if err != nil {
		return nil, err
	}
	n.name = name
	return n, nil
}

// Label reads the name of a node,
// which might be empty,
// and discards its branch length.
func (p *newickParser) label() (string, error) {
	r, err := p.next()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var name string
	if r == '\'' {
		name, err = p.quoted()
		if err != nil {
			return "", err
		}
	} else {
		p.r.UnreadRune()
		name, err = p.word()
		if err != nil {
			return "", err
		}
	}

	r, err = p.next()
	if errors.Is(err, io.EOF) {
		return name, nil
	}
	if err != nil {
		return "", err
	}
	if r != ':' {
		p.r.UnreadRune()
		return name, nil
	}
	if err := p.skipLength(); err != nil {
		return "", err
	}
	return name, nil
}

func (p *newickParser) word() (string, error) {
	var b strings.Builder
	for {
		r, _, err := p.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			break
		}
		if strings.ContainsRune("(),:;'", r) {
			p.r.UnreadRune()
			break
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func (p *newickParser) quoted() (string, error) {
	var b strings.Builder
	for {
		r, _, err := p.r.ReadRune()
		if err != nil {
			return "", fmt.Errorf("newick: unexpected end of data")
		}
		if r == '\'' {
			nx, _, err := p.r.ReadRune()
			if err == nil && nx == '\'' {
				// a doubled quote inside a quoted name
				// is a single quote
				b.WriteRune('\'')
				continue
			}
			if err == nil {
				p.r.UnreadRune()
			}
			break
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func (p *newickParser) skipLength() error {
	for {
		r, _, err := p.r.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E' {
			continue
		}
		p.r.UnreadRune()
		return nil
	}
}
