package newick

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/phylotree/tree"
)

const (
	terminal      = ';'
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	lengthStart   = ':'
)

// Parse builds a tree from a single Newick string terminated by ';'.
//
// Whitespace anywhere in s is ignored. Missing labels default to "" and
// missing lengths to 0. ErrParse is returned for unbalanced parentheses, an
// empty descendant list "()", an empty, non-numeric, negative or non-finite
// length, a missing terminator, or any content after the terminator.
//
// Complexity: O(len(s)).
func Parse(s string) (*tree.Tree, error) {
	src := stripSpace(s)
	end := strings.IndexByte(src, terminal)
	if end < 0 {
		return nil, errf(len(src), "missing terminal '%c'", terminal)
	}
	if end+1 < len(src) {
		return nil, errf(end+1, "trailing content %q after '%c'", src[end+1:], terminal)
	}

	p := &parser{src: src[:end]}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}

	return tree.New(root), nil
}

// parser walks the stripped body left to right. cur is the innermost open
// descendant list; it is nil before the first '(' and after the root closes.
type parser struct {
	src   string
	pos   int
	root  *tree.Node
	cur   *tree.Node
	depth int
}

func (p *parser) parse() (*tree.Node, error) {
	if p.src == "" {
		return nil, errf(0, "empty tree")
	}

	expect := true // a node expression is expected next
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case descStart:
			if !expect {
				return nil, errf(p.pos, "unexpected '%c'", c)
			}
			if p.cur == nil {
				p.root = tree.NewNode("", 0)
				p.cur = p.root
			} else {
				p.cur = p.cur.AddChild("", 0)
			}
			p.depth++
			p.pos++

		case descDelimiter:
			if p.cur == nil {
				return nil, errf(p.pos, "'%c' outside of a descendant list", c)
			}
			if expect {
				// unnamed leaf without length, as in "(,b)"
				p.cur.AddChild("", 0)
			}
			p.pos++
			expect = true

		case descEnd:
			if p.cur == nil {
				return nil, errf(p.pos, "unbalanced '%c'", c)
			}
			if expect {
				if p.cur.NumChildren() == 0 {
					return nil, errf(p.pos, "empty descendant list")
				}
				p.cur.AddChild("", 0)
			}
			p.pos++
			label, length, err := p.token()
			if err != nil {
				return nil, err
			}
			p.cur.Label, p.cur.Length = label, length
			p.cur = p.cur.Parent()
			p.depth--
			expect = false

		default:
			if !expect {
				return nil, errf(p.pos, "unexpected %q", c)
			}
			label, length, err := p.token()
			if err != nil {
				return nil, err
			}
			if p.cur == nil {
				p.root = tree.NewNode(label, length)
			} else {
				p.cur.AddChild(label, length)
			}
			expect = false
		}
	}
	if p.depth > 0 {
		return nil, errf(len(p.src), "unbalanced '%c': %d list(s) left open", descStart, p.depth)
	}

	return p.root, nil
}

// token consumes a `label[:length]` run up to the next structural rune.
func (p *parser) token() (string, float64, error) {
	start := p.pos
	for p.pos < len(p.src) && !isStructural(p.src[p.pos]) {
		p.pos++
	}
	raw := p.src[start:p.pos]

	label, lenText, hasLength := strings.Cut(raw, string(lengthStart))
	if !hasLength {
		return label, 0, nil
	}
	at := start + len(label) + 1
	if lenText == "" {
		return "", 0, errf(at, "empty branch length after %q", label)
	}
	length, err := strconv.ParseFloat(lenText, 64)
	if err != nil {
		return "", 0, errf(at, "invalid branch length %q", lenText)
	}
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return "", 0, errf(at, "branch length %q must be finite and non-negative", lenText)
	}

	return label, length, nil
}

func isStructural(c byte) bool {
	return c == descStart || c == descEnd || c == descDelimiter
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
