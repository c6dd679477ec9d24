// Package license evaluates SPDX license expressions against a deny list.
//
// An expression is disallowed when no way of satisfying it avoids a denied
// license: every branch of an OR must be denied, any operand of an AND may
// be, and "X WITH exception" is judged by X alone. Informal license names
// ("GPL V3", "Apache License 2.0") are normalized to SPDX identifiers first.
package license

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("invalid license expression")

// Node is a parsed license expression.
type Node interface {
	fmt.Stringer
	deniedBy(denied entities.StringSet) bool
}

type licenseNode struct {
	id        string
	exception string
}

func (n *licenseNode) String() string {
	if n.exception != "" {
		return n.id + " WITH " + n.exception
	}
	return n.id
}

func (n *licenseNode) deniedBy(denied entities.StringSet) bool {
	if IsReserved(n.id) {
		return false
	}
	return denied.Contains(n.id) || denied.Contains(Normalize(n.id))
}

type opNode struct {
	op       string // "AND" or "OR"
	operands []Node
}

func (n *opNode) String() string {
	parts := make([]string, len(n.operands))
	for i, o := range n.operands {
		if _, nested := o.(*opNode); nested {
			parts[i] = "(" + o.String() + ")"
		} else {
			parts[i] = o.String()
		}
	}
	return strings.Join(parts, " "+n.op+" ")
}

func (n *opNode) deniedBy(denied entities.StringSet) bool {
	if n.op == "OR" {
		for _, o := range n.operands {
			if !o.deniedBy(denied) {
				return false
			}
		}
		return true
	}
	for _, o := range n.operands {
		if o.deniedBy(denied) {
			return true
		}
	}
	return false
}

// Matcher decides whether license expressions fall foul of a deny list.
type Matcher struct {
	denied entities.StringSet
}

// NewMatcher creates a Matcher for the given denied identifiers.
func NewMatcher(denied entities.StringSet) *Matcher {
	return &Matcher{denied: denied}
}

// Disallowed reports whether expr is disallowed. Exact and normalized
// matches of the whole string are tried before parsing; an expression that
// does not parse is judged by those matches alone.
func (m *Matcher) Disallowed(expr string) bool {
	if len(m.denied) == 0 {
		return false
	}
	expr = strings.TrimSpace(expr)
	if IsReserved(expr) {
		return false
	}
	if m.denied.Contains(expr) {
		return true
	}
	normalized := Normalize(expr)
	if IsReserved(normalized) {
		return false
	}
	if m.denied.Contains(normalized) {
		return true
	}

	node, err := Parse(expr)
	if err != nil {
		return false
	}
	return node.deniedBy(m.denied)
}

// Parse parses an SPDX license expression. WITH binds tighter than AND,
// which binds tighter than OR. Operators are matched case-insensitively.
func Parse(expr string) (Node, error) {
	p := &parser{tokens: tokenize(expr)}
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, p.tokens[p.pos].text, p.pos)
	}
	return node, nil
}

type tokenKind int

const (
	tokLicense tokenKind = iota
	tokAnd
	tokOr
	tokWith
	tokOpen
	tokClose
)

type token struct {
	text string
	kind tokenKind
}

// tokenize splits expr into operators, parentheses and license phrases.
// Consecutive plain words form one phrase so that "GPL V3" stays whole.
func tokenize(expr string) []token {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range expr {
		switch {
		case r == '(' || r == ')':
			flush()
			words = append(words, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	var tokens []token
	var phrase []string
	emitPhrase := func() {
		if len(phrase) > 0 {
			tokens = append(tokens, token{text: strings.Join(phrase, " "), kind: tokLicense})
			phrase = phrase[:0]
		}
	}
	for _, w := range words {
		kind := tokLicense
		switch strings.ToUpper(w) {
		case "AND":
			kind = tokAnd
		case "OR":
			kind = tokOr
		case "WITH":
			kind = tokWith
		case "(":
			kind = tokOpen
		case ")":
			kind = tokClose
		}
		if kind == tokLicense {
			phrase = append(phrase, w)
			continue
		}
		emitPhrase()
		tokens = append(tokens, token{text: strings.ToUpper(w), kind: kind})
	}
	emitPhrase()
	return tokens
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseOr() (Node, error) {
	return p.parseBinary("OR", tokOr, p.parseAnd)
}

func (p *parser) parseAnd() (Node, error) {
	return p.parseBinary("AND", tokAnd, p.parseWith)
}

func (p *parser) parseBinary(op string, kind tokenKind, next func() (Node, error)) (Node, error) {
	first, err := next()
	if err != nil {
		return nil, err
	}
	operands := []Node{first}
	for {
		t, ok := p.peek()
		if !ok || t.kind != kind {
			break
		}
		p.pos++
		n, err := next()
		if err != nil {
			return nil, err
		}
		operands = append(operands, n)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return &opNode{op: op, operands: operands}, nil
}

func (p *parser) parseWith() (Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	t, ok := p.peek()
	if !ok || t.kind != tokWith {
		return n, nil
	}
	lic, isLicense := n.(*licenseNode)
	if !isLicense {
		return nil, fmt.Errorf("%w: WITH must follow a license identifier", ErrSyntax)
	}
	p.pos++
	exc, ok := p.peek()
	if !ok || exc.kind != tokLicense {
		return nil, fmt.Errorf("%w: WITH must be followed by an exception identifier", ErrSyntax)
	}
	p.pos++
	return &licenseNode{id: lic.id, exception: exc.text}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	switch t.kind {
	case tokLicense:
		p.pos++
		return &licenseNode{id: t.text}, nil
	case tokOpen:
		p.pos++
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokClose {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return n, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, t.text, p.pos)
	}
}
