package sexp

// Parse a given string into an S-expression, or return an error if the string
// is malformed.
func Parse(s string) (SExp, error) {
	term, _, err := NewSourceFile("", []byte(s)).Parse()
	//
	return term, err
}

// ParseAll parses a given string into zero or more S-expressions, whilst
// returning an error if the string is malformed.
func ParseAll(s string) ([]SExp, error) {
	terms, _, err := NewSourceFile("", []byte(s)).ParseAll()
	//
	return terms, err
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.
type Parser struct {
	// Source file being parsed
	srcfile *SourceFile
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original
	// text.
	srcmap *SourceMap[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *SourceFile) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  NewSourceMap[SExp](srcfile.Contents()),
	}
}

// SourceMap returns the source map maintained for terms constructed by this
// parser.
func (p *Parser) SourceMap() *SourceMap[SExp] {
	return p.srcmap
}

// Parse a given string into an S-Expression, or produce an error.  If the end
// of the input is reached, then nil is returned.
func (p *Parser) Parse() (SExp, error) {
	start, token := p.Next()
	//
	if token == nil {
		return nil, nil
	} else if len(token) == 1 && token[0] == ')' {
		return nil, p.error(start, "unexpected end-of-list")
	} else if len(token) == 1 && token[0] == '(' {
		var elements []SExp

		for c := p.Lookahead(); c == nil || *c != ')'; c = p.Lookahead() {
			// Parse next element
			element, err := p.Parse()
			if err != nil {
				return nil, err
			} else if element == nil {
				return nil, p.error(start, "unexpected end-of-file")
			}
			// Continue around!
			elements = append(elements, element)
		}
		// Consume right-brace
		p.Next()
		// Done
		list := &List{elements}
		p.srcmap.Put(list, NewSpan(start, p.index))
		//
		return list, nil
	}
	//
	symbol := &Symbol{string(token)}
	p.srcmap.Put(symbol, NewSpan(start, start+len(token)))
	//
	return symbol, nil
}

// Next extracts the next token from a given string, along with its starting
// index.  Whitespace and comments are skipped.
func (p *Parser) Next() (int, []rune) {
	p.skipWhitespace()
	//
	index := p.index
	//
	if index == len(p.text) {
		return index, nil
	}

	switch p.text[index] {
	case '(', ')':
		// List begin / end
		p.index = p.index + 1
		return index, p.text[index:p.index]
	}
	// Symbol
	return index, p.parseSymbol()
}

// Lookahead skips any whitespace or comments, and reports what punctuation
// is next (or nil if there is none).
func (p *Parser) Lookahead() *rune {
	p.skipWhitespace()
	//
	if p.index < len(p.text) {
		switch p.text[p.index] {
		case '(', ')':
			return &p.text[p.index]
		}
	}
	//
	return nil
}

// AtEnd checks whether only whitespace or comments remain.
func (p *Parser) AtEnd() bool {
	p.skipWhitespace()
	//
	return p.index == len(p.text)
}

func (p *Parser) skipWhitespace() {
	for p.index < len(p.text) {
		switch p.text[p.index] {
		case ' ', '\t', '\r', '\n':
			p.index++
		case ';':
			p.skipComment()
		default:
			return
		}
	}
}

func (p *Parser) parseSymbol() []rune {
	// Parse token
	i := len(p.text)

	for j := p.index; j < i; j++ {
		c := p.text[j]
		if c == '(' || c == ')' || c == ';' || c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			i = j
			break
		}
	}
	// Reached end of token
	token := p.text[p.index:i]
	p.index = i

	return token
}

func (p *Parser) skipComment() {
	// Parse token
	i := len(p.text)

	for j := p.index; j < i; j++ {
		c := p.text[j]
		if c == '\n' {
			i = j
			break
		}
	}
	// Skip comment
	p.index = i
}

// Construct a parser error at a given position in the input stream.
func (p *Parser) error(index int, msg string) *SyntaxError {
	end := min(index+1, len(p.text))
	//
	return p.srcfile.SyntaxError(NewSpan(min(index, end), end), msg)
}
