// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sexp

import (
	"strconv"
)

// Parse a given string into an S-expression, or return an error if the string
// is malformed.  An empty string (or one containing only whitespace and
// comments) parses as nil.
func Parse(s string) (SExp, error) {
	p := NewParser(s)
	// Parse the input
	sExp, err := p.Parse()
	// Sanity check everything was parsed
	if err == nil {
		p.skipWhitespace()
		//
		if p.index != len(p.text) {
			return nil, p.error(p.index, p.index+1, "unexpected remainder")
		}
	}

	return sExp, err
}

// ParseAll parses a given string into zero or more S-expressions, whilst
// returning an error if the string is malformed.
func ParseAll(s string) ([]SExp, error) {
	terms := make([]SExp, 0)
	p := NewParser(s)
	// Parse the input
	for {
		term, err := p.Parse()
		// Sanity check everything was parsed
		if err != nil {
			return terms, err
		} else if term == nil {
			// EOF reached
			return terms, nil
		}

		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.  Positions within the string (e.g. for spans) are
// measured in runes, rather than bytes.
type Parser struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
}

// NewParser constructs a new instance of Parser
func NewParser(text string) *Parser {
	return &Parser{
		text:  []rune(text),
		index: 0,
	}
}

// Parse the next S-Expression, or produce an error.  If the end of the input
// has been reached then nil is returned.
func (p *Parser) Parse() (SExp, error) {
	p.skipWhitespace()
	//
	if p.index == len(p.text) {
		return nil, nil
	}
	//
	start := p.index
	//
	switch p.text[start] {
	case ')':
		return nil, p.error(start, start+1, "unexpected end-of-list")
	case '(':
		var elements []SExp
		// Consume left-brace
		p.index++
		//
		for {
			p.skipWhitespace()
			//
			if p.index == len(p.text) {
				return nil, p.error(start, start+1, "unexpected end-of-file")
			} else if p.text[p.index] == ')' {
				// Consume right-brace
				p.index++
				// Done
				return NewList(elements, NewSpan(start, p.index)), nil
			}
			// Parse next element
			element, err := p.Parse()
			if err != nil {
				return nil, err
			}
			// Continue around!
			elements = append(elements, element)
		}
	case '"':
		return p.parseString()
	}
	// Symbol
	return p.parseSymbol(), nil
}

func (p *Parser) parseSymbol() *Symbol {
	start := p.index
	//
	for p.index < len(p.text) && !isDelimiter(p.text[p.index]) {
		p.index++
	}
	//
	return NewSymbol(string(p.text[start:p.index]), NewSpan(start, p.index))
}

func (p *Parser) parseString() (*String, error) {
	start := p.index
	// Find closing quote, skipping over escapes.
	for i := start + 1; i < len(p.text); i++ {
		switch p.text[i] {
		case '\\':
			i++
		case '"':
			p.index = i + 1
			//
			value, err := strconv.Unquote(string(p.text[start:p.index]))
			if err != nil {
				return nil, p.error(start, p.index, "invalid string literal")
			}
			//
			return NewString(value, NewSpan(start, p.index)), nil
		}
	}
	//
	return nil, p.error(start, start+1, "unterminated string literal")
}

// Skip over any whitespace or comments.
func (p *Parser) skipWhitespace() {
	for p.index < len(p.text) {
		switch p.text[p.index] {
		case ' ', '\t', '\n', '\r':
			p.index++
		case ';':
			// Comment runs to end of line
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		default:
			return
		}
	}
}

// Check whether a character terminates a symbol.
func isDelimiter(c rune) bool {
	switch c {
	case '(', ')', '"', ';', ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// Construct a parser error for the given region of the input stream.
func (p *Parser) error(start int, end int, msg string) *SyntaxError {
	return NewSyntaxError(NewSpan(start, min(end, len(p.text))), msg)
}
