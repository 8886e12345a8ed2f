// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"fmt"
	"unicode"

	"github.com/biogo/biogo/alphabet"
)

// SymbolMap defines the caller's four-letter alphabet, mapping each
// letter to a code in {0,1,2,3}. The zero value is invalid; use
// DefaultSymbolMap or NewSymbolMap.
type SymbolMap struct {
	codeOf [256]int8 // -1 where unmapped
	letter [4]byte
}

// DefaultSymbolMap returns the mapping this package uses when the caller
// supplies none: biogo's alphabet.DNA letter order, A=0, C=1, G=2, T=3.
// This gives the encoder a concrete, idiomatic default for the spec's
// otherwise abstract "mapping from caller symbols to {0,1,2,3}".
func DefaultSymbolMap() SymbolMap {
	n := alphabet.DNA.Len()
	letters := make([]byte, n)
	for i := 0; i < n; i++ {
		// biogo stores the DNA letters in lower case; the map uses
		// the upper-case forms.
		letters[i] = byte(unicode.ToUpper(rune(alphabet.DNA.Letter(i))))
	}
	sm, err := NewSymbolMap(letters)
	if err != nil {
		// DNA always has exactly four unambiguous letters; a failure
		// here would mean biogo's alphabet package changed shape.
		panic(fmt.Sprintf("symbol: unexpected DNA alphabet: %v", err))
	}
	return sm
}

// NewSymbolMap builds a SymbolMap from exactly four distinct letters,
// assigning codes 0,1,2,3 in the order given.
func NewSymbolMap(letters []byte) (SymbolMap, error) {
	if len(letters) != 4 {
		return SymbolMap{}, ErrEmptyAlphabet
	}
	var sm SymbolMap
	for i := range sm.codeOf {
		sm.codeOf[i] = -1
	}
	for i, l := range letters {
		if sm.codeOf[l] != -1 {
			return SymbolMap{}, fmt.Errorf("symbol: duplicate letter %q: %w", l, ErrEmptyAlphabet)
		}
		sm.codeOf[l] = int8(i)
		sm.letter[i] = l
	}
	return sm, nil
}

// Code returns the 0..3 code for letter c, or -1 if c is not mapped.
func (sm SymbolMap) Code(c byte) int8 {
	return sm.codeOf[c]
}

// Letter returns the caller-facing letter for code 0..3.
func (sm SymbolMap) Letter(code byte) byte {
	return sm.letter[code]
}
