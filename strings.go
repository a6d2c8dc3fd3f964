// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "unicode/utf8"

// Strings returns the Sequence class of string as a sequence of runes.
// Invalid UTF-8 bytes decode to utf8.RuneError one byte at a time.
func Strings() *Sequence[string, rune] {
	return MustSequence(Def[string, rune]{
		Name:   "string",
		Unpack: func(s string) []rune { return []rune(s) },
		Length: utf8.RuneCountInString,
		Head: func(s string) rune {
			r, _ := utf8.DecodeRuneInString(s)
			return r
		},
		Tail: func(s string) string {
			_, size := utf8.DecodeRuneInString(s)
			return s[size:]
		},
		IsEmpty: func(s string) bool { return s == "" },
		Prepend: func(r rune, s string) string { return string(r) + s },
		Append:  func(s string, r rune) string { return s + string(r) },
		Empty:   func() string { return "" },
		Concat:  func(s, t string) string { return s + t },
		Make:    func(rs []rune) string { return string(rs) },
		Elem:    OrderedElem[rune](),
	})
}
