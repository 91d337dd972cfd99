// Package token defines lexical token kinds for the appian notation.
// Invariants:
//   - Token.Span covers the source bytes the token was produced from.
//   - For Word tokens outside a string literal, Text never contains one of the
//     seven reserved punctuation characters: , ( ) { } : !
//   - Inside a string literal the Word carries the literal content verbatim;
//     no escape processing happens.
//   - Punctuation tokens carry their single character in Text.
//   - EOF is a stream sentinel and never part of a parser input slice.
package token
