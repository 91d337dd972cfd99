package token

var punctKinds = map[rune]Kind{
	'"': StringLiteralSeparator,
	'!': NamespaceSeparator,
	',': LineSeparator,
	':': NameSeparator,
	'{': OpenObject,
	'}': CloseObject,
	'(': OpenArguments,
	')': CloseArguments,
}

// LookupPunct возвращает вид токена для зарезервированного символа.
// '"' тоже распознаётся, хотя он не входит в семёрку разделителей.
func LookupPunct(r rune) (Kind, bool) {
	k, ok := punctKinds[r]
	return k, ok
}

// IsReserved reports whether r is one of the seven reserved punctuation
// characters that terminate word collection.
func IsReserved(r rune) bool {
	k, ok := punctKinds[r]
	return ok && k != StringLiteralSeparator
}
