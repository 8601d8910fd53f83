package op

// Render formats one operation applied to already-rendered operand texts:
// Prefix + x + Infix + y + Suffix for binary operations, Prefix + x + Suffix
// for arity-1 ones (yText is ignored).
func Render(k Kind, xText, yText string) string {
	return string(AppendRender(nil, k, xText, yText))
}

// AppendRender appends the rendering of k applied to the operand texts to
// dst and returns the extended slice. Callers assembling large expressions
// can reuse one buffer instead of building intermediate strings; Fragments
// serves writers that stream text themselves.
func AppendRender(dst []byte, k Kind, xText, yText string) []byte {
	d := Describe(k)
	dst = append(dst, d.Prefix...)
	dst = append(dst, xText...)
	if d.Arity == 2 {
		dst = append(dst, d.Infix...)
		dst = append(dst, yText...)
	}
	return append(dst, d.Suffix...)
}

// Fragments returns the prefix, infix and suffix rendering fragments of k.
func Fragments(k Kind) (prefix, infix, suffix string) {
	d := Describe(k)
	return d.Prefix, d.Infix, d.Suffix
}
