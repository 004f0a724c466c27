package xpath

// PrefixedName is a parser-provided name as it appears in source: an
// optional namespace prefix plus a local part. It has not yet been resolved
// against any particular context's namespace bindings.
type PrefixedName struct {
	Prefix string // empty means "no prefix was written"
	Local  string
}

func (n PrefixedName) hasPrefix() bool { return n.Prefix != "" }

func (n PrefixedName) String() string {
	if n.hasPrefix() {
		return n.Prefix + ":" + n.Local
	}
	return n.Local
}

// QualifiedName is a PrefixedName resolved against a context: an optional
// namespace URI (empty means "no namespace") paired with the local part.
type QualifiedName struct {
	NamespaceURI string
	Local        string
}

func (q QualifiedName) String() string {
	if q.NamespaceURI == "" {
		return q.Local
	}
	return "{" + q.NamespaceURI + "}" + q.Local
}

// resolveName resolves a PrefixedName to a QualifiedName via ctx's namespace
// bindings.
//
// An unprefixed name resolves to the absent namespace, including function
// names: XPath 1.0 does not define a default function namespace, and this
// implementation does not invent one (see DESIGN.md).
func resolveName(ctx *EvaluationContext, name PrefixedName) (QualifiedName, error) {
	if !name.hasPrefix() {
		return QualifiedName{Local: name.Local}, nil
	}
	uri, ok := ctx.NamespaceFor(name.Prefix)
	if !ok {
		return QualifiedName{}, &UnknownNamespaceError{Prefix: name.Prefix}
	}
	return QualifiedName{NamespaceURI: uri, Local: name.Local}, nil
}
