package syntax

// Kind identifies the shape of a syntax node: either a token kind promoted
// into the tree, or one of a fixed set of node kinds with a fixed per-kind
// child layout — each SyntaxKind has a fixed number and order of expected
// children; optional children are represented by Missing tokens rather
// than by varying arity. KindList is the sole, explicit exception: it
// holds a homogeneous, variable-length run of sibling nodes
// (declarations, constructor signatures, field signatures, or patterns),
// since a list's length is inherently data-dependent rather than a
// property of its grammatical shape.
type Kind int32

const (
	// KindToken marks a leaf: its payload is a token.Token, not child nodes.
	KindToken Kind = iota

	// KindList holds zero or more homogeneous sibling nodes. What it is a
	// list OF is determined by its parent's Kind, not by KindList itself.
	KindList

	KindSourceFile // children: [list(of decl), eofToken]
	KindModuleDecl // children: [moduleKw, qualifiedName, whereKw, block]
	KindImportDecl // children: [importKw, qualifiedName]
	KindOpenDecl   // children: [openKw, qualifiedName]
	KindBlock      // children: [lbrace, list, rbrace]  (implicit or explicit braces)
	KindTypeSig    // children: [nameToken, colon, expr]
	KindFunClause  // children: [nameToken, list(of pattern), equal, expr]
	KindDataDecl   // children: [dataKw, nameToken, colon, expr, whereKw, block(of conSig)]
	KindConSig     // children: [nameToken, colon, expr]
	KindRecordDecl // children: [recordKw, nameToken, colon, expr, whereKw, block(of fieldSig)]
	KindFieldSig   // children: [fieldKw, nameToken, colon, expr]
	KindFixityDecl // children: [fixityKw, levelToken, nameToken]

	KindVar           // children: [qualifiedName]
	KindHole          // children: [underscore]
	KindApp           // children: [fn expr, arg expr]
	KindMixfixApp     // children: [list(of expr)]  -- one slot per notation hole/segment
	KindPi            // children: [lparen, nameToken, colon, domain expr, rparen, arrow, codomain expr]
	KindFunctionTy    // children: [domain expr, arrow, codomain expr]
	KindLambda        // children: [backslash, list(of pattern), arrow, body expr]
	KindLet           // children: [letKw, block(of decl), inKw, body expr]
	KindTypeExpr      // children: [typeKw]
	KindParen         // children: [lparen, expr, rparen]
	KindMeta          // children: [questionToken]
	KindEqual         // children: [lhs expr, equal, rhs expr]
	KindRefl          // children: [reflToken]

	KindVarPattern    // children: [nameToken]
	KindWildcardPattern // children: [underscore]
	KindConPattern    // children: [qualifiedName, list(of pattern)]
	KindQualifiedName // children: [nameToken, (dot, nameToken)*]
)

var kindNames = map[Kind]string{
	KindToken:           "token",
	KindList:            "list",
	KindSourceFile:      "sourceFile",
	KindModuleDecl:      "moduleDecl",
	KindImportDecl:      "importDecl",
	KindOpenDecl:        "openDecl",
	KindBlock:           "block",
	KindTypeSig:         "typeSig",
	KindFunClause:       "funClause",
	KindDataDecl:        "dataDecl",
	KindConSig:          "conSig",
	KindRecordDecl:      "recordDecl",
	KindFieldSig:        "fieldSig",
	KindFixityDecl:      "fixityDecl",
	KindVar:             "var",
	KindHole:            "hole",
	KindApp:             "app",
	KindMixfixApp:       "mixfixApp",
	KindPi:              "pi",
	KindFunctionTy:      "functionTy",
	KindLambda:          "lambda",
	KindLet:             "let",
	KindTypeExpr:        "typeExpr",
	KindParen:           "paren",
	KindMeta:            "meta",
	KindEqual:           "equal",
	KindRefl:            "refl",
	KindVarPattern:      "varPattern",
	KindWildcardPattern: "wildcardPattern",
	KindConPattern:      "conPattern",
	KindQualifiedName:   "qualifiedName",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// IsExpr reports whether k is one of the expression node kinds.
func (k Kind) IsExpr() bool {
	switch k {
	case KindVar, KindHole, KindApp, KindMixfixApp, KindPi, KindFunctionTy,
		KindLambda, KindLet, KindTypeExpr, KindParen, KindMeta, KindEqual, KindRefl:
		return true
	default:
		return false
	}
}

// IsPattern reports whether k is one of the pattern node kinds.
func (k Kind) IsPattern() bool {
	switch k {
	case KindVarPattern, KindWildcardPattern, KindConPattern:
		return true
	default:
		return false
	}
}
