package token

// Kind is the closed tagged set of lexical token kinds. It is a plain int
// rather than an interface so that switches over it compile to a jump
// table.
type Kind int32

const (
	EOF Kind = iota
	Unknown

	// Identifiers. An Identifier token always carries its text in
	// Token.Text; Kind alone does not distinguish "foo" from "if_then_else_".
	Identifier

	// Punctuation.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Semi      // ;
	Colon     // :
	Dot       // .
	Pipe      // |
	Underscore
	Equal     // =
	Backslash // \
	Arrow     // -> or →
	Forall    // forall or ∀

	// Keywords.
	KwModule
	KwOpen
	KwImport
	KwWhere
	KwWith
	KwLet
	KwIn
	KwData
	KwRecord
	KwField
	KwConstructor
	KwForall // spelled "forall" (as opposed to the Forall punctuation "∀")
	KwInfix
	KwInfixL
	KwInfixR
	KwPostulate
	KwType
)

var kindNames = map[Kind]string{
	EOF:           "eof",
	Unknown:       "unknown",
	Identifier:    "identifier",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	Semi:          ";",
	Colon:         ":",
	Dot:           ".",
	Pipe:          "|",
	Underscore:    "_",
	Equal:         "=",
	Backslash:     "\\",
	Arrow:         "->",
	Forall:        "∀",
	KwModule:      "module",
	KwOpen:        "open",
	KwImport:      "import",
	KwWhere:       "where",
	KwWith:        "with",
	KwLet:         "let",
	KwIn:          "in",
	KwData:        "data",
	KwRecord:      "record",
	KwField:       "field",
	KwConstructor: "constructor",
	KwForall:      "forall",
	KwInfix:       "infix",
	KwInfixL:      "infixl",
	KwInfixR:      "infixr",
	KwPostulate:   "postulate",
	KwType:        "Type",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// keywords maps the exact source spelling of a keyword to its Kind.
// Keywords are identified by exact match against this table only after a
// maximal identifier run has already been lexed as a generic identifier.
var keywords = map[string]Kind{
	"module":      KwModule,
	"open":        KwOpen,
	"import":      KwImport,
	"where":       KwWhere,
	"with":        KwWith,
	"let":         KwLet,
	"in":          KwIn,
	"data":        KwData,
	"record":      KwRecord,
	"field":       KwField,
	"constructor": KwConstructor,
	"forall":      KwForall,
	"infix":       KwInfix,
	"infixl":      KwInfixL,
	"infixr":      KwInfixR,
	"postulate":   KwPostulate,
	"Type":        KwType,
}

// LookupKeyword returns the keyword Kind for ident, or (Identifier, false)
// if ident is not a reserved word.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsLayoutKeyword reports whether kw opens an indentation-sensitive layout
// block: "where", "let", "of", and future layout keywords. Silt has no
// "of" keyword (no case-of construct in this front end) but the hook is
// kept generic so a grammar extension only needs to add to this set.
func IsLayoutKeyword(k Kind) bool {
	switch k {
	case KwWhere, KwLet:
		return true
	default:
		return false
	}
}

// IsArrow reports whether k is either spelling of the function-type arrow.
func IsArrow(k Kind) bool { return k == Arrow }

// IsForall reports whether k is either spelling of the universal quantifier.
func IsForall(k Kind) bool { return k == Forall || k == KwForall }

// Presence classifies how a token relates to the original source text.
type Presence int

const (
	// Present tokens were actually lexed from source bytes.
	Present Presence = iota
	// Implicit tokens were inserted by the layout algorithm and have no
	// source range.
	Implicit
	// Missing tokens are error-recovery placeholders with no source range.
	Missing
)

func (p Presence) String() string {
	switch p {
	case Present:
		return "present"
	case Implicit:
		return "implicit"
	case Missing:
		return "missing"
	default:
		return "invalid"
	}
}

// Token is a full-fidelity lexical token: its kind, the exact text it
// matched, its leading/trailing trivia, its source range, and its
// presence. Concatenating leading+Text+trailing over every Present token
// in a stream reproduces the source file byte-for-byte.
type Token struct {
	Kind     Kind
	Text     string // exact matched text; "" for Implicit/Missing tokens
	Leading  Trivia
	Trailing Trivia
	Span     Span
	Presence Presence
}

// NewImplicit builds a layout-inserted token: no trivia, no source range.
func NewImplicit(k Kind) Token {
	return Token{Kind: k, Presence: Implicit}
}

// NewMissing builds an error-recovery placeholder token of kind k.
func NewMissing(k Kind) Token {
	return Token{Kind: k, Presence: Missing}
}

// Render returns the token's leading trivia, text, and trailing trivia
// concatenated — its exact contribution to a "shined" (layout-explicit)
// source reconstruction. Implicit/Missing tokens render as "" since they
// have no leading/trailing trivia or text.
func (t Token) Render() string {
	if t.Presence != Present {
		return ""
	}
	return t.Leading.Render() + t.Text + t.Trailing.Render()
}

// IsIdentifier reports whether the token is an identifier with the given
// exact text.
func (t Token) IsIdentifier(text string) bool {
	return t.Kind == Identifier && t.Text == text
}
