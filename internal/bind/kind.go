package bind

import "github.com/silt-lang/silt/pkg/syntax"

// These aliases let checker.go/expr.go/helpers.go refer to the tree's node
// kinds without qualifying every use with "syntax." — the Checker lives
// entirely in terms of pkg/syntax's Kind values, just spelled locally.
const (
	KindList            = syntax.KindList
	KindSourceFile      = syntax.KindSourceFile
	KindModuleDecl      = syntax.KindModuleDecl
	KindImportDecl      = syntax.KindImportDecl
	KindOpenDecl        = syntax.KindOpenDecl
	KindBlock           = syntax.KindBlock
	KindTypeSig         = syntax.KindTypeSig
	KindFunClause       = syntax.KindFunClause
	KindDataDecl        = syntax.KindDataDecl
	KindConSig          = syntax.KindConSig
	KindRecordDecl      = syntax.KindRecordDecl
	KindFieldSig        = syntax.KindFieldSig
	KindFixityDecl      = syntax.KindFixityDecl
	KindVar             = syntax.KindVar
	KindHole            = syntax.KindHole
	KindApp             = syntax.KindApp
	KindMixfixApp       = syntax.KindMixfixApp
	KindPi              = syntax.KindPi
	KindFunctionTy      = syntax.KindFunctionTy
	KindLambda          = syntax.KindLambda
	KindLet             = syntax.KindLet
	KindTypeExpr        = syntax.KindTypeExpr
	KindParen           = syntax.KindParen
	KindMeta            = syntax.KindMeta
	KindEqual           = syntax.KindEqual
	KindRefl            = syntax.KindRefl
	KindVarPattern      = syntax.KindVarPattern
	KindWildcardPattern = syntax.KindWildcardPattern
	KindConPattern      = syntax.KindConPattern
	KindQualifiedName   = syntax.KindQualifiedName
)
