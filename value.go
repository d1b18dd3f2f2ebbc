package main

import (
	"strings"

	"github.com/nukata/goarith"
)

// ValueKind tags the variant of a runtime Value, per §3.
type ValueKind int

const (
	ValNumber ValueKind = iota
	ValWord
	ValList
	valNone       // the no-value sentinel; never constructed outside NoValue
	valOutputTrap // internal (OUTPUT, payload) marker; never observed by primitives
)

// Value is the runtime value universe: a number, an unmarked word, or a
// (possibly nested, heterogeneous) list. Booleans are the words "True" and
// "False" spelled literally; there is no separate boolean kind.
//
// A Value can also carry the output trap described in §4.6/§9: the tagged
// (OUTPUT, payload) marker that "output" and "stop" use to request a
// non-local return from the user procedure currently being applied. It is
// folded into Value, rather than given its own return channel, because
// §4.6 already describes a primitive's return value as "either a value,
// the no-value sentinel, or an output trap" — one slot, three shapes.
type Value struct {
	Kind    ValueKind
	Num     goarith.Number
	Word    string
	List    []Value
	Payload *Value // set iff Kind == valOutputTrap
}

// NoValue is the distinguished "no result" returned by statements.
var NoValue = Value{Kind: valNone}

// OutputTrap wraps payload as an (OUTPUT, payload) marker.
func OutputTrap(payload Value) Value {
	return Value{Kind: valOutputTrap, Payload: &payload}
}

// IsOutputTrap reports whether v is an output trap rather than a plain
// value.
func IsOutputTrap(v Value) bool { return v.Kind == valOutputTrap }

// TrapPayload unwraps an output trap's carried value. It panics if v is
// not a trap; callers must check IsOutputTrap first.
func TrapPayload(v Value) Value { return *v.Payload }

// IsNoValue reports whether v is the no-value sentinel.
func IsNoValue(v Value) bool { return v.Kind == valNone }

func NumberValue(n goarith.Number) Value { return Value{Kind: ValNumber, Num: n} }
func WordValue(s string) Value           { return Value{Kind: ValWord, Word: s} }
func ListValue(items []Value) Value      { return Value{Kind: ValList, List: items} }

// TrueValue and FalseValue are the only two booleans this language has.
var (
	TrueValue  = WordValue("True")
	FalseValue = WordValue("False")
)

// BoolValue converts a Go bool to the corresponding Logo boolean word.
func BoolValue(b bool) Value {
	if b {
		return TrueValue
	}
	return FalseValue
}

func IsTrueWord(v Value) bool  { return v.Kind == ValWord && v.Word == "True" }
func IsFalseWord(v Value) bool { return v.Kind == ValWord && v.Word == "False" }
func IsBooleanWord(v Value) bool {
	return IsTrueWord(v) || IsFalseWord(v)
}

// Equal implements structural equality: textual on words, numeric on
// numbers, element-wise recursive on lists.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValNumber:
		return a.Num.Cmp(b.Num) == 0
	case ValWord:
		return a.Word == b.Word
	case ValList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Display renders v the way "print" does: bareword text for words, the
// number's own shortest form for numbers, and space-separated elements for
// lists with nested lists wrapped in brackets. "show" differs only in also
// wrapping a top-level list in brackets.
func Display(v Value) string {
	switch v.Kind {
	case ValNumber:
		return v.Num.String()
	case ValWord:
		return v.Word
	case ValList:
		parts := make([]string, len(v.List))
		for i, it := range v.List {
			parts[i] = displayElement(it)
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

func displayElement(v Value) string {
	if v.Kind == ValList {
		return "[" + Display(v) + "]"
	}
	return Display(v)
}

// tokenToValue converts a List/Number/Word/QuotedWord/VarRef token into
// data, without evaluating it: a List token's elements "become data" per
// §4.6 rule 4, so markers on QuotedWord/VarRef tokens survive as ordinary
// characters at the front of a word value, exactly as they appear in the
// quoted list's source spelling.
func tokenToValue(t Token) Value {
	switch t.Kind {
	case TokNumber:
		return NumberValue(t.Num)
	case TokWord:
		return WordValue(t.Text)
	case TokQuotedWord:
		return WordValue("\"" + t.Text)
	case TokVarRef:
		return WordValue(":" + t.Text)
	case TokList:
		items := make([]Value, len(t.List))
		for i, it := range t.List {
			items[i] = tokenToValue(it)
		}
		return ListValue(items)
	default: // OpenParen, CloseParen, InfixOp stray into list data verbatim
		return WordValue(t.Text)
	}
}

// valueToToken is tokenToValue's inverse, used when a list value must be
// re-run as code (the "run" primitive, and "if"/"ifelse" bodies that were
// supplied as list values rather than literal list tokens).
func valueToToken(v Value) Token {
	switch v.Kind {
	case ValNumber:
		return numberToken(v.Num)
	case ValList:
		items := make([]Token, len(v.List))
		for i, it := range v.List {
			items[i] = valueToToken(it)
		}
		return listToken(items)
	case ValWord:
		if len(v.Word) > 0 {
			switch v.Word[0] {
			case '"':
				return quotedWordToken(v.Word[1:])
			case ':':
				return varRefToken(v.Word[1:])
			}
		}
		return wordToken(v.Word)
	default:
		return wordToken("")
	}
}
