// Package jsoncanon parses JSON documents into an order-preserving tree and
// renders that tree in a canonical indented layout.
package jsoncanon

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a parsed JSON value. Numbers keep their source literal; Encode
// decides how they are printed.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string
	String  string
	Items   []Value
	Members []Member
}

type Member struct {
	Key   string
	Value Value
}

func Null() Value { return Value{Kind: KindNull} }
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }
func Number(literal string) Value { return Value{Kind: KindNumber, Number: literal} }
func String(s string) Value { return Value{Kind: KindString, String: s} }

func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindArray, Items: items}
}

func Object(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{Kind: KindObject, Members: members}
}
