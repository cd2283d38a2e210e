package domain

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is an explicit or implicit YAML null.
	KindNull Kind = iota
	// KindString is any scalar that is not null, bool or numeric.
	KindString
	// KindBool is a YAML boolean.
	KindBool
	// KindNumber is a YAML integer or float.
	KindNumber
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a string-keyed mapping of values.
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a parsed metadata value. The zero Value is null.
type Value struct {
	kind   Kind
	str    string
	b      bool
	num    float64
	items  []Value
	fields *Block
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value. raw keeps the source spelling.
func Number(raw string, n float64) Value { return Value{kind: KindNumber, str: raw, num: n} }

// Sequence returns a sequence value holding items in order.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Mapping returns a mapping value wrapping b.
func Mapping(b *Block) Value {
	if b == nil {
		b = NewBlock()
	}
	return Value{kind: KindMapping, fields: b}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string content and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// BoolValue returns the boolean content and whether v is a bool.
func (v Value) BoolValue() (bool, bool) { return v.b, v.kind == KindBool }

// Num returns the numeric content and whether v is a number.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Items returns the elements and whether v is a sequence.
func (v Value) Items() ([]Value, bool) { return v.items, v.kind == KindSequence }

// Fields returns the nested block and whether v is a mapping.
func (v Value) Fields() (*Block, bool) { return v.fields, v.kind == KindMapping }

// Len returns the element count of a sequence or mapping, or the byte
// length of a string. Other kinds have length zero.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.str)
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return v.fields.Len()
	}
	return 0
}

// IsTrue reports whether v is the boolean true. Strings and numbers never
// count, whatever their content.
func (v Value) IsTrue() bool { return v.kind == KindBool && v.b }

// Empty reports whether v carries no content: null, false, zero, or a
// zero-length string, sequence or mapping.
func (v Value) Empty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return !v.b
	case KindNumber:
		return v.num == 0
	}
	return v.Len() == 0
}

// Text renders scalars as their source text. Collections render as their
// kind name.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString, KindNumber:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return v.kind.String()
}
