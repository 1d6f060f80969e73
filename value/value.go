// Package value defines the owned tree of tagged nodes that evaluation
// produces and that crosses the library boundary.
package value

import (
	"fmt"
	"strconv"
)

// Tag identifies which payload of a Value is meaningful.
type Tag uint8

const (
	TagNull Tag = iota
	TagString
	TagInteger
	TagFloat
	TagBoolean
	TagList
	TagMap
)

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagString:
		return "string"
	case TagInteger:
		return "integer"
	case TagFloat:
		return "float"
	case TagBoolean:
		return "boolean"
	case TagList:
		return "list"
	case TagMap:
		return "map"
	}
	return "unknown"
}

// Value is one node of an owned result tree. A Value exclusively owns every
// Value reachable from it: trees are acyclic by construction and never share
// nodes, so one recursive Release covers exactly the allocations of one
// result. String payloads are length-authoritative and may contain NUL bytes.
type Value struct {
	Tag Tag

	Str  string
	Int  int64
	Num  float64
	Bool bool

	Items   []*Value   // TagList payload, insertion order
	Entries []MapEntry // TagMap payload, insertion order
}

// MapEntry is one key-value pair of a TagMap Value.
type MapEntry struct {
	Key   string
	Value *Value
}

// Constructors. Every constructor allocates a fresh node: result trees must
// never alias one another.

func Null() *Value           { return &Value{Tag: TagNull} }
func Str(s string) *Value    { return &Value{Tag: TagString, Str: s} }
func Int(n int64) *Value     { return &Value{Tag: TagInteger, Int: n} }
func Float(f float64) *Value { return &Value{Tag: TagFloat, Num: f} }
func Bool(b bool) *Value     { return &Value{Tag: TagBoolean, Bool: b} }

// List wraps items, taking ownership of each.
func List(items []*Value) *Value { return &Value{Tag: TagList, Items: items} }

// Map allocates an empty map value with room for capacity entries.
func Map(capacity int) *Value {
	return &Value{Tag: TagMap, Entries: make([]MapEntry, 0, capacity)}
}

// Set inserts or updates key, taking ownership of val. On duplicate keys the
// entry keeps the position of its first occurrence and takes the value of
// the last.
func (v *Value) Set(key string, val *Value) {
	for i := range v.Entries {
		if v.Entries[i].Key == key {
			v.Entries[i].Value = val
			return
		}
	}
	v.Entries = append(v.Entries, MapEntry{Key: key, Value: val})
}

// Get returns the value stored under key, scanning entries in order.
func (v *Value) Get(key string) (*Value, bool) {
	for i := range v.Entries {
		if v.Entries[i].Key == key {
			return v.Entries[i].Value, true
		}
	}
	return nil, false
}

// AsFloat returns the numeric payload widened to float64, and whether the
// value is numeric at all.
func (v *Value) AsFloat() (float64, bool) {
	switch v.Tag {
	case TagInteger:
		return float64(v.Int), true
	case TagFloat:
		return v.Num, true
	}
	return 0, false
}

// Equal reports deep structural equality. Lists are equal iff they have the
// same length and pairwise-equal elements in order; maps iff they hold the
// same key set with equal values per key, regardless of entry order.
// Integer and Float compare numerically across tags.
func Equal(a, b *Value) bool {
	if a.Tag != b.Tag {
		af, aok := a.AsFloat()
		bf, bok := b.AsFloat()
		return aok && bok && af == bf
	}
	switch a.Tag {
	case TagNull:
		return true
	case TagString:
		return a.Str == b.Str
	case TagInteger:
		return a.Int == b.Int
	case TagFloat:
		return a.Num == b.Num
	case TagBoolean:
		return a.Bool == b.Bool
	case TagList:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case TagMap:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			other, ok := b.Get(a.Entries[i].Key)
			if !ok || !Equal(a.Entries[i].Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

// Release recursively releases v and every Value it owns, exactly once.
// The tree must not be used afterward; releasing a tree twice, or a tree the
// caller does not own, is undefined.
func (v *Value) Release() {
	if v == nil {
		return
	}
	for _, item := range v.Items {
		item.Release()
	}
	for i := range v.Entries {
		v.Entries[i].Value.Release()
	}
	*v = Value{}
}

// String renders a short debug representation. Use the generator package for
// canonical text output.
func (v *Value) String() string {
	switch v.Tag {
	case TagNull:
		return "null"
	case TagString:
		return strconv.Quote(v.Str)
	case TagInteger:
		return strconv.FormatInt(v.Int, 10)
	case TagFloat:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case TagBoolean:
		return strconv.FormatBool(v.Bool)
	case TagList:
		return fmt.Sprintf("<list len=%d>", len(v.Items))
	case TagMap:
		return fmt.Sprintf("<map len=%d>", len(v.Entries))
	}
	return "<unknown>"
}
