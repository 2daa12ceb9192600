package object

import (
	"fmt"
	"strings"
)

// Str is an immutable UTF-8 string.
type Str struct {
	id  int64
	val string
}

func NewStr(v string) *Str {
	trackAlloc("Str")
	return &Str{id: NextID(), val: v}
}

func (s *Str) Cls() string   { return "Str" }
func (s *Str) Id() int64     { return s.id }
func (s *Str) Truthy() bool  { return s.val != "" }
func (s *Str) Val() string   { return s.val }
func (s *Str) Str() string   { return s.val }
func (s *Str) Rep() string   { return fmt.Sprintf("%q", s.val) }
func (s *Str) Copy() Value   { return s }
func (s *Str) Len() int64    { return int64(len([]rune(s.val))) }

func (s *Str) Equals(other Value) bool {
	o, ok := other.(*Str)
	return ok && s.val == o.val
}

func (s *Str) Compare(other Value) (int, bool) {
	o, ok := other.(*Str)
	if !ok {
		return 0, false
	}
	return strings.Compare(s.val, o.val), true
}

func (s *Str) GetIndex(index Value) (Value, error) {
	i, ok := index.(*Int)
	if !ok {
		return nil, Raise(TypeErr, "string index must be Int")
	}
	runes := []rune(s.val)
	idx := i.val
	if idx < 0 {
		idx += int64(len(runes))
	}
	if idx < 0 || idx >= int64(len(runes)) {
		return nil, Raise(IndexErr, "string index out of range")
	}
	return NewStr(string(runes[idx])), nil
}

func (s *Str) SetIndex(index Value, val Value) error {
	return Raise(TypeErr, "Str is immutable")
}

type strIterator struct {
	runes []rune
	pos   int
}

func (it *strIterator) Next() (Value, bool) {
	if it.pos >= len(it.runes) {
		return nil, false
	}
	r := it.runes[it.pos]
	it.pos++
	return NewStr(string(r)), true
}

func (s *Str) Iterate() Iterator { return &strIterator{runes: []rune(s.val)} }

// Bytes is an immutable byte vector.
type Bytes struct {
	id  int64
	val []byte
}

func NewBytes(v []byte) *Bytes {
	trackAlloc("Bytes")
	return &Bytes{id: NextID(), val: v}
}

func (b *Bytes) Cls() string  { return "Bytes" }
func (b *Bytes) Id() int64    { return b.id }
func (b *Bytes) Truthy() bool { return len(b.val) != 0 }
func (b *Bytes) Val() []byte  { return b.val }
func (b *Bytes) Str() string  { return string(b.val) }

func (b *Bytes) Rep() string {
	var sb strings.Builder
	sb.WriteString(`b"`)
	for _, c := range b.val {
		fmt.Fprintf(&sb, `\x%02x`, c)
	}
	sb.WriteString(`"`)
	return sb.String()
}

func (b *Bytes) Copy() Value {
	cp := make([]byte, len(b.val))
	copy(cp, b.val)
	return NewBytes(cp)
}

func (b *Bytes) Len() int64 { return int64(len(b.val)) }

func (b *Bytes) Equals(other Value) bool {
	o, ok := other.(*Bytes)
	if !ok || len(o.val) != len(b.val) {
		return false
	}
	for i := range b.val {
		if b.val[i] != o.val[i] {
			return false
		}
	}
	return true
}

func (b *Bytes) GetIndex(index Value) (Value, error) {
	i, ok := index.(*Int)
	if !ok {
		return nil, Raise(TypeErr, "bytes index must be Int")
	}
	idx := i.val
	if idx < 0 {
		idx += int64(len(b.val))
	}
	if idx < 0 || idx >= int64(len(b.val)) {
		return nil, Raise(IndexErr, "bytes index out of range")
	}
	return NewInt(int64(b.val[idx])), nil
}

func (b *Bytes) SetIndex(index Value, val Value) error {
	return Raise(TypeErr, "Bytes is immutable")
}
