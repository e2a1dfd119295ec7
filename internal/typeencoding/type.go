// Package typeencoding provides a byte-tagged on-disk representation for
// resolved Cobalt types, for use by later compiler phases that need to
// persist a type alongside a symbol without re-deriving it from source.
package typeencoding

import (
	"fmt"
	"io"

	"github.com/funvibe/funbit/pkg/funbit"
)

// Tag identifies which Type variant follows in the serialized form.
type Tag uint8

const (
	TagInt       Tag = 1
	TagUInt      Tag = 2
	TagF16       Tag = 3
	TagF32       Tag = 4
	TagF64       Tag = 5
	TagF128      Tag = 6
	TagNull      Tag = 7
	TagPointer   Tag = 8
	TagReference Tag = 9
	TagBorrow    Tag = 10
	TagArray     Tag = 11
	TagFunction  Tag = 12
)

// Type is the sum type of resolved Cobalt types that can round-trip
// through Save/LoadType.
type Type interface {
	String() string
	save(b *funbit.Builder) error
}

// Int is a signed integer of the given bit width.
type Int struct{ Width uint16 }

// UInt is an unsigned integer of the given bit width.
type UInt struct{ Width uint16 }

type (
	F16  struct{}
	F32  struct{}
	F64  struct{}
	F128 struct{}
	Null struct{}
)

// Pointer is `*mut T` / `*T`.
type Pointer struct {
	Inner Type
	Mut   bool
}

// Reference is `&mut T` / `&T`.
type Reference struct {
	Inner Type
	Mut   bool
}

// Borrow is `^T`.
type Borrow struct{ Inner Type }

// Array is `T[n]` (Length == nil means an unsized `T[]`).
type Array struct {
	Inner  Type
	Length *uint64
}

// Param is one parameter of a Function type.
type Param struct {
	Type  Type
	Const bool
}

// Function is `fn (params...): ret`.
type Function struct {
	Return Type
	Params []Param
}

func (Int) String() string       { return "" }
func (UInt) String() string      { return "" }
func (F16) String() string       { return "f16" }
func (F32) String() string       { return "f32" }
func (F64) String() string       { return "f64" }
func (F128) String() string      { return "f128" }
func (Null) String() string      { return "null" }
func (Pointer) String() string   { return "" }
func (Reference) String() string { return "" }
func (Borrow) String() string    { return "" }
func (Array) String() string     { return "" }
func (Function) String() string  { return "" }

func (t Int) StringWidth() string  { return fmt.Sprintf("i%d", t.Width) }
func (t UInt) StringWidth() string { return fmt.Sprintf("u%d", t.Width) }

// Save writes t's byte-tagged encoding to w. The tag byte and every
// fixed-width field are packed with funbit rather than raw binary.Write,
// matching how the rest of the retrieved pack builds on-wire values.
func (t Int) Save(w io.Writer) error       { return save(w, t) }
func (t UInt) Save(w io.Writer) error      { return save(w, t) }
func (t F16) Save(w io.Writer) error       { return save(w, t) }
func (t F32) Save(w io.Writer) error       { return save(w, t) }
func (t F64) Save(w io.Writer) error       { return save(w, t) }
func (t F128) Save(w io.Writer) error      { return save(w, t) }
func (t Null) Save(w io.Writer) error      { return save(w, t) }
func (t Pointer) Save(w io.Writer) error   { return save(w, t) }
func (t Reference) Save(w io.Writer) error { return save(w, t) }
func (t Borrow) Save(w io.Writer) error    { return save(w, t) }
func (t Array) Save(w io.Writer) error     { return save(w, t) }
func (t Function) Save(w io.Writer) error  { return save(w, t) }

func save(w io.Writer, t Type) error {
	b := funbit.NewBuilder()
	if err := t.save(b); err != nil {
		return err
	}
	bs, err := funbit.Build(b)
	if err != nil {
		return fmt.Errorf("typeencoding: %w", err)
	}
	_, err = w.Write(bs.ToBytes())
	return err
}

// tagByte appends a single-byte tag segment to b.
func tagByte(b *funbit.Builder, tag Tag) {
	funbit.AddInteger(b, uint(tag), funbit.WithSize(8))
}

func (t Int) save(b *funbit.Builder) error {
	tagByte(b, TagInt)
	funbit.AddInteger(b, uint(t.Width), funbit.WithSize(64))
	return nil
}

func (t UInt) save(b *funbit.Builder) error {
	tagByte(b, TagUInt)
	funbit.AddInteger(b, uint(t.Width), funbit.WithSize(64))
	return nil
}

func (F16) save(b *funbit.Builder) error  { tagByte(b, TagF16); return nil }
func (F32) save(b *funbit.Builder) error  { tagByte(b, TagF32); return nil }
func (F64) save(b *funbit.Builder) error  { tagByte(b, TagF64); return nil }
func (F128) save(b *funbit.Builder) error { tagByte(b, TagF128); return nil }
func (Null) save(b *funbit.Builder) error { tagByte(b, TagNull); return nil }

func (t Pointer) save(b *funbit.Builder) error {
	tagByte(b, TagPointer)
	funbit.AddInteger(b, boolBit(t.Mut), funbit.WithSize(8))
	return appendChild(b, t.Inner)
}

func (t Reference) save(b *funbit.Builder) error {
	tagByte(b, TagReference)
	funbit.AddInteger(b, boolBit(t.Mut), funbit.WithSize(8))
	return appendChild(b, t.Inner)
}

func (t Borrow) save(b *funbit.Builder) error {
	tagByte(b, TagBorrow)
	return appendChild(b, t.Inner)
}

func (t Array) save(b *funbit.Builder) error {
	tagByte(b, TagArray)
	if t.Length == nil {
		funbit.AddInteger(b, uint(0), funbit.WithSize(8))
		funbit.AddInteger(b, uint(0), funbit.WithSize(64))
	} else {
		funbit.AddInteger(b, uint(1), funbit.WithSize(8))
		funbit.AddInteger(b, *t.Length, funbit.WithSize(64))
	}
	return appendChild(b, t.Inner)
}

func (t Function) save(b *funbit.Builder) error {
	tagByte(b, TagFunction)
	funbit.AddInteger(b, uint(len(t.Params)), funbit.WithSize(64))
	if err := appendChild(b, t.Return); err != nil {
		return err
	}
	for _, p := range t.Params {
		if err := appendChild(b, p.Type); err != nil {
			return err
		}
		funbit.AddInteger(b, boolBit(p.Const), funbit.WithSize(8))
	}
	return nil
}

// appendChild encodes inner as its own tagged buffer and splices the
// resulting bytes into b as a binary segment, so LoadType can recurse by
// reading byte-for-byte from the same stream without needing a
// length-prefixed sub-message.
func appendChild(b *funbit.Builder, inner Type) error {
	child := funbit.NewBuilder()
	if err := inner.save(child); err != nil {
		return err
	}
	bs, err := funbit.Build(child)
	if err != nil {
		return fmt.Errorf("typeencoding: %w", err)
	}
	funbit.AddBinary(b, bs.ToBytes())
	return nil
}

func boolBit(v bool) uint {
	if v {
		return 1
	}
	return 0
}
