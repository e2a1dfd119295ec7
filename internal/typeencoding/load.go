package typeencoding

import (
	"fmt"
	"io"

	"github.com/funvibe/funbit/pkg/funbit"
)

// LoadType reads one type from r in the format written by Save. It reads
// byte-for-byte rather than against a length-prefixed buffer, so each
// fixed-width field is matched against just the bytes it occupies.
func LoadType(r io.Reader) (Type, error) {
	tag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagInt:
		width, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		return Int{Width: uint16(width)}, nil
	case TagUInt:
		width, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		return UInt{Width: uint16(width)}, nil
	case TagF16:
		return F16{}, nil
	case TagF32:
		return F32{}, nil
	case TagF64:
		return F64{}, nil
	case TagF128:
		return F128{}, nil
	case TagNull:
		return Null{}, nil
	case TagPointer:
		mut, err := readBool(r)
		if err != nil {
			return nil, err
		}
		inner, err := LoadType(r)
		if err != nil {
			return nil, err
		}
		return Pointer{Inner: inner, Mut: mut}, nil
	case TagReference:
		mut, err := readBool(r)
		if err != nil {
			return nil, err
		}
		inner, err := LoadType(r)
		if err != nil {
			return nil, err
		}
		return Reference{Inner: inner, Mut: mut}, nil
	case TagBorrow:
		inner, err := LoadType(r)
		if err != nil {
			return nil, err
		}
		return Borrow{Inner: inner}, nil
	case TagArray:
		hasLen, err := readBool(r)
		if err != nil {
			return nil, err
		}
		n, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		inner, err := LoadType(r)
		if err != nil {
			return nil, err
		}
		var length *uint64
		if hasLen {
			length = &n
		}
		return Array{Inner: inner, Length: length}, nil
	case TagFunction:
		count, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		ret, err := LoadType(r)
		if err != nil {
			return nil, err
		}
		params := make([]Param, 0, count)
		for i := uint64(0); i < count; i++ {
			pt, err := LoadType(r)
			if err != nil {
				return nil, err
			}
			isConst, err := readBool(r)
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Type: pt, Const: isConst})
		}
		return Function{Return: ret, Params: params}, nil
	default:
		return nil, fmt.Errorf("typeencoding: read type value expecting tag in 1..=12, got %d", tag)
	}
}

func readTag(r io.Reader) (Tag, error) {
	v, err := readUint(r, 1, 8)
	if err != nil {
		return 0, err
	}
	return Tag(v), nil
}

func readBool(r io.Reader) (bool, error) {
	v, err := readUint(r, 1, 8)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func readUint64(r io.Reader) (uint64, error) {
	return readUint(r, 8, 64)
}

// readUint reads nBytes from r and decodes it as a bitSize-wide big-endian
// unsigned integer via a funbit matcher.
func readUint(r io.Reader, nBytes int, bitSize uint) (uint64, error) {
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	m := funbit.NewMatcher()
	var v uint64
	funbit.Integer(m, &v, funbit.WithSize(bitSize))
	if _, err := funbit.Match(m, funbit.NewBitStringFromBytes(buf)); err != nil {
		return 0, fmt.Errorf("typeencoding: %w", err)
	}
	return v, nil
}
