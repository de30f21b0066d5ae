package nd

// Materialization converts any StructureND into a canonical (row-major) BufferND.
//
// The decision to skip copying is explicit:
//  1. a *BufferND with a row-major indexer is returned as is;
//  2. a structure implementing CanonicalBuffered that reports ok is wrapped
//     without copying (the result shares storage with the source);
//  3. anything else is copied element by element in canonical offset order.

// ToBufferND materializes s. It never mutates s.
func ToBufferND[T any](s StructureND[T]) (*BufferND[T], error) {
	if b, ok := s.(*BufferND[T]); ok && b.indexer.Canonical() {
		return b, nil
	}
	if cb, ok := s.(CanonicalBuffered[T]); ok {
		if buf, ok := cb.CanonicalBuffer(); ok {
			indexer, err := RowMajor(s.Shape())
			if err != nil {
				return nil, err
			}
			return NewBufferND(indexer, buf)
		}
	}
	return Copy(s)
}

// Copy always produces a fresh row-major BufferND with the elements of s.
func Copy[T any](s StructureND[T]) (*BufferND[T], error) {
	indexer, err := RowMajor(s.Shape())
	if err != nil {
		return nil, err
	}

	if b, ok := s.(*BufferND[T]); ok {
		// Same backing layout known: read offsets directly.
		data := make([]T, indexer.LinearSize())
		i := 0
		for index := range indexer.Indices() {
			offset, err := b.indexer.Offset(index...)
			if err != nil {
				return nil, err
			}
			if data[i], err = b.buffer.Get(offset); err != nil {
				return nil, err
			}
			i++
		}
		return &BufferND[T]{indexer: indexer, buffer: WrapBuffer(data)}, nil
	}

	data := make([]T, indexer.LinearSize())
	i := 0
	for index := range indexer.Indices() {
		v, err := s.Get(index...)
		if err != nil {
			return nil, err
		}
		data[i] = v
		i++
	}
	return &BufferND[T]{indexer: indexer, buffer: WrapBuffer(data)}, nil
}

// ArrayOf returns the canonical flat elements of s.
//
// The slice aliases s when s is a canonical BufferND over an ArrayBuffer;
// callers that write to it must own s.
func ArrayOf[T any](s StructureND[T]) ([]T, error) {
	b, err := ToBufferND(s)
	if err != nil {
		return nil, err
	}
	return arrayOf(b.buffer)
}

// Wrap creates a row-major BufferND over data without copying.
func Wrap[T any](shape Shape, data []T) (*BufferND[T], error) {
	indexer, err := RowMajor(shape)
	if err != nil {
		return nil, err
	}
	return NewBufferND[T](indexer, WrapBuffer(data))
}
