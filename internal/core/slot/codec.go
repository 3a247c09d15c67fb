package slot

import "encoding/json"

// Codec converts slot values to and from the string form kept in a medium.
type Codec[T any] interface {
	Encode(v T) (string, error)
	Decode(raw string) (T, error)
}

// JSONCodec encodes values with encoding/json.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (JSONCodec[T]) Decode(raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, err
	}
	return v, nil
}
