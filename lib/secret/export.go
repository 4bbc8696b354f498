// Copyright 2026 The Strongbox Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/strongboxdev/strongbox/lib/codec"
)

// SerializableInner marks an inner type as explicitly allowed to pass
// through generic serialization as a raw secret. The library attaches
// it to ExportableBytes, ExportableText, and ExportableArray, and to
// nothing else; attaching it to another type is a user decision made
// by implementing SerializableSecret at one reviewable site.
//
// Containers implement json and cbor marshaling but refuse with
// ErrNotExportable unless the inner type carries this marker.
type SerializableInner interface {
	// SerializableSecret is a marker method with no behavior.
	SerializableSecret()
}

// textDecoder is the pluggable decoder for textual wire forms of
// exportable byte secrets. lib/armor registers its multi-format
// decoder here from init; without it, textual fields decode as
// standard base64, the natural JSON form of a byte slice.
var textDecoder func(text []byte) ([]byte, error)

// RegisterTextDecoder installs the decoder used when an exportable
// byte secret is deserialized from a textual wire field. Called from
// package init (lib/armor); not safe for concurrent use with
// deserialization.
func RegisterTextDecoder(decode func(text []byte) ([]byte, error)) {
	textDecoder = decode
}

func decodeTextField(text []byte) ([]byte, error) {
	if textDecoder != nil {
		return textDecoder(text)
	}
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(decoded, text)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 secret field: %w", err)
	}
	return decoded[:n], nil
}

// isSerializable reports whether T carries the SerializableInner
// marker. The check is on the value form: marker methods use value
// receivers so the zero value is enough to answer.
func isSerializable[T any]() bool {
	var zero T
	_, ok := any(zero).(SerializableInner)
	return ok
}

// MarshalJSON serializes the inner value in its natural JSON form,
// or refuses with ErrNotExportable when T lacks the marker.
func (f *Fixed[T]) MarshalJSON() ([]byte, error) {
	if !isSerializable[T]() {
		return nil, ErrNotExportable
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON fills the container from the inner value's natural
// JSON form, subject to the same marker requirement.
func (f *Fixed[T]) UnmarshalJSON(data []byte) error {
	if !isSerializable[T]() {
		return ErrNotExportable
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalCBOR serializes the inner value through lib/codec, subject
// to the marker requirement.
func (f *Fixed[T]) MarshalCBOR() ([]byte, error) {
	if !isSerializable[T]() {
		return nil, ErrNotExportable
	}
	return codec.Marshal(f.value)
}

// UnmarshalCBOR fills the container from CBOR, subject to the marker
// requirement.
func (f *Fixed[T]) UnmarshalCBOR(data []byte) error {
	if !isSerializable[T]() {
		return ErrNotExportable
	}
	return codec.Unmarshal(data, &f.value)
}

// MarshalJSON serializes the inner value in its natural JSON form,
// or refuses with ErrNotExportable when T lacks the marker.
func (d *Dynamic[T]) MarshalJSON() ([]byte, error) {
	if !isSerializable[T]() {
		return nil, ErrNotExportable
	}
	return json.Marshal(d.Expose())
}

// UnmarshalJSON fills the container, subject to the marker
// requirement. A JSON string filling an exportable byte secret is
// interpreted by the registered text decoder (multi-format when
// lib/armor is linked in, standard base64 otherwise).
func (d *Dynamic[T]) UnmarshalJSON(data []byte) error {
	if !isSerializable[T]() {
		return ErrNotExportable
	}
	value := d.Expose()
	if target, ok := any(value).(*ExportableBytes); ok && len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		decoded, err := decodeTextField([]byte(text))
		if err != nil {
			return err
		}
		*target = ExportableBytes(decoded)
		return nil
	}
	return json.Unmarshal(data, value)
}

// MarshalCBOR serializes the inner value through lib/codec, subject
// to the marker requirement.
func (d *Dynamic[T]) MarshalCBOR() ([]byte, error) {
	if !isSerializable[T]() {
		return nil, ErrNotExportable
	}
	return codec.Marshal(d.Expose())
}

// UnmarshalCBOR fills the container, subject to the marker
// requirement. A CBOR text string filling an exportable byte secret
// goes through the registered text decoder, mirroring UnmarshalJSON.
func (d *Dynamic[T]) UnmarshalCBOR(data []byte) error {
	if !isSerializable[T]() {
		return ErrNotExportable
	}
	value := d.Expose()
	if target, ok := any(value).(*ExportableBytes); ok {
		if err := codec.Unmarshal(data, target); err == nil {
			return nil
		}
		var text string
		if err := codec.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decoding exportable byte secret: %w", err)
		}
		decoded, err := decodeTextField([]byte(text))
		if err != nil {
			return err
		}
		*target = ExportableBytes(decoded)
		return nil
	}
	return codec.Unmarshal(data, value)
}

// ExportableBytes is a byte buffer carrying the serialization marker.
// Its wire forms are the natural ones for a byte slice: base64 in
// JSON, a byte string in CBOR.
type ExportableBytes []byte

// SerializableSecret marks the type; no behavior.
func (ExportableBytes) SerializableSecret() {}

// Wipe zeros the buffer over its full backing capacity.
func (b *ExportableBytes) Wipe() {
	Zero((*b)[:cap(*b)])
}

// ExportableText is a text buffer carrying the serialization marker.
// It serializes as a plain string in both JSON and CBOR via the
// encoding.TextMarshaler bridge.
type ExportableText []byte

// SerializableSecret marks the type; no behavior.
func (ExportableText) SerializableSecret() {}

// MarshalText returns a copy of the text.
func (t ExportableText) MarshalText() ([]byte, error) {
	return append([]byte(nil), t...), nil
}

// UnmarshalText replaces the text with a copy of data.
func (t *ExportableText) UnmarshalText(data []byte) error {
	*t = append((*t)[:0], data...)
	return nil
}

// Wipe zeros the text over its full backing capacity.
func (t *ExportableText) Wipe() {
	Zero((*t)[:cap(*t)])
}

// ExposeString returns the text as an immutable heap string; see
// Text.ExposeString for the lifecycle caveat.
func (t *ExportableText) ExposeString() string {
	return string(*t)
}

// ExportableArray wraps a byte array inner type with the
// serialization marker. Wire forms delegate to the array itself.
type ExportableArray[A any] struct {
	Value A
}

// SerializableSecret marks the type; no behavior.
func (ExportableArray[A]) SerializableSecret() {}

// MarshalJSON serializes the wrapped array directly.
func (a ExportableArray[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value)
}

// UnmarshalJSON fills the wrapped array directly.
func (a *ExportableArray[A]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.Value)
}

// MarshalCBOR serializes the wrapped array directly.
func (a ExportableArray[A]) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(a.Value)
}

// UnmarshalCBOR fills the wrapped array directly.
func (a *ExportableArray[A]) UnmarshalCBOR(data []byte) error {
	return codec.Unmarshal(data, &a.Value)
}

// Wipe zeros the array. Panics if A is not a byte array.
func (a *ExportableArray[A]) Wipe() {
	Zero(mustByteView(&a.Value, "ExportableArray.Wipe"))
}
