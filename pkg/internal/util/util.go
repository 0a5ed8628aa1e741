package util

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
)

// PackStruct writes struct fields to buf in declaration order (BigEndian).
func PackStruct(buf io.Writer, data interface{}) error {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("Data is invalid (nil or non-pointer)")
	}
	val := rv.Elem()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		v := field.Interface()
		if err := binary.Write(buf, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// Write writes any value in BigEndian to buf.
func Write(buf io.Writer, v interface{}) error {
	return binary.Write(buf, binary.BigEndian, v)
}

// PackBytes packs a sequence of values into one big-endian byte slice:
// pointers to structs expand field by field, everything else is written
// directly. Outbound messages are built with it so they can be queued as
// bytes. Packing into memory cannot fail, so no error is returned.
func PackBytes(vs ...interface{}) []byte {
	var buf bytes.Buffer
	for _, v := range vs {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr && rv.Elem().Kind() == reflect.Struct {
			_ = PackStruct(&buf, v)
			continue
		}
		_ = Write(&buf, v)
	}
	return buf.Bytes()
}
