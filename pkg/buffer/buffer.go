package buffer

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"reflect"
	"time"

	"github.com/kamrankamilli/vncview/pkg/config"
)

// ReadWriter is a buffered big-endian cursor over an RFB connection.
//
// Writes are synchronous: the session loop depends on queued input reaching
// the server strictly before the update request that follows it, so messages
// are staged in the bufio writer and pushed out by an explicit Flush. Every
// read and write arms a deadline on the underlying connection, keeping a
// session blocked on a silent server cancellable in bounded time.
type ReadWriter struct {
	c  net.Conn
	br *bufio.Reader
	bw *bufio.Writer

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewReadWriteBuffer returns a new ReadWriter for the given connection, with
// deadlines taken from package config.
func NewReadWriteBuffer(c net.Conn) *ReadWriter {
	return &ReadWriter{
		c:            c,
		br:           bufio.NewReader(c),
		bw:           bufio.NewWriterSize(c, 64<<10),
		readTimeout:  config.ReadTimeout,
		writeTimeout: config.WriteTimeout,
	}
}

// SetTimeouts overrides the per-operation deadlines. Zero disables a deadline.
func (rw *ReadWriter) SetTimeouts(read, write time.Duration) {
	rw.readTimeout = read
	rw.writeTimeout = write
}

func (rw *ReadWriter) armRead() {
	if rw.readTimeout > 0 {
		_ = rw.c.SetReadDeadline(time.Now().Add(rw.readTimeout))
	}
}

func (rw *ReadWriter) armWrite() {
	if rw.writeTimeout > 0 {
		_ = rw.c.SetWriteDeadline(time.Now().Add(rw.writeTimeout))
	}
}

// ReadByte reads a single byte from the buffer.
func (rw *ReadWriter) ReadByte() (byte, error) {
	rw.armRead()
	b, err := rw.br.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, nil
}

// ReadPadding pops padding off the read buffer of the given size.
func (rw *ReadWriter) ReadPadding(size int) error {
	for i := 0; i < size; i++ {
		if _, err := rw.ReadByte(); err != nil {
			return err
		}
	}
	return nil
}

// Read will read from the buffer into the given interface. Not for structs;
// use ReadInto.
func (rw *ReadWriter) Read(v interface{}) error {
	rw.armRead()
	return binary.Read(rw.br, binary.BigEndian, v)
}

// ReadInto reflects on the given struct and populates its fields from the
// read buffer in declaration order.
func (rw *ReadWriter) ReadInto(data interface{}) error {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("Data is invalid (nil or non-pointer)")
	}
	val := rv.Elem()
	for i := 0; i < val.NumField(); i++ {
		f := val.Field(i)
		if err := rw.Read(f.Addr().Interface()); err != nil {
			return err
		}
	}
	return nil
}

// ReadFull fills p from the read buffer.
func (rw *ReadWriter) ReadFull(p []byte) error {
	rw.armRead()
	_, err := io.ReadFull(rw.br, p)
	return err
}

// Write stages the given value in BigEndian on the write buffer.
func (rw *ReadWriter) Write(v interface{}) error {
	rw.armWrite()
	return binary.Write(rw.bw, binary.BigEndian, v)
}

// WriteBytes stages a packed message on the write buffer.
func (rw *ReadWriter) WriteBytes(p []byte) error {
	rw.armWrite()
	_, err := rw.bw.Write(p)
	return err
}

// Flush pushes the contents of the write buffer to the connection.
func (rw *ReadWriter) Flush() error {
	rw.armWrite()
	return rw.bw.Flush()
}
