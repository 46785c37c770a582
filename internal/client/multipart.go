package client

import (
	"bytes"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/sahyog-app/sahyog/internal/model"
)

// multipartBody assembles a multipart/form-data payload for the upload
// endpoints. Non-file fields are stringified; boolean fields are
// serialized as the literal strings "true"/"false", which is what the
// backend's form parser expects.
type multipartBody struct {
	buf *bytes.Buffer
	w   *multipart.Writer
	err error
}

func newMultipartBody() *multipartBody {
	buf := &bytes.Buffer{}
	return &multipartBody{buf: buf, w: multipart.NewWriter(buf)}
}

// field writes a string field, omitting empty values.
func (m *multipartBody) field(name, value string) *multipartBody {
	if m.err != nil || value == "" {
		return m
	}
	m.err = m.w.WriteField(name, value)
	return m
}

// boolField always writes the field, as "true" or "false".
func (m *multipartBody) boolField(name string, value bool) *multipartBody {
	if m.err != nil {
		return m
	}
	m.err = m.w.WriteField(name, strconv.FormatBool(value))
	return m
}

// file writes a file part. A nil content slice is skipped.
func (m *multipartBody) file(name, filename string, content []byte) *multipartBody {
	if m.err != nil || content == nil {
		return m
	}
	part, err := m.w.CreateFormFile(name, filename)
	if err != nil {
		m.err = err
		return m
	}
	_, m.err = part.Write(content)
	return m
}

// finish closes the writer and returns the body reader with its content
// type. Any accumulated write error surfaces as a validation error since
// nothing reached the network.
func (m *multipartBody) finish() (io.Reader, string, error) {
	if m.err == nil {
		m.err = m.w.Close()
	}
	if m.err != nil {
		return nil, "", model.NewValidationError([]model.FieldError{{Field: "body", Message: m.err.Error()}})
	}
	return m.buf, m.w.FormDataContentType(), nil
}
