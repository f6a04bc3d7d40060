package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
)

// FilePart is one file of a multipart upload.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Upload posts a multipart form. The body is assembled in memory so a retry
// sends the same bytes again.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, files []FilePart) (*Response, error) {
	body, contentType, err := buildMultipart(fields, files)
	if err != nil {
		return nil, &APIError{Err: err}
	}

	req := c.rc.R().
		SetHeader("Content-Type", contentType).
		SetBody(body)
	resp, err := c.send(ctx, req, http.MethodPost, path)
	if err != nil {
		return nil, err
	}
	shape, payload, pg := Unwrap(resp.Body)
	resp.Shape, resp.Payload, resp.Pagination = shape, payload, pg
	return resp, nil
}

func buildMultipart(fields map[string]string, files []FilePart) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", err
		}
	}

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Filename)))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
