package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
)

// EncodeJSON renders the submission as the backend's JSON body: flat root
// fields plus the nested languages map. encoding/json sorts map keys, so the
// output is byte-identical across calls on the same submission.
func (s *Submission) EncodeJSON() ([]byte, error) {
	body := make(map[string]any, len(s.Fields)+1)
	for name, value := range s.Fields {
		body[name] = value
	}
	body["languages"] = s.Languages
	return json.Marshal(body)
}

// EncodeMultipart renders the submission as multipart form data, used when a
// binary attachment rides along. Root fields become form fields in sorted
// order, the languages map is a single JSON-encoded field, and the image is
// a file part. When no image is attached the part is simply absent, so an
// edit submission never clobbers a previously stored attachment reference.
func (s *Submission) EncodeMultipart() ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writer.WriteField(name, s.Fields[name]); err != nil {
			return nil, "", err
		}
	}

	languages, err := json.Marshal(s.Languages)
	if err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("languages", string(languages)); err != nil {
		return nil, "", err
	}

	if s.Image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, s.Image.Filename))
		contentType := s.Image.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(s.Image.Data); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}
