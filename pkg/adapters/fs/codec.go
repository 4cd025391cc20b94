package fs

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/padvault/pad/pkg/core"
)

// frontmatter is the YAML header of a record file. The id is carried by the
// filename, not the header, so renames cannot desynchronize the two.
type frontmatter struct {
	Name      string    `yaml:"name"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// encodeRecord serializes a notepad as YAML frontmatter followed by the
// content body.
func encodeRecord(n core.Notepad) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(frontmatter{
		Name:      n.Name,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// decodeRecord parses a record file back into a notepad.
func decodeRecord(data []byte, id int64) (core.Notepad, error) {
	var rest []byte
	switch {
	case bytes.HasPrefix(data, []byte("---\n")):
		rest = data[4:]
	case bytes.HasPrefix(data, []byte("---\r\n")):
		rest = data[5:]
	default:
		return core.Notepad{}, errors.New("missing frontmatter")
	}

	head, body, ok := splitFence(rest)
	if !ok {
		return core.Notepad{}, errors.New("frontmatter not terminated")
	}

	var fm frontmatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return core.Notepad{}, err
	}

	return core.Notepad{
		ID:        id,
		Name:      fm.Name,
		Content:   string(body),
		CreatedAt: fm.CreatedAt,
		UpdatedAt: fm.UpdatedAt,
	}, nil
}

// splitFence finds the closing fence line and splits the record into the YAML
// header before it and the content after it. The fence must occupy a whole
// line: a "---" embedded in a header value sits mid-line and a multiline
// value is indented by the encoder, so neither can match.
func splitFence(rest []byte) (head, body []byte, ok bool) {
	for off := 0; off < len(rest); {
		end := bytes.IndexByte(rest[off:], '\n')
		if end < 0 {
			return nil, nil, false
		}
		line := bytes.TrimSuffix(rest[off:off+end], []byte("\r"))
		if bytes.Equal(line, []byte("---")) {
			return rest[:off], rest[off+end+1:], true
		}
		off += end + 1
	}
	return nil, nil, false
}

// recordFilename maps an id to its file name inside the pads directory.
func recordFilename(id int64) string {
	return strconv.FormatInt(id, 10) + ".md"
}

// parseRecordFilename extracts the id from a record file name.
// Returns false for anything that is not a record file (temp files,
// strays dropped into the directory by hand).
func parseRecordFilename(name string) (int64, bool) {
	if !strings.HasSuffix(name, ".md") {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSuffix(name, ".md"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
