package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/pkg/fileutil"
)

const delimiter = "---"

// ErrUnterminated is returned when the opening delimiter has no match.
var ErrUnterminated = errors.New("missing closing frontmatter delimiter")

// Header holds the fields shared by agent and skill files.
type Header struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseHeader decodes the header of r into matter. It reports whether a
// header was present; a file without one leaves matter untouched.
func ParseHeader(r io.Reader, matter any) (bool, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return false, errors.Wrap(scanner.Err(), "reading frontmatter")
	}
	first := strings.TrimPrefix(scanner.Text(), "\ufeff")
	if strings.TrimSpace(first) != delimiter {
		return false, nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == delimiter {
			if err := yaml.Unmarshal(buf.Bytes(), matter); err != nil {
				return true, errors.Wrap(err, "decoding frontmatter")
			}
			return true, nil
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return true, errors.Wrap(err, "reading frontmatter")
	}
	return true, ErrUnterminated
}

// ReadHeader returns the header of the markdown file at path. The file is
// read through fileutil's size limit.
func ReadHeader(path string) (Header, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Header{}, errors.Wrapf(err, "reading header of %s", path)
	}
	if !info.Mode().IsRegular() {
		return Header{}, errors.Newf("%s is not a regular file", path)
	}

	data, err := fileutil.ReadFile(path)
	if err != nil {
		return Header{}, err
	}

	var h Header
	if _, err := ParseHeader(bytes.NewReader(data), &h); err != nil {
		return Header{}, errors.Wrapf(err, "%s", path)
	}
	h.Name = strings.TrimSpace(h.Name)
	h.Description = strings.TrimSpace(h.Description)
	return h, nil
}
