package store

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec turns the full contact sequence into bytes and back. The
// store never looks inside the encoding, so the on-disk format can be
// swapped without touching store logic.
type Codec interface {
	Name() string
	Encode(contacts []Contact) ([]byte, error)
	Decode(data []byte) ([]Contact, error)
}

// ForFormat maps a config format name to its codec.
func ForFormat(name string) (Codec, error) {
	switch name {
	case "", "pipe":
		return PipeCodec{}, nil
	case "yaml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown contacts format %q (must be pipe or yaml)", name)
	}
}

// PipeCodec is the default flat-text format: one record per line,
// three fields joined by '|'.
//
//	<id>|<name>|<phone>
//
// The format has no escaping, so Encode refuses fields that contain
// the delimiter or a newline rather than write a line the loader
// would mangle. Decode is tolerant the other way: malformed lines are
// skipped silently so one bad record never loses the whole file.
type PipeCodec struct{}

func (PipeCodec) Name() string { return "pipe" }

func (PipeCodec) Encode(contacts []Contact) ([]byte, error) {
	var b strings.Builder
	for _, c := range contacts {
		if strings.ContainsAny(c.Name, "|\n") || strings.ContainsAny(c.Phone, "|\n") {
			return nil, fmt.Errorf("contact %d: field contains '|' or newline, not representable in pipe format", c.ID)
		}
		fmt.Fprintf(&b, "%d|%s|%s\n", c.ID, c.Name, c.Phone)
	}
	return []byte(b.String()), nil
}

func (PipeCodec) Decode(data []byte) ([]Contact, error) {
	var contacts []Contact

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue // skip malformed line
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil || id < 0 {
			continue
		}

		contacts = append(contacts, Contact{ID: id, Name: parts[1], Phone: parts[2]})
	}

	return contacts, scanner.Err()
}

// YAMLCodec stores the sequence as a YAML list. Unlike the pipe
// format it round-trips arbitrary field text, but a malformed
// document fails the whole decode — structured formats are not
// line-tolerant.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(contacts []Contact) ([]byte, error) {
	return yaml.Marshal(contacts)
}

func (YAMLCodec) Decode(data []byte) ([]Contact, error) {
	var contacts []Contact
	if err := yaml.Unmarshal(data, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
