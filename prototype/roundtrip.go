package prototype

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrCloneFailed matches every *CloneError via errors.Is.
var ErrCloneFailed = errors.New("prototype: clone round-trip failed")

// Round-trip steps reported in CloneError.Op.
const (
	OpCreate = "create"
	OpEncode = "encode"
	OpClose  = "close"
	OpOpen   = "open"
	OpDecode = "decode"
)

// CloneError reports which step of a file round-trip failed.
type CloneError struct {
	// Op is one of the Op* constants.
	Op string

	// Path is the scratch file used for the round-trip.
	Path string

	Err error
}

// Error implements the error interface.
func (e *CloneError) Error() string {
	// Example: prototype: clone encode "./a.txt": <cause>
	msg := "prototype: clone " + e.Op + " " + strconv.Quote(e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both ErrCloneFailed and the underlying cause.
func (e *CloneError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCloneFailed}
	}
	return []error{ErrCloneFailed, e.Err}
}

// RoundTrip deep-copies t by encoding its object graph to the file at path and
// decoding a new graph from it. The file is created or truncated, written and
// closed, then reopened, read and closed again. It is left in place.
//
// A nil trophy round-trips to nil without touching the file.
func RoundTrip(path string, t *Trophy) (*Trophy, error) {
	if t == nil {
		return nil, nil
	}
	if err := writeSnapshot(path, t); err != nil {
		return nil, err
	}
	return readSnapshot(path)
}

// MustRoundTrip is RoundTrip but panics with the *CloneError on failure.
func MustRoundTrip(path string, t *Trophy) *Trophy {
	cp, err := RoundTrip(path, t)
	if err != nil {
		panic(err)
	}
	return cp
}

func writeSnapshot(path string, t *Trophy) error {
	f, err := os.Create(path)
	if err != nil {
		return &CloneError{Op: OpCreate, Path: path, Err: err}
	}

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(t); err != nil {
		_ = f.Close()
		return &CloneError{Op: OpEncode, Path: path, Err: err}
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return &CloneError{Op: OpEncode, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &CloneError{Op: OpClose, Path: path, Err: err}
	}
	return nil
}

func readSnapshot(path string) (*Trophy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CloneError{Op: OpOpen, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var out Trophy
	if err := yaml.NewDecoder(f).Decode(&out); err != nil {
		return nil, &CloneError{Op: OpDecode, Path: path, Err: err}
	}
	return &out, nil
}
