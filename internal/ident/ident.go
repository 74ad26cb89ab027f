// Package ident encodes and decodes the opaque identifiers the gateway
// hands to clients. An identifier is "<kind>:<numeric-id>", e.g.
// task:2995104339 or project:2203309130.
//
// Upstream numeric ids are only unique within a kind — a task and a
// project may legally share a number — so the kind tag is what keeps
// them apart.
package ident

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags which upstream collection a numeric id belongs to.
type Kind string

const (
	KindTask    Kind = "task"
	KindProject Kind = "project"
)

// ErrInvalidIdentifier is returned by Decode for any string that is not
// a well-formed "<kind>:<numeric-id>" identifier.
var ErrInvalidIdentifier = errors.New("invalid identifier")

const separator = ":"

// Encode builds the opaque identifier for a kind and upstream id.
func Encode(kind Kind, id int64) string {
	return string(kind) + separator + strconv.FormatInt(id, 10)
}

// Decode splits an identifier back into its kind and numeric id. It
// fails with ErrInvalidIdentifier when the separator is missing, the
// kind tag is unknown, or the suffix is not a non-negative integer.
func Decode(s string) (Kind, int64, error) {
	tag, suffix, found := strings.Cut(s, separator)
	if !found {
		return "", 0, fmt.Errorf("%w: %q has no %q separator", ErrInvalidIdentifier, s, separator)
	}

	kind := Kind(tag)
	if kind != KindTask && kind != KindProject {
		return "", 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidIdentifier, tag)
	}

	// ParseUint rejects signs, whitespace, and empty suffixes outright.
	id, err := strconv.ParseUint(suffix, 10, 63)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q is not a numeric id", ErrInvalidIdentifier, suffix)
	}

	return kind, int64(id), nil
}
