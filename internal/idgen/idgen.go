// Package idgen mints the opaque per-install identifiers the client
// registers with the push endpoint as its device token.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Generation parameters. Length 21 matches nanoid's default and keeps
// cross-install collisions out of practical reach; the alphabet is plain
// alphanumerics so tokens survive any transport untouched.
var (
	DefaultPrefix = "hd-"
	Alphabet      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	Length        = 21
)

// Generate returns a new identifier with the default prefix.
func Generate() (string, error) {
	return GenerateWithPrefix(DefaultPrefix)
}

// GenerateWithPrefix returns a new identifier with the given prefix in
// front of the random portion.
func GenerateWithPrefix(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
