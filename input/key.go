package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrUnknownKey = errors.New("input: unknown key name")

// Key is a backend-independent key identity. Printable keys use their
// lowercase rune; named keys live in the Unicode private use area.
type Key int32

const (
	KeyNone  Key = 0
	KeySpace Key = ' '
)

const (
	KeyEscape Key = 0xE000 + iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyTab
)

var namedKeys = map[string]Key{
	"none":   KeyNone,
	"space":  KeySpace,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"up":     KeyArrowUp,
	"down":   KeyArrowDown,
	"left":   KeyArrowLeft,
	"right":  KeyArrowRight,
	"enter":  KeyEnter,
	"tab":    KeyTab,
}

// RuneKey maps a printable rune to its key, folding case.
func RuneKey(r rune) Key {
	return Key(unicode.ToLower(r))
}

// ParseKey accepts a single printable character or a key name such as
// "escape" or "up".
func ParseKey(name string) (Key, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return KeyNone, fmt.Errorf("%w: empty", ErrUnknownKey)
	}
	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if unicode.IsPrint(r) {
			return RuneKey(r), nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func (k Key) String() string {
	for name, v := range namedKeys {
		if v == k && name != "esc" {
			return name
		}
	}
	if k == KeyNone {
		return "none"
	}
	return string(rune(k))
}

// UnmarshalText lets keys be written by name in config files.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
