package domain

import (
	"errors"
	"strings"
)

type Color string

const (
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
	ColorRandom Color = "random"
)

type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

type Kind string

const (
	KindRoom Kind = "room"
	KindUser Kind = "user"
)

const (
	DefaultColor  = ColorYellow
	DefaultFormat = FormatHTML

	MaxMessageLength = 10000
	MaxLabelLength   = 64
)

var (
	ErrEmptyTarget   = errors.New("target is required")
	ErrEmptyMessage  = errors.New("message must be 1-10000 characters")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidFormat = errors.New("invalid message format")
	ErrInvalidKind   = errors.New("invalid target kind")
)

func IsValidColor(value Color) bool {
	switch value {
	case ColorYellow, ColorGreen, ColorRed, ColorPurple, ColorGray, ColorRandom:
		return true
	default:
		return false
	}
}

func IsValidFormat(value Format) bool {
	switch value {
	case FormatHTML, FormatText:
		return true
	default:
		return false
	}
}

func IsValidKind(value Kind) bool {
	switch value {
	case KindRoom, KindUser:
		return true
	default:
		return false
	}
}

// ParseColor accepts the UK spelling "grey" as an alias of gray. An empty value
// yields the default color.
func ParseColor(value string) (Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		return DefaultColor, nil
	case "grey":
		return ColorGray, nil
	}
	c := Color(value)
	if !IsValidColor(c) {
		return "", ErrInvalidColor
	}
	return c, nil
}

// ParseFormat yields the default format for an empty value.
func ParseFormat(value string) (Format, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DefaultFormat, nil
	}
	f := Format(value)
	if !IsValidFormat(f) {
		return "", ErrInvalidFormat
	}
	return f, nil
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
