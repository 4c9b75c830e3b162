// Package prefs holds per-user output preferences for frame extraction.
package prefs

import "strings"

// Format is the output image format for an extracted frame.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatWEBP Format = "webp"
)

// DefaultFormat is used when a user never picked a format.
const DefaultFormat = FormatPNG

// Size is the output size mode for an extracted frame.
type Size string

// Supported size modes.
const (
	// SizeOrig keeps the source resolution.
	SizeOrig Size = "orig"
	// Size1024 scales the larger side to 1024 px, the other proportionally.
	Size1024 Size = "1024"
	// Size1024Sq produces an exact 1024x1024 center-cropped square.
	Size1024Sq Size = "1024sq"
)

// DefaultSize is used when a user never picked a size mode.
const DefaultSize = SizeOrig

// NormalizeFormat maps arbitrary input to a supported Format.
// Matching is case-insensitive, "jpeg" is an alias for "jpg", and
// anything unrecognized falls back to PNG.
func NormalizeFormat(raw string) Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "jpg", "jpeg":
		return FormatJPG
	case "webp":
		return FormatWEBP
	default:
		return FormatPNG
	}
}

// NormalizeSize maps arbitrary input to a supported Size.
// Matching is case-insensitive; anything unrecognized falls back to orig.
func NormalizeSize(raw string) Size {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1024":
		return Size1024
	case "1024sq":
		return Size1024Sq
	default:
		return SizeOrig
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}
