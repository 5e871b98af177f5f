package config

//go:generate go tool go-enum --nocase --marshal

// Specification of picture slide image resizing mode.
// ENUM(none, keepAR, stretch)
type ImageResizeMode int
