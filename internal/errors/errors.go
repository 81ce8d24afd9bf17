package errors

import "errors"

// Setting errors indicate a problem with a setting name or value.
var (
	// ErrSettingNotFound indicates no catalog has a setting with the given name.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidValue indicates a setting value is not an integer.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrValueOutOfRange indicates a setting value lies outside its [min, max] range.
	ErrValueOutOfRange = errors.New("setting value out of range")
)

// Input errors indicate issues with input bindings.
var (
	// ErrBindingNotFound indicates the section/key pair has no binding.
	ErrBindingNotFound = errors.New("input binding not found")

	// ErrInvalidBinding indicates a binding key the INI format cannot store, such as an empty one.
	ErrInvalidBinding = errors.New("invalid input binding")
)

// File errors indicate issues with the configuration directory or files.
var (
	// ErrConfigDirUnavailable indicates the configuration directory could not be resolved or created.
	ErrConfigDirUnavailable = errors.New("configuration directory unavailable")
)
