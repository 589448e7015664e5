package errors

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Limits on user input.
const (
	MaxContainerSize = 1 << 20
	maxItemName      = 256
	maxPath          = 500
)

// itemName matches names usable as variable prefixes in constraint text.
// "@" is allowed so generated names such as "@unnamed_0" validate.
var itemName = regexp.MustCompile(`^[A-Za-z_@][A-Za-z0-9_@]*$`)

// ValidateItemName checks that name can prefix geometry variables such as
// "A.left": no dots, whitespace or operator characters.
func ValidateItemName(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidLayout, "item name cannot be empty")
	case len(name) > maxItemName:
		return New(ErrCodeInvalidLayout, "item name too long (max %d characters)", maxItemName)
	case !itemName.MatchString(name):
		return New(ErrCodeInvalidLayout, "invalid item name: %q", name).WithDetail("item", name)
	}
	return nil
}

// ValidateSize checks a container or item extent.
func ValidateSize(what string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidSize, "%s cannot be negative: %d", what, v).WithDetail("field", what)
	}
	if v > MaxContainerSize {
		return New(ErrCodeInvalidSize, "%s too large: %d (max %d)", what, v, MaxContainerSize).WithDetail("field", what)
	}
	return nil
}

// ValidatePath rejects empty or overlong paths, control characters and
// ".." path elements.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPath {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPath)
	}
	if strings.IndexFunc(path, unicode.IsControl) >= 0 {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	if slices.Contains(strings.Split(filepath.ToSlash(path), "/"), "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	return nil
}
