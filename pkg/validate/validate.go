package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// RequiredString validates that a string field is not empty
func RequiredString(value, field string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// OneOf validates that a string is one of the allowed values
func OneOf(value string, allowed []string, field string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value for %s: %s", field, value)
}

// bundleIdentifier allows the characters CFBundleIdentifier accepts, split
// into non-empty dot separated components.
var bundleIdentifier = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*$`)

// BundleIdentifier validates a reverse-DNS bundle identifier such as
// com.ahitool.gui.
func BundleIdentifier(value, field string) error {
	if err := RequiredString(value, field); err != nil {
		return err
	}
	if !bundleIdentifier.MatchString(value) {
		return fmt.Errorf("invalid %s %q: use letters, digits, hyphens and dots (e.g. com.example.app)", field, value)
	}
	return nil
}

var bundleVersion = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,2}$`)

// BundleVersion validates that value is one to three period separated
// integers, the form Launch Services expects for CFBundleVersion.
func BundleVersion(value, field string) error {
	if !bundleVersion.MatchString(value) {
		return fmt.Errorf("%s %q is not one to three period separated integers", field, value)
	}
	return nil
}

// FileName validates that value names a single path element.
func FileName(value, field string) error {
	if err := RequiredString(value, field); err != nil {
		return err
	}
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) || strings.ContainsRune(value, 0) {
		return fmt.Errorf("invalid %s %q: must be a file name, not a path", field, value)
	}
	return nil
}
