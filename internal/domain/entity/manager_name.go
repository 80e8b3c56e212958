package entity

import (
	"fmt"
	"regexp"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

var managerNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,62}$`)

// ValidateManagerName checks that name is usable as a registry key
func ValidateManagerName(name string) error {
	if !managerNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidManagerName, name)
	}
	return nil
}

// ValidateManagerNames checks every name and rejects duplicates
func ValidateManagerNames(names []string) error {
	for _, name := range names {
		if err := ValidateManagerName(name); err != nil {
			return err
		}
	}
	if name, dup := DuplicateManagerName(names); dup {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateManager, name)
	}
	return nil
}

// DuplicateManagerName returns the first name that appears more than once
func DuplicateManagerName(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return name, true
		}
		seen[name] = struct{}{}
	}
	return "", false
}
