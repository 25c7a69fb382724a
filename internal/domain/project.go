package domain

import (
	"fmt"
	"strings"
)

// TrainingMarker prefixes the name of a training project.
const TrainingMarker = "!"

// KindOf classifies a project by its raw name.
func KindOf(name string) ProjectKind {
	if strings.HasPrefix(name, TrainingMarker) {
		return KindTraining
	}
	return KindOrdinary
}

// DisplayName strips the training marker from a project name.
func DisplayName(name string) string {
	return strings.TrimPrefix(name, TrainingMarker)
}

// ToggleTraining returns the project name with the training marker
// added or removed.
func ToggleTraining(name string) string {
	if KindOf(name) == KindTraining {
		return DisplayName(name)
	}
	return TrainingMarker + name
}

// ValidateProjectName checks that name can be used as a project identifier
// in every store (it doubles as a directory name for the directory store).
func ValidateProjectName(name string) error {
	display := strings.TrimSpace(DisplayName(name))
	if display == "" {
		return fmt.Errorf("project name is required")
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("project name %q has surrounding whitespace", name)
	}
	if display == "." || display == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("project name %q is not a valid folder name", name)
	}
	return nil
}
