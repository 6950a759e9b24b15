// Package domain provides the domain layer for chainpulse.
// It contains business logic, value objects, and domain services.
package domain

import (
	"fmt"
	"strings"
)

// Project represents an ecosystem directory entry.
type Project struct {
	ID          string
	Name        string
	Symbol      string
	Category    ProjectCategory
	Description string
	Website     string
}

// ProjectCategory represents the directory category of a project.
type ProjectCategory string

const (
	ProjectCategoryDeFi   ProjectCategory = "defi"
	ProjectCategoryNFT    ProjectCategory = "nft"
	ProjectCategoryInfra  ProjectCategory = "infra"
	ProjectCategoryGaming ProjectCategory = "gaming"
	ProjectCategoryDAO    ProjectCategory = "dao"
)

// IsValid checks if the project category is valid.
func (c ProjectCategory) IsValid() bool {
	switch c {
	case ProjectCategoryDeFi, ProjectCategoryNFT, ProjectCategoryInfra,
		ProjectCategoryGaming, ProjectCategoryDAO:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c ProjectCategory) String() string {
	return string(c)
}

// Validate validates the project and returns an error if invalid.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("project ID cannot be empty")
	}

	if p.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if !p.Category.IsValid() {
		return fmt.Errorf("invalid project category: %s", p.Category)
	}

	return nil
}

// ParseProjectCategory parses a string into a ProjectCategory.
func ParseProjectCategory(category string) (ProjectCategory, error) {
	c := ProjectCategory(strings.ToLower(strings.TrimSpace(category)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid project category: %s", category)
	}
	return c, nil
}
