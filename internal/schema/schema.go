// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package schema declares the shape of every content type recognized by
// the CMS: field names, types, validation rules and preview rules. The
// tables are purely descriptive metadata; the editorial tool consumes them
// as JSON, and Validate applies the same rules to documents locally.
package schema

import (
	"fmt"
	"slices"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/util"
)

// Kind distinguishes documents from embedded objects.
type Kind string

// Type kinds.
const (
	KindDocument Kind = "document"
	KindObject   Kind = "object"
)

// FieldType is the CMS-level type of a field.
type FieldType string

// Field types.
const (
	FieldString   FieldType = "string"
	FieldText     FieldType = "text"
	FieldSlug     FieldType = "slug"
	FieldImage    FieldType = "image"
	FieldRichText FieldType = "richText"
	FieldDate     FieldType = "date"
	FieldDatetime FieldType = "datetime"
	FieldBoolean  FieldType = "boolean"
	FieldNumber   FieldType = "number"
	FieldURL      FieldType = "url"
	FieldArray    FieldType = "array"
	FieldObject   FieldType = "object"
	FieldRef      FieldType = "reference"
)

// FieldOptions hold per-field validation and editor metadata.
type FieldOptions struct {
	// List restricts a string field to a closed value set.
	List []string `json:"list,omitempty"`

	// SlugSource names the field a slug is generated from.
	SlugSource string `json:"slugSource,omitempty"`

	// MaxLength caps string length. For SEO fields the cap is advisory:
	// exceeding it yields a warning, not a hard failure.
	MaxLength int `json:"maxLength,omitempty"`

	// Advisory marks length checks as warnings instead of errors.
	Advisory bool `json:"advisory,omitempty"`
}

// Field is one declared field of a content type.
type Field struct {
	Name     string        `json:"name"`
	Title    string        `json:"title"`
	Type     FieldType     `json:"type"`
	Required bool          `json:"required,omitempty"`
	Of       string        `json:"of,omitempty"` // member type for arrays
	To       string        `json:"to,omitempty"` // target type for references
	Default  any           `json:"default,omitempty"`
	Options  *FieldOptions `json:"options,omitempty"`
}

// Preview is the editorial labeling rule for a type.
type Preview struct {
	Title    string `json:"title,omitempty"`    // field used as the row title
	Subtitle string `json:"subtitle,omitempty"` // field used as the row subtitle
	Media    string `json:"media,omitempty"`    // field used as the row thumbnail
	Static   string `json:"static,omitempty"`   // fixed label for singletons
}

// Type declares one document or object type.
type Type struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Kind      Kind    `json:"kind"`
	Singleton bool    `json:"singleton,omitempty"`
	Fields    []Field `json:"fields"`
	Preview   Preview `json:"preview"`
}

// Severity of a validation issue.
type Severity string

// Issue severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding on a document.
type Issue struct {
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// TypeByName returns the declared type with the given name.
func TypeByName(name string) (Type, bool) {
	for _, t := range Types() {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}

// DocumentTypes returns only the document-kind types.
func DocumentTypes() []Type {
	var docs []Type
	for _, t := range Types() {
		if t.Kind == KindDocument {
			docs = append(docs, t)
		}
	}
	return docs
}

// SlugFor derives the slug value for a document from its slug-source
// field, the same way the editorial tool generates it.
func SlugFor(t Type, doc map[string]any) string {
	for _, f := range t.Fields {
		if f.Type == FieldSlug && f.Options != nil && f.Options.SlugSource != "" {
			if src, ok := doc[f.Options.SlugSource].(string); ok {
				return util.Slugify(src)
			}
		}
	}
	return ""
}

// Validate applies the declared rules to a document. Errors block
// publishing; warnings (advisory length caps) do not.
func (t Type) Validate(doc map[string]any) []Issue {
	var issues []Issue
	for _, f := range t.Fields {
		value, present := doc[f.Name]

		if f.Required && (!present || isEmpty(value)) {
			issues = append(issues, Issue{
				Field:    f.Name,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s is required", f.Title),
			})
			continue
		}
		if !present || isEmpty(value) {
			continue
		}

		switch f.Type {
		case FieldSlug:
			if s, ok := value.(string); ok && !util.IsValidSlug(s) {
				issues = append(issues, Issue{
					Field:    f.Name,
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s must be lowercase alphanumeric segments joined by hyphens", f.Title),
				})
			}
		case FieldImage:
			// Every image requires non-empty alt text.
			if m, ok := value.(map[string]any); ok {
				if alt, _ := m["alt"].(string); alt == "" {
					issues = append(issues, Issue{
						Field:    f.Name,
						Severity: SeverityError,
						Message:  fmt.Sprintf("%s requires alternative text", f.Title),
					})
				}
			}
		case FieldString, FieldText:
			s, ok := value.(string)
			if !ok {
				break
			}
			if f.Options != nil && len(f.Options.List) > 0 && !slices.Contains(f.Options.List, s) {
				issues = append(issues, Issue{
					Field:    f.Name,
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s must be one of %v", f.Title, f.Options.List),
				})
			}
			if f.Options != nil && f.Options.MaxLength > 0 && len(s) > f.Options.MaxLength {
				severity := SeverityError
				if f.Options.Advisory {
					severity = SeverityWarning
				}
				issues = append(issues, Issue{
					Field:    f.Name,
					Severity: severity,
					Message:  fmt.Sprintf("%s exceeds %d characters", f.Title, f.Options.MaxLength),
				})
			}
		}
	}
	return issues
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
