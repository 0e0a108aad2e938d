// Package catalogseed loads the status label catalog from a YAML file and
// upserts it into the record store.
package catalogseed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// File is the on-disk catalog layout. Order in the file becomes display order.
type File struct {
	Categories []Category `yaml:"categories"`
}

// Category is one label group with its display color.
type Category struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Emoji  string   `yaml:"emoji"`
	Labels []string `yaml:"labels"`
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a catalog document, rejecting unknown keys, and validates it.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("categories", "catalog is empty")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names, colors and uniqueness.
func (f *File) Validate() error {
	var errs []domain.FieldError

	if len(f.Categories) == 0 {
		errs = append(errs, domain.FieldError{Field: "categories", Message: "at least one category required"})
	}

	seenCat := make(map[string]bool, len(f.Categories))
	for i, c := range f.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		name := strings.TrimSpace(c.Name)
		switch {
		case name == "":
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "required"})
		case seenCat[strings.ToLower(name)]:
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: fmt.Sprintf("duplicate category %q", name)})
		}
		seenCat[strings.ToLower(name)] = true

		if !colorPattern.MatchString(c.Color) {
			errs = append(errs, domain.FieldError{Field: field + ".color", Message: "must be #rrggbb"})
		}
		if len(c.Labels) == 0 {
			errs = append(errs, domain.FieldError{Field: field + ".labels", Message: "at least one label required"})
		}

		seenLabel := make(map[string]bool, len(c.Labels))
		for j, l := range c.Labels {
			l = strings.TrimSpace(l)
			lf := fmt.Sprintf("%s.labels[%d]", field, j)
			switch {
			case l == "":
				errs = append(errs, domain.FieldError{Field: lf, Message: "required"})
			case seenLabel[strings.ToLower(l)]:
				errs = append(errs, domain.FieldError{Field: lf, Message: fmt.Sprintf("duplicate label %q", l)})
			}
			seenLabel[strings.ToLower(l)] = true
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LabelCount returns the number of labels across all categories.
func (f *File) LabelCount() int {
	n := 0
	for _, c := range f.Categories {
		n += len(c.Labels)
	}
	return n
}
