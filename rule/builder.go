// Package rule assembles extraction rules into the TOML fragments read by
// the scraping engine.
package rule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField indicates a mandatory rule field was never set.
var ErrMissingField = errors.New("missing mandatory field")

// Template placeholders, substituted in the order they are listed.
const (
	placeholderName          = "$<name>"
	placeholderLinks         = "$<link>"
	placeholderLocalPath     = "$<local_path>"
	placeholderParts         = "$<parts>"
	placeholderExtract       = "$<extract>"
	placeholderPostProcedure = "$<post_procedure>"
)

// Builder accumulates the fields of a single extraction rule. Setters may be
// called in any order and return the Builder so calls can be chained.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	name      *string
	links     []string // nil until the first AddLink
	localPath *string
	parts     []string // nil until the first AddPart
	extract   *string

	postProcedure Procedure
}

// NewBuilder returns an empty Builder with no post procedure.
func NewBuilder() *Builder {
	return &Builder{postProcedure: ProcedureNone}
}

// SetName sets the rule name, replacing any earlier value.
func (b *Builder) SetName(name string) *Builder {
	b.name = &name
	return b
}

// AddLink appends a source link.
func (b *Builder) AddLink(link string) *Builder {
	b.links = append(b.links, link)
	return b
}

// SetLocalPath sets the directory extracted content is stored under,
// replacing any earlier value.
func (b *Builder) SetLocalPath(localPath string) *Builder {
	b.localPath = &localPath
	return b
}

// AddPart appends a part expression.
func (b *Builder) AddPart(part string) *Builder {
	b.parts = append(b.parts, part)
	return b
}

// SetExtract sets the extraction expression, replacing any earlier value.
func (b *Builder) SetExtract(extract string) *Builder {
	b.extract = &extract
	return b
}

// SetPostProcedure sets the post-processing procedure.
func (b *Builder) SetPostProcedure(p Procedure) *Builder {
	b.postProcedure = p
	return b
}

// Validate reports whether the rule can be built. The returned error wraps
// ErrMissingField and names the first absent field. Empty strings count as
// set.
func (b *Builder) Validate() error {
	switch {
	case b.name == nil:
		return fmt.Errorf("%w: name", ErrMissingField)
	case b.localPath == nil:
		return fmt.Errorf("%w: local_path", ErrMissingField)
	case b.extract == nil:
		return fmt.Errorf("%w: extract", ErrMissingField)
	}

	return nil
}

// Build renders the rule as an [[extraction]] TOML fragment. It returns an
// empty string when name, local path or extract has not been set; use
// Validate to learn which one.
//
// Build does not modify the Builder, so repeated calls return the same text.
func (b *Builder) Build() string {
	if b.Validate() != nil {
		return ""
	}

	var tmpl strings.Builder
	tmpl.WriteString("[[extraction]]\n")
	tmpl.WriteString("name = '" + placeholderName + "'\n")
	if b.links != nil {
		tmpl.WriteString("links = [" + placeholderLinks + "]\n")
	}
	tmpl.WriteString("local_path = '" + placeholderLocalPath + "'\n")
	if b.parts != nil {
		tmpl.WriteString("parts = [" + placeholderParts + "]\n")
	}
	tmpl.WriteString("extract = '" + placeholderExtract + "'\n")
	if b.postProcedure != ProcedureNone {
		tmpl.WriteString("[extraction.procedure]\n")
		tmpl.WriteString("post_procedure = '" + placeholderPostProcedure + "'\n")
	}

	// Each placeholder is replaced once, at its first occurrence, in template
	// order. Values are not escaped.
	out := tmpl.String()
	out = strings.Replace(out, placeholderName, *b.name, 1)
	if b.links != nil {
		out = strings.Replace(out, placeholderLinks, joinQuoted(b.links), 1)
	}
	out = strings.Replace(out, placeholderLocalPath, *b.localPath, 1)
	if b.parts != nil {
		out = strings.Replace(out, placeholderParts, joinQuoted(b.parts), 1)
	}
	out = strings.Replace(out, placeholderExtract, *b.extract, 1)
	if b.postProcedure == ProcedureNaverWebtoon {
		out = strings.Replace(out, placeholderPostProcedure, b.postProcedure.String(), 1)
	}

	return out
}

// joinQuoted renders values as TOML array elements, one per line:
// "a",\n"b" with no trailing comma.
func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}

	return strings.Join(quoted, ",\n")
}
