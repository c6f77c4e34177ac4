// Package rulespec reads declarative extraction rule definitions and turns
// them into rendered rule fragments.
package rulespec

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pevans/cruler/rule"
	"gopkg.in/yaml.v3"
)

// ErrNoRules is returned when a rules file defines no rules.
var ErrNoRules = errors.New("no rules defined")

// File is a rules document.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// Rule describes a single extraction rule. Pointer fields distinguish an
// omitted key from an empty value.
type Rule struct {
	Name          *string  `yaml:"name"`
	Links         []string `yaml:"links,omitempty"`
	LocalPath     *string  `yaml:"local_path"`
	Parts         []string `yaml:"parts,omitempty"`
	Extract       *string  `yaml:"extract"`
	PostProcedure string   `yaml:"post_procedure,omitempty"`
}

// Parse decodes a rules document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	if len(f.Rules) == 0 {
		return nil, ErrNoRules
	}

	return &f, nil
}

// Load reads and decodes the rules document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	return Parse(data)
}

// Builder maps r onto a rule.Builder. Omitted scalars stay unset, so the
// result may still fail to build.
func (r Rule) Builder() (*rule.Builder, error) {
	procedure, err := rule.ParseProcedure(r.PostProcedure)
	if err != nil {
		return nil, err
	}

	b := rule.NewBuilder().SetPostProcedure(procedure)
	if r.Name != nil {
		b.SetName(*r.Name)
	}
	for _, link := range r.Links {
		b.AddLink(link)
	}
	if r.LocalPath != nil {
		b.SetLocalPath(*r.LocalPath)
	}
	for _, part := range r.Parts {
		b.AddPart(part)
	}
	if r.Extract != nil {
		b.SetExtract(*r.Extract)
	}

	return b, nil
}

// Render builds every rule in order and concatenates the fragments.
func (f *File) Render() (string, error) {
	var out strings.Builder

	for i, r := range f.Rules {
		b, err := r.Builder()
		if err != nil {
			return "", fmt.Errorf("rule %d: %w", i, err)
		}

		fragment := b.Build()
		if fragment == "" {
			return "", fmt.Errorf("rule %d: %w", i, b.Validate())
		}

		out.WriteString(fragment)
	}

	return out.String(), nil
}
