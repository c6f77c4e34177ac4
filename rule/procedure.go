package rule

import (
	"errors"
	"fmt"
)

// ErrUnknownProcedure is returned by ParseProcedure for tokens that name no
// known post-processing procedure.
var ErrUnknownProcedure = errors.New("unknown post procedure")

// Procedure identifies a post-processing step applied to extracted content.
type Procedure int

const (
	// ProcedureNone applies no post-processing. Rules using it render without
	// an [extraction.procedure] section.
	ProcedureNone Procedure = iota

	// ProcedureNaverWebtoon applies the naver-webtoon request normalization.
	ProcedureNaverWebtoon
)

const (
	tokenNone         = "none"
	tokenNaverWebtoon = "naver-webtoon"
)

// String returns the token used for the procedure in rendered rules.
func (p Procedure) String() string {
	switch p {
	case ProcedureNaverWebtoon:
		return tokenNaverWebtoon
	default:
		return tokenNone
	}
}

// ParseProcedure maps a rendered token back to its Procedure. An empty token
// is treated as ProcedureNone.
func ParseProcedure(token string) (Procedure, error) {
	switch token {
	case "", tokenNone:
		return ProcedureNone, nil
	case tokenNaverWebtoon:
		return ProcedureNaverWebtoon, nil
	}

	return ProcedureNone, fmt.Errorf("%w: %q", ErrUnknownProcedure, token)
}
