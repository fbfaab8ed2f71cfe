package store

import (
	"adrgrip/internal/domain"
)

// IsValidAdr reports whether a record is structurally complete: originalMd,
// editedMd and a path are all present. Presence only, content may be empty.
func IsValidAdr(adr *domain.Adr) bool {
	return adr != nil && adr.OriginalMd != nil && adr.EditedMd != nil && adr.Path != ""
}

// IsValidRepositories reports whether every element of the list is
// structurally a repository whose records all pass IsValidAdr. Used to vet
// persisted state before trusting it.
func IsValidRepositories(repos []*domain.Repository) bool {
	for _, r := range repos {
		if r == nil || r.FullName == "" {
			return false
		}
		for _, a := range r.Adrs {
			if !IsValidAdr(a) {
				return false
			}
		}
	}
	return true
}
