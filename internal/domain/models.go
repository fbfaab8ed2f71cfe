package domain

// DocsPath is the repository-relative directory that holds ADR files.
const DocsPath = "docs/adr"

// Adr represents a single Architectural Decision Record inside a repository.
// OriginalMd and EditedMd are pointers so a record loaded from persisted JSON
// can be told apart from one where the field was missing entirely.
type Adr struct {
	ID         int     `json:"id"`
	Path       string  `json:"path"`
	OriginalMd *string `json:"originalMd"`
	EditedMd   *string `json:"editedMd"`
}

// Repository represents a version-controlled project holding ADRs
type Repository struct {
	FullName     string `json:"fullName"`
	ActiveBranch string `json:"activeBranch"`
	Adrs         []*Adr `json:"adrs"`
	AddedAdrs    []*Adr `json:"addedAdrs,omitempty"`   // created locally, not yet pushed
	DeletedAdrs  []*Adr `json:"deletedAdrs,omitempty"` // removed locally, pending deletion upstream
}

// ContainsAdr reports whether adr is one of the repository's records.
// Identity is pointer identity, not structural equality.
func (r *Repository) ContainsAdr(adr *Adr) bool {
	for _, a := range r.Adrs {
		if a == adr {
			return true
		}
	}
	return false
}

// HasAddedAdr reports whether adr was created locally in this repository.
func (r *Repository) HasAddedAdr(adr *Adr) bool {
	for _, a := range r.AddedAdrs {
		if a == adr {
			return true
		}
	}
	return false
}

// Mode is the UI complexity tier
type Mode string

const (
	ModeBasic        Mode = "basic"
	ModeAdvanced     Mode = "advanced"
	ModeProfessional Mode = "professional"
)

// IsValid reports whether m is one of the three recognized modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeBasic, ModeAdvanced, ModeProfessional:
		return true
	}
	return false
}

// ParseMode converts a stored string into a Mode, falling back to basic
// for anything unrecognized or empty.
func ParseMode(s string) Mode {
	m := Mode(s)
	if !m.IsValid() {
		return ModeBasic
	}
	return m
}
