// Package store is the in-memory state container of the editor. It owns the
// list of loaded repositories, the currently edited record and the UI mode,
// persists snapshots through the storage bridge and announces changes on the
// event bus.
//
// The store expects a single logical writer (the UI loop). All operations are
// synchronous and run to completion, including event delivery.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"path"
	"strings"

	"adrgrip/internal/adr2md"
	"adrgrip/internal/domain"
	"adrgrip/internal/eventbus"
	"adrgrip/internal/storage"
)

// DuplicateRepositoryError is returned when an added batch collides with
// repositories already in the store. The whole batch is rejected.
type DuplicateRepositoryError struct {
	FullNames []string
}

func (e *DuplicateRepositoryError) Error() string {
	return fmt.Sprintf("repositories already added: %s", strings.Join(e.FullNames, ", "))
}

// Store holds the editor state
type Store struct {
	kv  storage.KV
	bus eventbus.EventBus

	repositories      []*domain.Repository
	currentRepository *domain.Repository
	currentBranch     string
	currentAdr        *domain.Adr
	mode              domain.Mode

	// Transient, set by SetActiveBranch. Kept separate from currentBranch,
	// which always mirrors the open repository's ActiveBranch.
	activeBranch string
}

// New creates an empty store wired to the given persistence bridge and bus
func New(kv storage.KV, bus eventbus.EventBus) *Store {
	return &Store{
		kv:   kv,
		bus:  bus,
		mode: domain.ModeBasic,
	}
}

// Reload restores repositories and mode from the persistence bridge.
// Stored repository data that fails validation is discarded and the store
// starts empty. Mode falls back to basic when absent or unrecognized.
func (s *Store) Reload() {
	s.repositories = nil

	if raw, ok := s.kv.Get(storage.KeyAddedRepositories); ok {
		var repos []*domain.Repository
		if err := json.Unmarshal([]byte(raw), &repos); err != nil {
			log.Printf("store: discarding persisted repositories: %v", err)
		} else if !IsValidRepositories(repos) {
			log.Printf("store: discarding persisted repositories: failed validation")
		} else {
			s.repositories = repos
		}
	}

	s.mode = domain.ModeBasic
	if raw, ok := s.kv.Get(storage.KeyMode); ok {
		s.mode = domain.ParseMode(raw)
	}

	s.EnsureSomeAdrOpened()

	s.bus.Publish(eventbus.StateReloadedEvent{
		Repositories: len(s.repositories),
		Mode:         s.mode,
	})
}

// AddRepositories appends a batch of repositories to the store. If any
// incoming FullName collides with an already-added repository the whole
// batch is rejected and the store is left untouched.
func (s *Store) AddRepositories(repos []*domain.Repository) error {
	var collisions []string
	for _, repo := range repos {
		if s.findRepository(repo.FullName) != nil {
			collisions = append(collisions, repo.FullName)
		}
	}
	if len(collisions) > 0 {
		return &DuplicateRepositoryError{FullNames: collisions}
	}

	s.repositories = append(s.repositories, repos...)
	s.persistRepositories()
	s.EnsureSomeAdrOpened()
	s.bus.Publish(eventbus.RepositoriesAddedEvent{Repositories: repos})
	return nil
}

// RemoveRepository removes the repository matching repo by FullName.
// No-op if it is not in the store.
func (s *Store) RemoveRepository(repo *domain.Repository) {
	kept := s.repositories[:0]
	removed := false
	for _, r := range s.repositories {
		if r.FullName == repo.FullName {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.repositories = kept

	s.EnsureSomeAdrOpened()
	s.persistRepositories()
	if removed {
		s.bus.Publish(eventbus.RepositoryRemovedEvent{FullName: repo.FullName})
	}
}

// UpdateRepository replaces the stored repository whose FullName matches the
// given one. If the previously open record belonged to the replaced
// repository, the record at the same path within the update is re-opened;
// when that path is gone the selection is cleared.
func (s *Store) UpdateRepository(updated *domain.Repository) error {
	idx := -1
	for i, r := range s.repositories {
		if r.FullName == updated.FullName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("repository %q is not in the store", updated.FullName)
	}

	previous := s.repositories[idx]
	reopenPath := ""
	if s.currentAdr != nil && previous.ContainsAdr(s.currentAdr) {
		reopenPath = s.currentAdr.Path
	}

	s.repositories[idx] = updated

	if reopenPath != "" {
		s.clearSelection()
		for _, a := range updated.Adrs {
			if a.Path == reopenPath {
				s.OpenAdr(a)
				break
			}
		}
	}

	s.persistRepositories()
	s.bus.Publish(eventbus.RepositoryUpdatedEvent{Repository: updated})
	return nil
}

// SetActiveBranch sets the transient active branch field on the store itself
func (s *Store) SetActiveBranch(branch string) {
	s.activeBranch = branch
}

// ActiveBranch returns the value last given to SetActiveBranch
func (s *Store) ActiveBranch() string {
	return s.activeBranch
}

// EnsureSomeAdrOpened repairs the selection invariant: when no record is
// open, or the open record is invalid or no longer contained in any added
// repository, the selection is cleared and the first record of the first
// repository that has one is opened. With nothing to open, everything stays
// cleared. Must run after every structural mutation.
func (s *Store) EnsureSomeAdrOpened() {
	if s.currentAdr != nil && IsValidAdr(s.currentAdr) && s.repositoryContaining(s.currentAdr) != nil {
		return
	}

	s.clearSelection()
	for _, r := range s.repositories {
		if len(r.Adrs) > 0 {
			s.OpenAdr(r.Adrs[0])
			return
		}
	}
}

// OpenAdrBy looks up a repository by full name and a record whose file base
// name matches, opens the record and returns it. Returns nil, false without
// side effects when either lookup misses.
func (s *Store) OpenAdrBy(repoFullName, adrFileBaseName string) (*domain.Adr, bool) {
	repo := s.findRepository(repoFullName)
	if repo == nil {
		log.Printf("store: open by name: repository %q not found", repoFullName)
		return nil, false
	}
	for _, a := range repo.Adrs {
		if adr2md.BaseName(a.Path) == adrFileBaseName {
			s.OpenAdr(a)
			return a, true
		}
	}
	log.Printf("store: open by name: %q has no record %q", repoFullName, adrFileBaseName)
	return nil, false
}

// OpenAdr makes adr the currently edited record. Re-opening the record that
// is already open is a no-op. An invalid record, or one not contained in any
// added repository, is logged and ignored.
func (s *Store) OpenAdr(adr *domain.Adr) {
	if adr == nil {
		log.Printf("store: refusing to open nil record")
		return
	}
	if adr == s.currentAdr {
		log.Printf("store: record already open: %s", adr.Path)
		return
	}

	repo := s.repositoryContaining(adr)
	if !IsValidAdr(adr) || repo == nil {
		log.Printf("store: refusing to open invalid or unreachable record")
		return
	}

	s.currentRepository = repo
	s.currentBranch = repo.ActiveBranch
	s.currentAdr = adr
	s.bus.Publish(eventbus.AdrOpenedEvent{Adr: adr})
}

// UpdateMdOfCurrentAdr replaces the edited markdown of the open record.
// While the record is still local-only (not yet committed upstream) its file
// name follows the title, so the path is rebuilt from the first line of the
// markdown. Persists afterwards.
func (s *Store) UpdateMdOfCurrentAdr(markdown string) error {
	if s.currentAdr == nil {
		return fmt.Errorf("no record is currently open")
	}

	s.currentAdr.EditedMd = &markdown

	if s.currentRepository != nil && s.currentRepository.HasAddedAdr(s.currentAdr) {
		title := adr2md.Title(markdown)
		dir := path.Dir(s.currentAdr.Path)
		s.currentAdr.Path = path.Join(dir, adr2md.FileName(s.currentAdr.ID, title))
	}

	s.persistRepositories()
	return nil
}

// CreateNewAdr appends a fresh record to repo with the next free id, the
// default boilerplate content and an "unnamed" path. The repository must be
// the very instance held by the store; otherwise nothing is created.
func (s *Store) CreateNewAdr(repo *domain.Repository) *domain.Adr {
	if !s.holdsRepository(repo) {
		log.Printf("store: create record: repository %q is not in the store", repo.FullName)
		return nil
	}

	id := 0
	for _, a := range repo.Adrs {
		if a.ID >= id {
			id = a.ID + 1
		}
	}

	original := ""
	edited := adr2md.NewAdrMarkdown()
	adr := &domain.Adr{
		ID:         id,
		Path:       fmt.Sprintf("%s/%04d-unnamed.md", domain.DocsPath, id),
		OriginalMd: &original,
		EditedMd:   &edited,
	}

	repo.Adrs = append(repo.Adrs, adr)
	repo.AddedAdrs = append(repo.AddedAdrs, adr)

	s.persistRepositories()
	s.bus.Publish(eventbus.AdrCreatedEvent{Repository: repo, Adr: adr})
	return adr
}

// DeleteAdr removes the first occurrence of adr from repo, retains it in the
// repository's DeletedAdrs and repairs the selection. Persistence is left to
// the caller.
func (s *Store) DeleteAdr(adr *domain.Adr, repo *domain.Repository) {
	removed := false
	for i, a := range repo.Adrs {
		if a == adr {
			repo.Adrs = append(repo.Adrs[:i], repo.Adrs[i+1:]...)
			repo.DeletedAdrs = append(repo.DeletedAdrs, adr)
			removed = true
			break
		}
	}

	s.EnsureSomeAdrOpened()
	if removed {
		s.bus.Publish(eventbus.AdrDeletedEvent{Repository: repo, Adr: adr})
	}
}

// Persist writes the current repository list through the bridge. DeleteAdr
// leaves persistence to its caller; this is the hook for it.
func (s *Store) Persist() {
	s.persistRepositories()
}

// SetMode switches the UI complexity tier. Unrecognized values are logged
// and ignored.
func (s *Store) SetMode(mode domain.Mode) {
	if !mode.IsValid() {
		log.Printf("store: unrecognized mode %q", mode)
		return
	}

	s.mode = mode
	if err := s.kv.Set(storage.KeyMode, string(mode)); err != nil {
		log.Printf("store: failed to persist mode: %v", err)
	}
	s.bus.Publish(eventbus.ModeChangedEvent{Mode: mode})
}

// Repositories returns the added repositories in insertion order
func (s *Store) Repositories() []*domain.Repository {
	return append([]*domain.Repository(nil), s.repositories...)
}

// CurrentAdr returns the currently edited record, or nil
func (s *Store) CurrentAdr() *domain.Adr {
	return s.currentAdr
}

// CurrentRepository returns the repository containing the open record, or nil
func (s *Store) CurrentRepository() *domain.Repository {
	return s.currentRepository
}

// CurrentBranch returns the active branch of the open record's repository
func (s *Store) CurrentBranch() string {
	return s.currentBranch
}

// Mode returns the current UI complexity tier
func (s *Store) Mode() domain.Mode {
	return s.mode
}

func (s *Store) clearSelection() {
	s.currentAdr = nil
	s.currentRepository = nil
	s.currentBranch = ""
}

func (s *Store) findRepository(fullName string) *domain.Repository {
	for _, r := range s.repositories {
		if r.FullName == fullName {
			return r
		}
	}
	return nil
}

func (s *Store) holdsRepository(repo *domain.Repository) bool {
	for _, r := range s.repositories {
		if r == repo {
			return true
		}
	}
	return false
}

func (s *Store) repositoryContaining(adr *domain.Adr) *domain.Repository {
	for _, r := range s.repositories {
		if r.ContainsAdr(adr) {
			return r
		}
	}
	return nil
}

func (s *Store) persistRepositories() {
	repos := s.repositories
	if repos == nil {
		repos = []*domain.Repository{}
	}
	data, err := json.Marshal(repos)
	if err != nil {
		log.Printf("store: failed to marshal repositories: %v", err)
		return
	}
	if err := s.kv.Set(storage.KeyAddedRepositories, string(data)); err != nil {
		log.Printf("store: failed to persist repositories: %v", err)
	}
}
