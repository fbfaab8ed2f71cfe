// Package loader builds domain.Repository values from local git clones.
// It is the local realization of the "repositories are fetched externally"
// collaborator: records come from docs/adr, the branch from git itself.
package loader

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"adrgrip/internal/domain"
)

// adrFilePattern matches ADR file names of the form NNNN-some-title.md
var adrFilePattern = regexp.MustCompile(`^(\d{4})-.+\.md$`)

// Loader reads repositories from disk
type Loader struct {
	docsPath string
}

// New creates a loader reading records from the standard docs/adr directory
func New() *Loader {
	return &Loader{docsPath: domain.DocsPath}
}

// LoadRepository reads the clone at repoPath into a Repository. Records are
// the NNNN-*.md files under docs/adr, ordered by id; the active branch and
// full name come from git when available.
func (l *Loader) LoadRepository(ctx context.Context, repoPath string) (*domain.Repository, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", repoPath, err)
	}

	repo := &domain.Repository{
		FullName:     l.fullName(ctx, absPath),
		ActiveBranch: l.activeBranch(ctx, absPath),
	}

	adrs, err := l.loadAdrs(absPath)
	if err != nil {
		return nil, err
	}
	repo.Adrs = adrs

	return repo, nil
}

// LoadRepositories loads every given clone path, skipping (with a log line)
// the ones that cannot be read.
func (l *Loader) LoadRepositories(ctx context.Context, repoPaths []string) []*domain.Repository {
	var repos []*domain.Repository
	for _, p := range repoPaths {
		select {
		case <-ctx.Done():
			return repos
		default:
		}

		repo, err := l.LoadRepository(ctx, p)
		if err != nil {
			log.Printf("loader: skipping %s: %v", p, err)
			continue
		}
		repos = append(repos, repo)
	}
	return repos
}

func (l *Loader) loadAdrs(absPath string) ([]*domain.Adr, error) {
	docsDir := filepath.Join(absPath, filepath.FromSlash(l.docsPath))
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		if os.IsNotExist(err) {
			// A repository without ADRs yet is still loadable
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", docsDir, err)
	}

	var adrs []*domain.Adr
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := adrFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(docsDir, entry.Name()))
		if err != nil {
			log.Printf("loader: failed to read %s: %v", entry.Name(), err)
			continue
		}

		content := string(data)
		edited := content
		adrs = append(adrs, &domain.Adr{
			ID:         id,
			Path:       path.Join(l.docsPath, entry.Name()),
			OriginalMd: &content,
			EditedMd:   &edited,
		})
	}

	sort.Slice(adrs, func(i, j int) bool { return adrs[i].ID < adrs[j].ID })
	return adrs, nil
}

// activeBranch resolves the checked-out branch, or a detached-HEAD marker
func (l *Loader) activeBranch(ctx context.Context, absPath string) string {
	out, err := gitOutput(ctx, absPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		log.Printf("loader: failed to get branch for %s: %v", absPath, err)
		return ""
	}
	if out == "HEAD" {
		short, err := gitOutput(ctx, absPath, "rev-parse", "--short", "HEAD")
		if err != nil {
			return "detached"
		}
		return "detached@" + short
	}
	return out
}

// fullName derives "owner/name" from the origin remote when one exists,
// falling back to the directory base name.
func (l *Loader) fullName(ctx context.Context, absPath string) string {
	out, err := gitOutput(ctx, absPath, "remote", "get-url", "origin")
	if err == nil {
		if name := fullNameFromRemote(out); name != "" {
			return name
		}
	}
	return filepath.Base(absPath)
}

// fullNameFromRemote extracts "owner/name" from an https or ssh remote URL
func fullNameFromRemote(remote string) string {
	remote = strings.TrimSuffix(strings.TrimSpace(remote), ".git")

	if i := strings.Index(remote, "://"); i >= 0 {
		remote = remote[i+3:]
		parts := strings.Split(remote, "/")
		if len(parts) >= 3 {
			return strings.Join(parts[len(parts)-2:], "/")
		}
		return ""
	}
	// scp-like syntax: git@host:owner/name
	if i := strings.LastIndexByte(remote, ':'); i >= 0 {
		tail := remote[i+1:]
		if strings.Count(tail, "/") == 1 {
			return tail
		}
	}
	return ""
}

func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
