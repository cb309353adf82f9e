package pipeline

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/adapter"
	"github.com/voidlabs/ecosystem-indexer/internal/domain"
	"github.com/voidlabs/ecosystem-indexer/internal/logger"
	"github.com/voidlabs/ecosystem-indexer/internal/match"
	"github.com/voidlabs/ecosystem-indexer/internal/providers/github"
	"github.com/voidlabs/ecosystem-indexer/internal/ratelimit"
	"github.com/voidlabs/ecosystem-indexer/internal/store"
	"github.com/voidlabs/ecosystem-indexer/internal/store/schema"
)

// githubMappings pins owner/repo ids for projects whose registry record lacks
// a usable repository link
var githubMappings = map[string]string{
	"near-core": "near/nearcore",
}

// GithubStage enriches projects with repository activity: stars, forks,
// primary language and last-push recency.
type GithubStage struct {
	store       store.Store
	client      github.Client
	pacer       ratelimit.Pacer
	clock       adapter.Clock
	callTimeout time.Duration
}

// NewGithubStage creates the repository activity stage
func NewGithubStage(s store.Store, client github.Client, pacer ratelimit.Pacer, clock adapter.Clock, callTimeout time.Duration) *GithubStage {
	return &GithubStage{
		store:       s,
		client:      client,
		pacer:       pacer,
		clock:       clock,
		callTimeout: callTimeout,
	}
}

// Name identifies the stage in results and logs
func (s *GithubStage) Name() string {
	return "github"
}

// Run resolves each project's repository and writes its activity aggregates
func (s *GithubStage) Run(ctx context.Context, runID string) domain.StageResult {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return failedResult(err)
	}

	resolver := match.Chain(
		match.FragmentKey("repo"),
		match.KnownMappings(githubMappings),
	)

	result := domain.StageResult{Status: domain.StageStatusOK, Total: len(projects)}
	for _, project := range projects {
		repo, ok := resolver.Resolve(match.Candidate{
			Slug:     project.Slug,
			Name:     project.Name,
			Fragment: fragmentOf(project, domain.ProviderGitHub),
		})
		if !ok {
			repo, ok = repoFromRegistry(project)
		}
		if !ok {
			result.Skipped++
			continue
		}

		owner, name, ok := splitRepo(repo)
		if !ok {
			result.Skipped++
			continue
		}

		if err := s.enrichOne(ctx, project, owner, name); err != nil {
			logger.WarnCtx(ctx, "failed to enrich repository stats",
				zap.String("slug", project.Slug), zap.String("repo", repo), zap.Error(err))
			result.Failed++
		} else {
			result.Enriched++
		}

		if err := s.pacer.Wait(ctx); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	return result
}

func (s *GithubStage) enrichOne(ctx context.Context, project schema.Project, owner, name string) error {
	repoCtx, cancel := callCtx(ctx, s.callTimeout)
	repo, err := s.client.GetRepo(repoCtx, owner, name)
	cancel()
	if err != nil {
		return err
	}

	if err := s.store.UpdateProjectGithubStats(ctx, project.ID, repo.Stars, repo.Forks, repo.Language); err != nil {
		return err
	}

	fragment := map[string]interface{}{
		"repo":        repo.FullName,
		"stars":       repo.Stars,
		"forks":       repo.Forks,
		"language":    repo.Language,
		"open_issues": repo.OpenIssues,
		"archived":    repo.Archived,
		"pushed_at":   repo.PushedAt.UTC().Format(time.RFC3339),
	}
	return s.store.SetProjectFragment(ctx, project.ID, domain.ProviderGitHub, stampFragment(s.clock, fragment))
}

// repoFromRegistry extracts an owner/repo id from the registry fragment's
// github link, if the registry recorded one
func repoFromRegistry(project schema.Project) (string, bool) {
	registry := fragmentOf(project, domain.ProviderNearCatalog)
	if registry == nil {
		return "", false
	}
	linktree, ok := registry["linktree"].(map[string]interface{})
	if !ok {
		return "", false
	}
	link, ok := linktree["github"].(string)
	if !ok || link == "" {
		return "", false
	}

	link = strings.TrimSuffix(strings.TrimSpace(link), "/")
	idx := strings.Index(link, "github.com/")
	if idx < 0 {
		return "", false
	}
	path := strings.Trim(link[idx+len("github.com/"):], "/")
	parts := strings.Split(path, "/")
	if len(parts) < 1 || parts[0] == "" {
		return "", false
	}
	// Org-level links carry no repo name; only owner/name pairs are usable
	if len(parts) >= 2 && parts[1] != "" {
		return parts[0] + "/" + parts[1], true
	}
	return "", false
}

func splitRepo(repo string) (string, string, bool) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
