// Package git derives footer-link URL patterns from a repository's origin
// remote. It uses the go-git library so no git CLI installation is required.
package git

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/raveheart1/chlog/internal/changelog"
)

// scpLikeRe matches scp-style SSH remote URLs such as
// git@github.com:owner/repo.git
var scpLikeRe = regexp.MustCompile(`^(?:[\w-]+@)?([\w.-]+):(.+)$`)

// openRepo opens the git repository at the given path or, when path is
// empty, the current working directory. DetectDotGit walks up the directory
// tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// RemoteURL returns the first URL of the origin remote, normalized to an
// https form with any trailing ".git" removed.
func RemoteURL(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("resolving origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return NormalizeRemoteURL(urls[0]), nil
}

// NormalizeRemoteURL converts ssh and scp-style remote URLs to their https
// equivalent and strips the ".git" suffix, so the result can serve as the
// base of browsable compare/tree URLs.
func NormalizeRemoteURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")

	switch {
	case strings.HasPrefix(url, "ssh://"):
		rest := strings.TrimPrefix(url, "ssh://")
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		url = "https://" + strings.Replace(rest, ":", "/", 1)
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		// Already browsable.
	default:
		if m := scpLikeRe.FindStringSubmatch(url); m != nil {
			url = "https://" + m[1] + "/" + m[2]
		}
	}

	return strings.TrimSuffix(url, ".git")
}

// DetectLinkPattern builds a GitHub/GitLab-style link pattern from the origin
// remote of the repository containing path. Used as the fallback for
// automatic link mode when the configuration supplies no URL templates.
func DetectLinkPattern(path string) (*changelog.LinkPattern, error) {
	base, err := RemoteURL(path)
	if err != nil {
		return nil, err
	}

	return &changelog.LinkPattern{
		FirstRelease:  base + "/releases/tag/v{CUR}",
		NormalRelease: base + "/compare/v{PREV}...v{CUR}",
		Unreleased:    base + "/compare/v{CUR}...HEAD",
	}, nil
}
