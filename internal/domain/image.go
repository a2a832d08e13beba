package domain

import (
	"strings"

	"github.com/bnema/corral/pkg/validation"
)

// ImageRef is an image repository plus a tag or digest.
type ImageRef struct {
	Repository string
	Tag        string
}

// ResolveImageRef splits image into repository and tag (default "latest").
// A non-empty override replaces the embedded tag or digest.
func ResolveImageRef(image, override string) ImageRef {
	repo, ref := validation.ParseImageReference(image)
	if override != "" {
		ref = override
	}
	return ImageRef{Repository: repo, Tag: ref}
}

// IsDigest reports whether the reference pins a content digest.
func (r ImageRef) IsDigest() bool {
	return strings.Contains(r.Tag, ":")
}

// String returns the full reference as understood by the engine.
func (r ImageRef) String() string {
	if r.IsDigest() {
		return r.Repository + "@" + r.Tag
	}
	return r.Repository + ":" + r.Tag
}

// Registry returns the registry host part of the repository, or an empty
// string for images on the default registry.
func (r ImageRef) Registry() string {
	host, _, found := strings.Cut(r.Repository, "/")
	if !found {
		return ""
	}
	if strings.ContainsAny(host, ".:") || host == "localhost" {
		return host
	}
	return ""
}

// PullRequest describes a registry pull.
type PullRequest struct {
	Ref      ImageRef
	Username string
	Password string
	Insecure bool
}

// HasAuth reports whether credentials were supplied.
func (p PullRequest) HasAuth() bool {
	return p.Username != "" || p.Password != ""
}

// BuildRequest describes a local image build.
type BuildRequest struct {
	Ref         ImageRef
	ContextPath string
	Squash      bool
}
