package container

import (
	"context"

	"github.com/bnema/corral/internal/boundaries/out"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

// Image handles the image a container definition runs from: a registry
// image, or one built from a local context.
type Image struct {
	runtime out.ContainerRuntime
	opts    *domain.ContainerOptions
	ref     domain.ImageRef
}

// NewImage resolves the image reference of opts.
func NewImage(runtime out.ContainerRuntime, opts *domain.ContainerOptions) *Image {
	return &Image{
		runtime: runtime,
		opts:    opts,
		ref:     domain.ResolveImageRef(opts.Image, opts.Tag),
	}
}

// Ref returns the resolved reference.
func (i *Image) Ref() domain.ImageRef {
	return i.ref
}

// Exists reports whether the image is present locally. Engine failures are
// treated as absence.
func (i *Image) Exists(ctx context.Context) bool {
	found, err := i.runtime.ImageExists(ctx, i.ref.String())
	if err != nil {
		_, log := logging.WithFields(ctx, logging.FieldAction, "ImageExists")
		log.Debug("image lookup failed", "image", i.ref.String(), "error", err)
		return false
	}
	return found
}

// Pull builds the image when a build path is set, otherwise pulls it from
// its registry.
func (i *Image) Pull(ctx context.Context) error {
	ctx, log := logging.WithFields(ctx, logging.FieldAction, "PullImage", "image", i.ref.String())

	if i.opts.BuildsLocally() {
		log.Info("building image", "path", i.opts.ImageBuildPath, "squash", i.opts.ImageBuildSquash)
		return i.runtime.BuildImage(ctx, domain.BuildRequest{
			Ref:         i.ref,
			ContextPath: i.opts.ImageBuildPath,
			Squash:      i.opts.ImageBuildSquash,
		})
	}

	if i.opts.ImageInsecure {
		log.Warn("image_insecure is set; the registry must be listed in the daemon's insecure-registries",
			"registry", i.ref.Registry())
	}

	log.Info("pulling image")
	return i.runtime.PullImage(ctx, domain.PullRequest{
		Ref:      i.ref,
		Username: i.opts.ImageUsername,
		Password: i.opts.ImagePassword,
		Insecure: i.opts.ImageInsecure,
	})
}
