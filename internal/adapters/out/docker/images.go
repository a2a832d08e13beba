package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/bnema/corral/internal/domain"
)

// Squashed builds need at least this engine API version.
var squashMinAPI = semver.MustParse("1.25")

const defaultRegistry = "https://index.docker.io/v1/"

// ImageExists reports whether imageRef is present in the local image store.
func (r *Runtime) ImageExists(ctx context.Context, imageRef string) (bool, error) {
	images, err := r.client.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", imageRef)),
	})
	if err != nil {
		return false, domain.DockerErr(err, "failed to list images")
	}
	return len(images) > 0, nil
}

// PullImage pulls an image from its registry, with credentials when given.
func (r *Runtime) PullImage(ctx context.Context, req domain.PullRequest) error {
	ref := req.Ref.String()
	log := r.logger(ctx, "PullImage", "image", ref)

	opts := image.PullOptions{}
	if req.HasAuth() {
		server := req.Ref.Registry()
		if server == "" {
			server = defaultRegistry
		}
		auth, err := registry.EncodeAuthConfig(registry.AuthConfig{
			Username:      req.Username,
			Password:      req.Password,
			ServerAddress: server,
		})
		if err != nil {
			return domain.DockerErr(err, "failed to encode registry credentials")
		}
		opts.RegistryAuth = auth
		log.Debug("pulling with credentials", "server_address", server, "username", req.Username)
	}

	log.Info("pulling image")

	reader, err := r.client.ImagePull(ctx, ref, opts)
	if err != nil {
		return domain.DockerErr(err, "failed to pull image")
	}
	defer reader.Close()

	if err := logProgress(reader, log); err != nil {
		return domain.DockerErr(err, "failed to pull image")
	}

	log.Info("image pulled")
	return nil
}

// BuildImage builds an image from a local context directory.
func (r *Runtime) BuildImage(ctx context.Context, req domain.BuildRequest) error {
	ref := req.Ref.String()
	log := r.logger(ctx, "BuildImage", "image", ref, "path", req.ContextPath)

	squash := req.Squash
	if squash {
		ok, err := r.supportsSquash(ctx)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("engine API too old for squashed builds, building without squash")
			squash = false
		}
	}

	buildCtx, err := archive.TarWithOptions(req.ContextPath, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("%w: failed to read build context %s: %v", domain.ErrInvalidConfig, req.ContextPath, err)
	}
	defer buildCtx.Close()

	log.Info("building image")

	resp, err := r.client.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:       []string{ref},
		PullParent: true,
		Remove:     squash,
		Squash:     squash,
	})
	if err != nil {
		return domain.DockerErr(err, "failed to build image")
	}
	defer resp.Body.Close()

	if err := logProgress(resp.Body, log); err != nil {
		return domain.DockerErr(err, "failed to build image")
	}

	log.Info("image built")
	return nil
}

func (r *Runtime) supportsSquash(ctx context.Context) (bool, error) {
	apiVersion, err := r.APIVersion(ctx)
	if err != nil {
		return false, err
	}

	v, err := semver.NewVersion(apiVersion)
	if err != nil {
		return false, domain.DockerErr(err, fmt.Sprintf("unparseable API version %q", apiVersion))
	}
	return !v.LessThan(squashMinAPI), nil
}

// logProgress drains a pull or build stream, logging each message at debug
// level and returning the first error message the engine reports.
func logProgress(stream io.Reader, log *log.Logger) error {
	dec := json.NewDecoder(stream)
	for {
		var msg jsonmessage.JSONMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if msg.Error != nil {
			return msg.Error
		}

		if line := progressLine(msg); line != "" {
			log.Debug(line)
		}
	}
}

func progressLine(msg jsonmessage.JSONMessage) string {
	var b strings.Builder
	if msg.ID != "" {
		fmt.Fprintf(&b, "ID: %s | ", msg.ID)
	}
	switch {
	case msg.Status != "":
		b.WriteString(msg.Status)
	case msg.Stream != "":
		b.WriteString(strings.TrimSpace(msg.Stream))
	}
	return b.String()
}
