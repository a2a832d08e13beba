// Package dto provides the on-disk YAML shapes of definitions and groups.
package dto

import (
	"slices"

	"github.com/bnema/corral/internal/domain"
)

// ContainerDefinition is the YAML document stored in containers/<name>.yaml.
// Every key is always written so a dumped file doubles as a template.
type ContainerDefinition struct {
	CapAdd           []string `yaml:"cap_add"`
	CapDrop          []string `yaml:"cap_drop"`
	Devices          []string `yaml:"devices"`
	DNS              []string `yaml:"dns"`
	EnvFile          string   `yaml:"env_file"`
	Environment      []string `yaml:"environment"`
	Group            string   `yaml:"group"`
	Image            string   `yaml:"image"`
	ImageArgs        []string `yaml:"image_args"`
	ImageBuildPath   string   `yaml:"image_build_path"`
	ImageBuildSquash bool     `yaml:"image_build_squash"`
	ImageInsecure    bool     `yaml:"image_insecure"`
	ImagePassword    string   `yaml:"image_password"`
	ImageUsername    string   `yaml:"image_username"`
	Mounts           []string `yaml:"mounts"`
	Name             string   `yaml:"name"`
	Net              string   `yaml:"net"`
	Network          string   `yaml:"network"`
	Ports            []string `yaml:"ports"`
	Restart          string   `yaml:"restart"`
	Tag              string   `yaml:"tag"`
	Tmpfs            []string `yaml:"tmpfs"`
}

// DefinitionFromOptions converts validated options to their document form.
func DefinitionFromOptions(o *domain.ContainerOptions) ContainerDefinition {
	return ContainerDefinition{
		CapAdd:           list(o.CapAdd),
		CapDrop:          list(o.CapDrop),
		Devices:          list(o.Devices),
		DNS:              list(o.DNS),
		EnvFile:          o.EnvFile,
		Environment:      list(o.Environment),
		Group:            o.Group,
		Image:            o.Image,
		ImageArgs:        list(o.ImageArgs),
		ImageBuildPath:   o.ImageBuildPath,
		ImageBuildSquash: o.ImageBuildSquash,
		ImageInsecure:    o.ImageInsecure,
		ImagePassword:    o.ImagePassword,
		ImageUsername:    o.ImageUsername,
		Mounts:           list(o.Mounts),
		Name:             o.Name,
		Net:              o.Net,
		Network:          o.Network,
		Ports:            list(o.Ports),
		Restart:          o.Restart,
		Tag:              o.Tag,
		Tmpfs:            list(o.Tmpfs),
	}
}

func list(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
