package validation

import "strings"

// DefaultTag is used when an image reference carries neither tag nor digest.
const DefaultTag = "latest"

// ParseImageReference splits an image reference into repository and tag or
// digest. A colon before the last slash belongs to a registry port:
//
//	web                         -> web, latest
//	web:1.2                     -> web, 1.2
//	localhost:5000/web          -> localhost:5000/web, latest
//	registry.local:5000/web:1.2 -> registry.local:5000/web, 1.2
//	web@sha256:abc              -> web, sha256:abc
func ParseImageReference(imageRef string) (string, string) {
	if name, digest, ok := strings.Cut(imageRef, "@"); ok {
		return name, digest
	}

	lastSlash := strings.LastIndex(imageRef, "/")
	lastColon := strings.LastIndex(imageRef, ":")
	if lastColon > lastSlash && lastColon < len(imageRef)-1 {
		return imageRef[:lastColon], imageRef[lastColon+1:]
	}

	return strings.TrimSuffix(imageRef, ":"), DefaultTag
}
