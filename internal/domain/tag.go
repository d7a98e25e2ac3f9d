package domain

import (
	"fmt"
	"strings"
)

// TagSource records where a tag name was enumerated from.
type TagSource string

const (
	TagSourceLocal  TagSource = "local"
	TagSourceRemote TagSource = "remote"
)

// TagRecord is an ephemeral (namespace, version, source) value built during
// resolution and discarded once the maximum is selected.
type TagRecord struct {
	Namespace string
	Version   *Version
	Source    TagSource
}

// TagPrefix returns the namespace-delimited prefix shared by all tags of one
// application, e.g. "@billing/".
func TagPrefix(namespace string) string {
	return "@" + namespace + "/"
}

// TagName renders the durable tag string "@<namespace>/<major>.<minor>.<patch>".
func TagName(namespace string, v *Version) string {
	return TagPrefix(namespace) + v.String()
}

// ParseTagVersion extracts the version triple from a tag name belonging to
// the given namespace. The namespace is matched literally and delimited, so
// "@app-extra/2.0.0" never parses for namespace "app".
func ParseTagVersion(tagName, namespace string) (*Version, error) {
	rest, ok := strings.CutPrefix(tagName, TagPrefix(namespace))
	if !ok {
		return nil, fmt.Errorf("tag %q does not belong to namespace %q", tagName, namespace)
	}
	return ParseVersion(rest)
}
