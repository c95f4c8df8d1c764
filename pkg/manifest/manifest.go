// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/gardener/navforge/pkg/navigation"
	"github.com/gardener/navforge/pkg/osfakes/osshim"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	groupTypeItems        = "items"
	groupTypeAutogenerate = "autogenerate"
)

// Load reads the site configuration at path and parses it
func Load(shim osshim.Os, path string, vars map[string]string) (*Site, error) {
	path = strings.TrimSpace(path)
	dir, err := shim.IsDir(path)
	if err != nil {
		if shim.IsNotExist(err) {
			return nil, fmt.Errorf("site configuration %s does not exist", path)
		}
		return nil, err
	}
	if dir {
		return nil, fmt.Errorf("site configuration %s is a directory", path)
	}
	content, err := shim.ReadFile(path)
	if err != nil {
		return nil, err
	}
	site, err := Parse(content, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to parse site configuration %s: %w", path, err)
	}
	klog.V(4).Infof("Loaded site %q with %d sidebar groups from %s", site.Title, len(site.Sidebar), path)
	return site, nil
}

// Parse resolves content as a template applying vars and unmarshals the
// result into a Site. Referencing a variable that is not provided is an error.
func Parse(content []byte, vars map[string]string) (*Site, error) {
	tmpl, err := template.New("site").Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, err
	}
	if vars == nil {
		vars = map[string]string{}
	}
	var b bytes.Buffer
	if err := tmpl.Execute(&b, vars); err != nil {
		return nil, err
	}
	site := &Site{}
	if err := yaml.Unmarshal(b.Bytes(), site); err != nil {
		return nil, err
	}
	return site, nil
}

// Spec converts the sidebar of the site into a navigation spec. Groups with
// both or neither of items and autogenerate are rejected here, so no page is
// ever looked up for them.
func (s *Site) Spec() (navigation.Spec, error) {
	var errs *multierror.Error
	spec := make(navigation.Spec, 0, len(s.Sidebar))
	for i, node := range s.Sidebar {
		if node == nil {
			errs = multierror.Append(errs, &navigation.GroupSourceError{Group: fmt.Sprintf("#%d", i)})
			continue
		}
		groupType, err := decideGroupType(node)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		switch groupType {
		case groupTypeItems:
			spec = append(spec, explicitGroup(node))
		case groupTypeAutogenerate:
			spec = append(spec, autogeneratedGroup(node))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return spec, nil
}

func decideGroupType(node *GroupNode) (string, error) {
	candidateType := []string{}
	if node.Items != nil {
		candidateType = append(candidateType, groupTypeItems)
	}
	if node.Autogenerate != nil {
		candidateType = append(candidateType, groupTypeAutogenerate)
	}
	if len(candidateType) != 1 {
		return "", &navigation.GroupSourceError{Group: node.Label, Sources: candidateType}
	}
	return candidateType[0], nil
}

func explicitGroup(node *GroupNode) navigation.ExplicitGroup {
	group := navigation.ExplicitGroup{
		Label:     node.Label,
		Items:     make([]navigation.Item, 0, len(node.Items)),
		Collapsed: isTrue(node.Collapsed),
	}
	for _, item := range node.Items {
		if item == nil {
			item = &ItemNode{}
		}
		group.Items = append(group.Items, navigation.Item{
			Label: item.Label,
			Slug:  item.Slug,
			Link:  item.Link,
		})
	}
	return group
}

func autogeneratedGroup(node *GroupNode) navigation.AutogeneratedGroup {
	collapsed := node.Collapsed
	if collapsed == nil {
		collapsed = node.Autogenerate.Collapsed
	}
	return navigation.AutogeneratedGroup{
		Label:     node.Label,
		Directory: node.Autogenerate.Directory,
		Collapsed: isTrue(collapsed),
	}
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
