package presentation

import (
	"sort"
	"strings"

	"github.com/zjrosen/gitshell/internal/window"
)

// WindowDTO represents a registered window or alias for presentation.
type WindowDTO struct {
	Key           string `json:"key"`
	QualifiedName string `json:"qualified_name"`
	Kind          string `json:"kind"`
	Alias         bool   `json:"alias,omitempty"`
	Resolved      bool   `json:"resolved"`
}

// FromRegistry converts registry entries and configured aliases to DTOs.
// Entries come first in key order, then aliases in name order. An alias
// whose target is not registered is listed with Resolved false.
func FromRegistry(reg *window.Registry, aliases map[string]string) []WindowDTO {
	dtos := make([]WindowDTO, 0, reg.Len()+len(aliases))
	for _, e := range reg.Entries() {
		dtos = append(dtos, WindowDTO{
			Key:           e.Key,
			QualifiedName: window.QualifiedName(reg.Namespace(), e.Key),
			Kind:          e.Kind.Name,
			Resolved:      true,
		})
	}

	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	resolver := window.NewAliasResolver(reg, aliases)
	for _, name := range names {
		dto := WindowDTO{
			Key:           aliases[name],
			QualifiedName: name,
			Alias:         true,
		}
		if kind, ok := resolver.ResolveKind(name); ok {
			dto.Kind = kind.Name
			dto.Resolved = true
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

// FilterResolved keeps only DTOs whose kind could be resolved.
func FilterResolved(dtos []WindowDTO) []WindowDTO {
	out := dtos[:0:0]
	for _, d := range dtos {
		if d.Resolved {
			out = append(out, d)
		}
	}
	return out
}

// FilterPrefix keeps DTOs whose qualified name starts with prefix, ignoring case.
func FilterPrefix(dtos []WindowDTO, prefix string) []WindowDTO {
	prefix = strings.ToLower(prefix)
	out := dtos[:0:0]
	for _, d := range dtos {
		if strings.HasPrefix(strings.ToLower(d.QualifiedName), prefix) {
			out = append(out, d)
		}
	}
	return out
}
