package window

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is a constructible window type.
type Kind struct {
	// Name is the kind's display name, normally the registered key.
	Name string
	// New constructs a fresh instance. It must return a Window; anything else
	// is reported as ErrWindowInstantiationFailed.
	New func() any
}

// Entry is one registry row.
type Entry struct {
	Key  string
	Kind Kind
}

// KindResolver resolves a fully qualified window name to a Kind.
type KindResolver interface {
	ResolveKind(qualifiedName string) (Kind, bool)
}

// ResolverFunc adapts a function to KindResolver.
type ResolverFunc func(qualifiedName string) (Kind, bool)

// ResolveKind implements KindResolver.
func (f ResolverFunc) ResolveKind(qualifiedName string) (Kind, bool) { return f(qualifiedName) }

// Registry is the static key -> Kind table. It is populated once by
// NewRegistry and never mutated afterwards.
type Registry struct {
	namespace string
	kinds     map[string]Kind
	entries   []Entry
}

// NewRegistry builds a registry for namespace. Keys are unique ignoring case
// and must not contain the qualifying separator.
func NewRegistry(namespace string, entries ...Entry) (*Registry, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if IsQualified(namespace) {
		return nil, fmt.Errorf("%w: namespace %q contains %q", ErrInvalidKey, namespace, Separator)
	}

	r := &Registry{
		namespace: namespace,
		kinds:     make(map[string]Kind, len(entries)),
		entries:   make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Key) == "" || IsQualified(e.Key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, e.Key)
		}
		if e.Kind.New == nil {
			return nil, fmt.Errorf("%w: %q has no constructor", ErrInvalidKey, e.Key)
		}
		k := fold(e.Key)
		if _, dup := r.kinds[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		if e.Kind.Name == "" {
			e.Kind.Name = e.Key
		}
		r.kinds[k] = e.Kind
		r.entries = append(r.entries, e)
	}

	sort.Slice(r.entries, func(i, j int) bool {
		return fold(r.entries[i].Key) < fold(r.entries[j].Key)
	})
	return r, nil
}

// MustRegistry is NewRegistry for static tables; it panics on error.
func MustRegistry(namespace string, entries ...Entry) *Registry {
	r, err := NewRegistry(namespace, entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Namespace returns the prefix applied to unqualified keys.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Resolve looks key up in the table, ignoring case. Qualified keys are never
// looked up here; they belong to the fallback resolvers.
func (r *Registry) Resolve(key string) (Kind, bool) {
	if IsQualified(key) {
		return Kind{}, false
	}
	kind, ok := r.kinds[fold(key)]
	return kind, ok
}

// ResolveKind resolves qualified names inside the registry's own namespace,
// so "views.About" finds the "About" entry.
func (r *Registry) ResolveKind(qualifiedName string) (Kind, bool) {
	prefix := fold(r.namespace) + Separator
	name := fold(qualifiedName)
	if !strings.HasPrefix(name, prefix) {
		return Kind{}, false
	}
	rest := strings.TrimPrefix(name, prefix)
	if IsQualified(rest) {
		return Kind{}, false
	}
	kind, ok := r.kinds[rest]
	return kind, ok
}

// Entries returns the registered entries sorted by key.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.entries)
}

// AliasResolver maps qualified alias names onto registry keys. It is the
// late-bound resolver wired from configuration, letting "plugins.Settings"
// open the registered "Preferences" window.
type AliasResolver struct {
	registry *Registry
	aliases  map[string]string
}

// NewAliasResolver builds a resolver from alias -> target key pairs. Targets
// may be plain registry keys or names qualified in the registry namespace.
func NewAliasResolver(registry *Registry, aliases map[string]string) *AliasResolver {
	folded := make(map[string]string, len(aliases))
	for alias, target := range aliases {
		folded[fold(alias)] = target
	}
	return &AliasResolver{registry: registry, aliases: folded}
}

// ResolveKind implements KindResolver.
func (a *AliasResolver) ResolveKind(qualifiedName string) (Kind, bool) {
	target, ok := a.aliases[fold(qualifiedName)]
	if !ok {
		return Kind{}, false
	}
	if IsQualified(target) {
		return a.registry.ResolveKind(target)
	}
	return a.registry.Resolve(target)
}
