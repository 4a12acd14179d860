package window

import (
	"fmt"
	"reflect"
)

// Factory turns logical keys into fresh, bound windows.
type Factory struct {
	registry  *Registry
	fallbacks []KindResolver
}

// NewFactory creates a factory over registry. Qualified names and keys the
// table misses are tried against the registry's own namespace first, then
// against fallbacks in order.
func NewFactory(registry *Registry, fallbacks ...KindResolver) *Factory {
	return &Factory{registry: registry, fallbacks: fallbacks}
}

// Registry returns the factory's static registry.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// QualifiedName returns the fully qualified name for key.
func (f *Factory) QualifiedName(key string) string {
	return QualifiedName(f.registry.Namespace(), key)
}

// Resolve finds the Kind for key without constructing anything.
func (f *Factory) Resolve(key string) (Kind, error) {
	if kind, ok := f.registry.Resolve(key); ok {
		return kind, nil
	}

	name := f.QualifiedName(key)
	if kind, ok := f.registry.ResolveKind(name); ok {
		return kind, nil
	}
	for _, r := range f.fallbacks {
		if kind, ok := r.ResolveKind(name); ok {
			return kind, nil
		}
	}
	return Kind{}, fmt.Errorf("%w: %s", ErrWindowTypeNotFound, name)
}

// Create resolves key, instantiates a new window and binds viewModel to it
// when viewModel is non-nil. Construction is the only side effect.
func (f *Factory) Create(key string, viewModel any) (*Handle, error) {
	kind, err := f.Resolve(key)
	if err != nil {
		return nil, err
	}

	name := f.QualifiedName(key)
	w, err := instantiate(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWindowInstantiationFailed, name, err)
	}

	if viewModel != nil {
		w.SetDataContext(viewModel)
	}
	return newHandle(key, name, w), nil
}

func instantiate(kind Kind) (w Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, err = nil, fmt.Errorf("constructor panicked: %v", r)
		}
	}()

	v := kind.New()
	if v == nil {
		return nil, fmt.Errorf("constructor for %s returned nil", kind.Name)
	}
	w, ok := v.(Window)
	if !ok {
		return nil, fmt.Errorf("%T is not a window", v)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("constructor for %s returned a nil %T", kind.Name, v)
	}
	return w, nil
}
