package condfilter

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/hugr-lab/condfilter/condition"
)

// Registry dispatches parsing by declared condition type name.
// The set of types is fixed at construction; a Registry is read-only
// afterwards and safe for concurrent use.
type Registry struct {
	variants map[string]condition.Variant
	names    []string
	logger   *slog.Logger
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = mustNew(Config{})

// New builds a Registry.
// Returns error wrapping ErrInvalidConfig if config names an unsupported
// or duplicate type.
//
// Example:
//
//	reg, err := condfilter.New(condfilter.Config{
//	    Types: []condition.Type{condition.TypeText, condition.TypeNumber},
//	})
func New(config Config) (*Registry, error) {
	supported := make(map[condition.Type]condition.Variant)
	for _, v := range condition.Variants() {
		supported[v.Type] = v
	}

	types := config.Types
	if len(types) == 0 {
		for _, v := range condition.Variants() {
			types = append(types, v.Type)
		}
	}

	r := &Registry{
		variants: make(map[string]condition.Variant, len(types)),
		names:    make([]string, 0, len(types)),
		logger:   newLogger(config),
	}
	for _, t := range types {
		v, ok := supported[t]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported condition type %q", ErrInvalidConfig, t)
		}
		if _, dup := r.variants[string(t)]; dup {
			return nil, fmt.Errorf("%w: duplicate condition type %q", ErrInvalidConfig, t)
		}
		r.variants[string(t)] = v
		r.names = append(r.names, string(t))
	}
	slices.Sort(r.names)

	r.log().Debug("Condition registry created", "types", r.names)

	return r, nil
}

func mustNew(config Config) *Registry {
	r, err := New(config)
	if err != nil {
		panic(err)
	}
	return r
}

func newLogger(config Config) *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	if config.LogLevel == nil {
		return nil
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: *config.LogLevel,
	})
	return slog.New(handler)
}

// log returns the configured logger, or the current slog default.
func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Parse resolves opts.Type to a registered condition type and parses the
// remaining options against configs[opts.Type].
//
// A type without an entry in configs is parsed against the zero TypeConfig.
// On failure the returned error is a condition.ErrorList:
//   - Unknown type: a single "Unknown filter condition '<type>'" message
//   - Invalid fields: one message per invalid field
func (r *Registry) Parse(configs condition.TypeConfigs, opts condition.Options) (condition.Condition, error) {
	v, ok := r.variants[opts.Type]
	if !ok {
		errs := condition.ErrorList{fmt.Sprintf("Unknown filter condition '%s'", opts.Type)}
		r.log().Debug("Filter condition rejected", "type", opts.Type, "errors", []string(errs))
		return nil, errs
	}

	cond, err := v.Parse(configs[opts.Type], opts.Input)
	if err != nil {
		errs, _ := condition.AsErrorList(err)
		r.log().Debug("Filter condition rejected", "type", opts.Type, "errors", []string(errs))
		return nil, err
	}
	return cond, nil
}

// Encode converts a parsed condition to a Fragment.
// Panics if c has a comparator without an encoder rule, which parse never admits.
func (r *Registry) Encode(c condition.Condition) condition.Fragment {
	return c.Encode()
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	return slices.Clone(r.names)
}

// Comparators returns the comparators supported by the named type.
// Returns false if the type is not registered.
func (r *Registry) Comparators(typeName string) ([]string, bool) {
	v, ok := r.variants[typeName]
	if !ok {
		return nil, false
	}
	return v.Rules.Comparators(), true
}

// Parse parses opts with the default registry of all supported types.
//
// Example:
//
//	cond, err := condfilter.Parse(
//	    condition.TypeConfigs{"text": {Keys: []string{"title"}}},
//	    condition.Options{
//	        Type:  "text",
//	        Input: condition.Input{Column: "title", Comparator: "is", Value: "Milk"},
//	    },
//	)
func Parse(configs condition.TypeConfigs, opts condition.Options) (condition.Condition, error) {
	return defaultRegistry.Parse(configs, opts)
}

// Encode converts a parsed condition to a Fragment.
func Encode(c condition.Condition) condition.Fragment {
	return defaultRegistry.Encode(c)
}

// Types returns every supported type name, sorted.
func Types() []string {
	return defaultRegistry.Types()
}

// Comparators returns the comparators supported by the named type.
func Comparators(typeName string) ([]string, bool) {
	return defaultRegistry.Comparators(typeName)
}
