package protoenum

import (
	"fmt"
	"strings"

	"github.com/zero-day-ai/typedenum/enum"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// Resolver finds enum types by full name. *protoregistry.Types implements it.
type Resolver interface {
	FindEnumByName(protoreflect.FullName) (protoreflect.EnumType, error)
}

// Option configures how descriptor values become constants.
type Option func(*config)

type config struct {
	trimPrefix string
	resolver   Resolver
	typeOpts   []enum.TypeOption
}

// WithTrimPrefix strips prefix from every value name, so SEVERITY_HIGH
// becomes HIGH. Names without the prefix are kept as they are.
func WithTrimPrefix(prefix string) Option {
	return func(c *config) {
		c.trimPrefix = prefix
	}
}

// WithResolver resolves names in r instead of protoregistry.GlobalTypes.
func WithResolver(r Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithTypeOptions passes options through to enum.NewInt in Define.
func WithTypeOptions(opts ...enum.TypeOption) Option {
	return func(c *config) {
		c.typeOpts = append(c.typeOpts, opts...)
	}
}

func newConfig(opts []Option) config {
	c := config{resolver: protoregistry.GlobalTypes}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// FromDescriptor returns a source listing the values of d in declaration order.
func FromDescriptor(d protoreflect.EnumDescriptor, opts ...Option) enum.Source[int] {
	c := newConfig(opts)
	return enum.SourceFunc[int](func() ([]enum.Constant[int], error) {
		return constants(d, c.trimPrefix), nil
	})
}

// ByName returns a source that resolves fullName when the type is first
// populated.
func ByName(fullName protoreflect.FullName, opts ...Option) enum.Source[int] {
	c := newConfig(opts)
	return enum.SourceFunc[int](func() ([]enum.Constant[int], error) {
		et, err := c.resolver.FindEnumByName(fullName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve proto enum %s: %w", fullName, err)
		}
		return constants(et.Descriptor(), c.trimPrefix), nil
	})
}

// Define defines an int enumeration whose identity is fullName and whose
// constants come from the proto enum of that name.
func Define(fullName string, opts ...Option) (*enum.Type[int], error) {
	c := newConfig(opts)
	return enum.NewInt(fullName, ByName(protoreflect.FullName(fullName), opts...), c.typeOpts...)
}

func constants(d protoreflect.EnumDescriptor, trimPrefix string) []enum.Constant[int] {
	values := d.Values()
	out := make([]enum.Constant[int], 0, values.Len())
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		out = append(out, enum.Constant[int]{
			Key:   strings.TrimPrefix(string(v.Name()), trimPrefix),
			Value: int(v.Number()),
		})
	}
	return out
}
