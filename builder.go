package scopt

import "reflect"

// Scope is a registration target: either the parser itself (top level) or a
// command builder (that command's children). Registration functions rather
// than methods carry the value type parameter, which Go methods cannot.
type Scope[C any] interface {
	addNode(*spec)
	parserOf() *Parser[C]
}

func typeNameOf[T any]() (reflect.Type, string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t, t.String()
}

// Opt declares a long option taking one value of type T, optional and
// single-occurrence by default. T must have a registered coercer or the
// builder must supply one via Coerce.
func Opt[T any, C any](sc Scope[C], long string) *OptBuilder[T, C] {
	t, name := typeNameOf[T]()
	s := &spec{
		kind:      optionSpec,
		long:      long,
		maxOccurs: 1,
		arity:     aritySingle,
		typeName:  name,
		valueName: "value",
	}
	if c, ok := coercerFor(t); ok {
		s.coerce = c
	}
	sc.addNode(s)
	return &OptBuilder[T, C]{p: sc.parserOf(), s: s}
}

// OptBuilder configures one valued option. All methods return the builder for
// chaining; the spec node is live in the registry from the Opt call on.
type OptBuilder[T any, C any] struct {
	p *Parser[C]
	s *spec
}

func (b *OptBuilder[T, C]) Short(r rune) *OptBuilder[T, C]         { b.s.short = r; return b }
func (b *OptBuilder[T, C]) Text(help string) *OptBuilder[T, C]     { b.s.help = help; return b }
func (b *OptBuilder[T, C]) ValueName(n string) *OptBuilder[T, C]   { b.s.valueName = n; return b }
func (b *OptBuilder[T, C]) Hidden() *OptBuilder[T, C]              { b.s.hidden = true; return b }
func (b *OptBuilder[T, C]) Required() *OptBuilder[T, C]            { b.s.minOccurs = 1; return b }
func (b *OptBuilder[T, C]) Optional() *OptBuilder[T, C]            { b.s.minOccurs = 0; return b }
func (b *OptBuilder[T, C]) MinOccurs(n int) *OptBuilder[T, C]      { b.s.minOccurs = n; return b }
func (b *OptBuilder[T, C]) MaxOccurs(n int) *OptBuilder[T, C]      { b.s.maxOccurs = n; return b }
func (b *OptBuilder[T, C]) Unbounded() *OptBuilder[T, C]           { b.s.maxOccurs = maxUnbounded; return b }

func (b *OptBuilder[T, C]) Coerce(fn CoercerFunc[T]) *OptBuilder[T, C] {
	b.s.coerce = func(raw string) (any, error) { return fn(raw) }
	return b
}

// Validate appends predicates over the coerced value. Every validator runs on
// every occurrence; failures accumulate instead of short-circuiting.
func (b *OptBuilder[T, C]) Validate(fns ...func(T) error) *OptBuilder[T, C] {
	for _, fn := range fns {
		fn := fn
		b.s.validate = append(b.s.validate, func(v any) error { return fn(v.(T)) })
	}
	return b
}

func (b *OptBuilder[T, C]) Action(fn func(T, C) C) *OptBuilder[T, C] {
	b.p.setMode(modeFold, b.s.ident())
	b.s.fold = func(v, cfg any) any { return fn(v.(T), cfg.(C)) }
	return b
}

func (b *OptBuilder[T, C]) Effect(fn func(T)) *OptBuilder[T, C] {
	b.p.setMode(modeEffect, b.s.ident())
	b.s.effect = func(v any) { fn(v.(T)) }
	return b
}

// Flag declares a valueless (unit) option.
func Flag[C any](sc Scope[C], long string) *FlagBuilder[C] {
	s := &spec{
		kind:      optionSpec,
		long:      long,
		maxOccurs: 1,
		arity:     arityNone,
	}
	sc.addNode(s)
	return &FlagBuilder[C]{p: sc.parserOf(), s: s}
}

type FlagBuilder[C any] struct {
	p *Parser[C]
	s *spec
}

func (b *FlagBuilder[C]) Short(r rune) *FlagBuilder[C]     { b.s.short = r; return b }
func (b *FlagBuilder[C]) Text(help string) *FlagBuilder[C] { b.s.help = help; return b }
func (b *FlagBuilder[C]) Hidden() *FlagBuilder[C]          { b.s.hidden = true; return b }
func (b *FlagBuilder[C]) Required() *FlagBuilder[C]        { b.s.minOccurs = 1; return b }
func (b *FlagBuilder[C]) MinOccurs(n int) *FlagBuilder[C]  { b.s.minOccurs = n; return b }
func (b *FlagBuilder[C]) MaxOccurs(n int) *FlagBuilder[C]  { b.s.maxOccurs = n; return b }
func (b *FlagBuilder[C]) Unbounded() *FlagBuilder[C]       { b.s.maxOccurs = maxUnbounded; return b }

func (b *FlagBuilder[C]) Action(fn func(C) C) *FlagBuilder[C] {
	b.p.setMode(modeFold, b.s.ident())
	b.s.fold = func(_, cfg any) any { return fn(cfg.(C)) }
	return b
}

func (b *FlagBuilder[C]) Effect(fn func()) *FlagBuilder[C] {
	b.p.setMode(modeEffect, b.s.ident())
	b.s.effect = func(any) { fn() }
	return b
}

// KVOpt declares an option whose value is a key=value pair, written either
// --name:key=value or --name key=value. Both K and V need registered
// coercers.
func KVOpt[K any, V any, C any](sc Scope[C], long string) *KVBuilder[K, V, C] {
	kt, kName := typeNameOf[K]()
	vt, vName := typeNameOf[V]()
	s := &spec{
		kind:        optionSpec,
		long:        long,
		maxOccurs:   1,
		arity:       arityPair,
		typeName:    "(" + kName + "," + vName + ")",
		pairKeyName: "key",
		pairValName: "value",
	}
	ck, okK := coercerFor(kt)
	cv, okV := coercerFor(vt)
	if okK && okV {
		s.coercePair = func(key, val string) (any, error) {
			k, err := ck(key)
			if err != nil {
				return nil, err
			}
			v, err := cv(val)
			if err != nil {
				return nil, err
			}
			return KV[K, V]{Key: k.(K), Value: v.(V)}, nil
		}
	}
	sc.addNode(s)
	return &KVBuilder[K, V, C]{p: sc.parserOf(), s: s}
}

type KVBuilder[K any, V any, C any] struct {
	p *Parser[C]
	s *spec
}

func (b *KVBuilder[K, V, C]) Short(r rune) *KVBuilder[K, V, C]     { b.s.short = r; return b }
func (b *KVBuilder[K, V, C]) Text(help string) *KVBuilder[K, V, C] { b.s.help = help; return b }
func (b *KVBuilder[K, V, C]) Hidden() *KVBuilder[K, V, C]          { b.s.hidden = true; return b }
func (b *KVBuilder[K, V, C]) Required() *KVBuilder[K, V, C]        { b.s.minOccurs = 1; return b }
func (b *KVBuilder[K, V, C]) MinOccurs(n int) *KVBuilder[K, V, C]  { b.s.minOccurs = n; return b }
func (b *KVBuilder[K, V, C]) MaxOccurs(n int) *KVBuilder[K, V, C]  { b.s.maxOccurs = n; return b }
func (b *KVBuilder[K, V, C]) Unbounded() *KVBuilder[K, V, C]       { b.s.maxOccurs = maxUnbounded; return b }

// Keys sets the display names for the key and value placeholders.
func (b *KVBuilder[K, V, C]) Keys(key, val string) *KVBuilder[K, V, C] {
	b.s.pairKeyName = key
	b.s.pairValName = val
	return b
}

func (b *KVBuilder[K, V, C]) Validate(fns ...func(KV[K, V]) error) *KVBuilder[K, V, C] {
	for _, fn := range fns {
		fn := fn
		b.s.validate = append(b.s.validate, func(v any) error { return fn(v.(KV[K, V])) })
	}
	return b
}

func (b *KVBuilder[K, V, C]) Action(fn func(KV[K, V], C) C) *KVBuilder[K, V, C] {
	b.p.setMode(modeFold, b.s.ident())
	b.s.fold = func(v, cfg any) any { return fn(v.(KV[K, V]), cfg.(C)) }
	return b
}

func (b *KVBuilder[K, V, C]) Effect(fn func(KV[K, V])) *KVBuilder[K, V, C] {
	b.p.setMode(modeEffect, b.s.ident())
	b.s.effect = func(v any) { fn(v.(KV[K, V])) }
	return b
}

// Arg declares a positional argument of type T, required and single-valued
// by default.
func Arg[T any, C any](sc Scope[C], name string) *ArgBuilder[T, C] {
	t, tn := typeNameOf[T]()
	s := &spec{
		kind:      argumentSpec,
		long:      name,
		minOccurs: 1,
		maxOccurs: 1,
		arity:     aritySingle,
		typeName:  tn,
	}
	if c, ok := coercerFor(t); ok {
		s.coerce = c
	}
	sc.addNode(s)
	return &ArgBuilder[T, C]{p: sc.parserOf(), s: s}
}

type ArgBuilder[T any, C any] struct {
	p *Parser[C]
	s *spec
}

func (b *ArgBuilder[T, C]) Text(help string) *ArgBuilder[T, C] { b.s.help = help; return b }
func (b *ArgBuilder[T, C]) Hidden() *ArgBuilder[T, C]          { b.s.hidden = true; return b }
func (b *ArgBuilder[T, C]) Required() *ArgBuilder[T, C]        { b.s.minOccurs = 1; return b }
func (b *ArgBuilder[T, C]) Optional() *ArgBuilder[T, C]        { b.s.minOccurs = 0; return b }
func (b *ArgBuilder[T, C]) MinOccurs(n int) *ArgBuilder[T, C]  { b.s.minOccurs = n; return b }
func (b *ArgBuilder[T, C]) MaxOccurs(n int) *ArgBuilder[T, C]  { b.s.maxOccurs = n; return b }
func (b *ArgBuilder[T, C]) Unbounded() *ArgBuilder[T, C]       { b.s.maxOccurs = maxUnbounded; return b }

func (b *ArgBuilder[T, C]) Coerce(fn CoercerFunc[T]) *ArgBuilder[T, C] {
	b.s.coerce = func(raw string) (any, error) { return fn(raw) }
	return b
}

func (b *ArgBuilder[T, C]) Validate(fns ...func(T) error) *ArgBuilder[T, C] {
	for _, fn := range fns {
		fn := fn
		b.s.validate = append(b.s.validate, func(v any) error { return fn(v.(T)) })
	}
	return b
}

func (b *ArgBuilder[T, C]) Action(fn func(T, C) C) *ArgBuilder[T, C] {
	b.p.setMode(modeFold, b.s.ident())
	b.s.fold = func(v, cfg any) any { return fn(v.(T), cfg.(C)) }
	return b
}

func (b *ArgBuilder[T, C]) Effect(fn func(T)) *ArgBuilder[T, C] {
	b.p.setMode(modeEffect, b.s.ident())
	b.s.effect = func(v any) { fn(v.(T)) }
	return b
}

// Cmd declares a command, matched only while its scope is at first position.
// The returned builder is itself a Scope, so children register against it.
func Cmd[C any](sc Scope[C], name string) *CmdBuilder[C] {
	s := &spec{
		kind:      commandSpec,
		long:      name,
		maxOccurs: 1,
		arity:     arityNone,
		children:  &scope{},
	}
	sc.addNode(s)
	return &CmdBuilder[C]{p: sc.parserOf(), s: s}
}

type CmdBuilder[C any] struct {
	p *Parser[C]
	s *spec
}

func (b *CmdBuilder[C]) addNode(s *spec)      { b.s.children.nodes = append(b.s.children.nodes, s) }
func (b *CmdBuilder[C]) parserOf() *Parser[C] { return b.p }

func (b *CmdBuilder[C]) Text(help string) *CmdBuilder[C] { b.s.help = help; return b }
func (b *CmdBuilder[C]) Hidden() *CmdBuilder[C]          { b.s.hidden = true; return b }
func (b *CmdBuilder[C]) Required() *CmdBuilder[C]        { b.s.minOccurs = 1; return b }

func (b *CmdBuilder[C]) Action(fn func(C) C) *CmdBuilder[C] {
	b.p.setMode(modeFold, b.s.ident())
	b.s.fold = func(_, cfg any) any { return fn(cfg.(C)) }
	return b
}

func (b *CmdBuilder[C]) Effect(fn func()) *CmdBuilder[C] {
	b.p.setMode(modeEffect, b.s.ident())
	b.s.effect = func(any) { fn() }
	return b
}

// Note embeds free-form text into usage output at its declared position. It
// takes no part in matching.
func Note[C any](sc Scope[C], text string) {
	sc.addNode(&spec{kind: noteSpec, note: text})
}
