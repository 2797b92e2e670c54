package header

import "fmt"

// UberIdentifier addresses a persistent game-state flag or counter.
type UberIdentifier struct {
	Group uint32 `yaml:"group"`
	ID    uint32 `yaml:"id"`
}

func (u UberIdentifier) String() string {
	return fmt.Sprintf("%d|%d", u.Group, u.ID)
}

// V is either a literal value or a named parameter that is resolved when
// a seed is generated. Parameter names are identifiers and never empty.
type V[T any] struct {
	Literal   T
	Parameter string
}

func Literal[T any](value T) V[T] {
	return V[T]{Literal: value}
}

func Param[T any](name string) V[T] {
	return V[T]{Parameter: name}
}

func (v V[T]) IsParameter() bool {
	return v.Parameter != ""
}

func (v V[T]) String() string {
	if v.IsParameter() {
		return fmt.Sprintf("$Param(%s)", v.Parameter)
	}
	return fmt.Sprint(v.Literal)
}

// VUberState is an uber identifier with an optional comparison value.
//
// The empty literal string is a sentinel meaning "no trigger condition":
// any change of the state fires. The grammar never produces an explicit
// empty-string condition, so the sentinel cannot collide with one.
type VUberState struct {
	Identifier UberIdentifier
	Value      V[string]
}

func (s VUberState) HasCondition() bool {
	return s.Value.IsParameter() || s.Value.Literal != ""
}

func (s VUberState) String() string {
	if !s.HasCondition() {
		return s.Identifier.String()
	}
	return fmt.Sprintf("%s=%s", s.Identifier, s.Value)
}

// HeaderContent is one entry of a parsed header, in source order.
type HeaderContent interface {
	headerContent()
}

type OuterDocumentation struct {
	Text string
}

type InnerDocumentation struct {
	Text string
}

type Annotation struct {
	Name string
}

type SetupStatement struct {
	Setup Setup
}

type CommandStatement struct {
	Command HeaderCommand
}

// VPickup grants, or with Ignore set removes, an item when its trigger
// fires.
type VPickup struct {
	Trigger        VUberState
	Item           VItem
	Ignore         bool
	SkipValidation bool
}

func (OuterDocumentation) headerContent() {}
func (InnerDocumentation) headerContent() {}
func (Annotation) headerContent()         {}
func (SetupStatement) headerContent()     {}
func (CommandStatement) headerContent()   {}
func (VPickup) headerContent()            {}

// Setup is the payload of a setup statement. SetupTimer is the only kind.
type Setup interface {
	setup()
}

// SetupTimer ties a toggle flag to a counter that tracks elapsed time
// while the flag is set.
type SetupTimer struct {
	Switch  UberIdentifier
	Counter UberIdentifier
}

func (SetupTimer) setup() {}
