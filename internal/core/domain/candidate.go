package domain

// RootSentinel is the implicit base of every class. Ancestor walks stop here.
const RootSentinel = "System.Object"

// TypeKind classifies a registry entry.
type TypeKind string

const (
	// KindClass is a reference type that can be extended with a partial declaration.
	KindClass TypeKind = "class"
	// KindStruct is a value type.
	KindStruct TypeKind = "struct"
	// KindInterface is an interface type.
	KindInterface TypeKind = "interface"
)

// CandidateType is an immutable snapshot of one loaded type, taken once per pass.
type CandidateType struct {
	// FullName is the namespace-qualified name (e.g. "NamespaceA.Foo").
	FullName string
	// Namespace is the declaring namespace; empty for the global namespace.
	Namespace string
	// Name is the simple type name.
	Name string
	// Unit is the owning compilation unit.
	Unit string
	// Kind is the type kind.
	Kind TypeKind
	// Abstract reports whether the type is abstract.
	Abstract bool
	// Base is the full name of the direct base type, empty for the root sentinel.
	Base string
	// Ancestors holds the strict ancestors nearest first, excluding RootSentinel.
	Ancestors []string
	// Capabilities lists the capabilities (attributes, interfaces) the type declares.
	Capabilities []string
	// Markers lists the marker annotations carried by the type.
	Markers []string
}

// IsConcrete reports whether the type is a non-abstract class.
func (c CandidateType) IsConcrete() bool {
	return c.Kind == KindClass && !c.Abstract
}

// DerivesFrom reports whether base is the type itself or one of its ancestors.
// The walk never goes past RootSentinel.
func (c CandidateType) DerivesFrom(base string) bool {
	if base == "" || c.FullName == base {
		return true
	}
	for _, ancestor := range c.Ancestors {
		if ancestor == RootSentinel {
			return false
		}
		if ancestor == base {
			return true
		}
	}
	return false
}

// Constraint is the capability a marked type must satisfy to be eligible.
type Constraint struct {
	// Capability must be declared by the type (e.g. the UXML element attribute).
	Capability string
	// BaseType, when set, must be the type or one of its ancestors.
	BaseType string
}

// MarkerKind names a generated block flavour.
type MarkerKind string

const (
	// MarkerController generates a ControllerType property.
	MarkerController MarkerKind = "controller"
	// MarkerFactory generates a UlinkFactory property.
	MarkerFactory MarkerKind = "factory"
)

// Marker annotation names as they appear in the registry snapshot.
const (
	ControllerMarker = "Ulink.Runtime.UlinkAttribute"
	FactoryMarker    = "Ulink.Runtime.UlinkFactoryAttribute"

	UxmlElementCapability = "UnityEngine.UIElements.UxmlElementAttribute"
	VisualElementType     = "UnityEngine.UIElements.VisualElement"

	// ControllerCapability is implemented by every selectable controller type.
	ControllerCapability = "Ulink.Runtime.IUlinkController"
)

// Binding pairs a marker annotation with the constraint its types must satisfy.
type Binding struct {
	Kind       MarkerKind
	Marker     string
	Constraint Constraint
}

// DefaultBindings returns the bindings in render order.
func DefaultBindings() []Binding {
	constraint := Constraint{
		Capability: UxmlElementCapability,
		BaseType:   VisualElementType,
	}
	return []Binding{
		{Kind: MarkerController, Marker: ControllerMarker, Constraint: constraint},
		{Kind: MarkerFactory, Marker: FactoryMarker, Constraint: constraint},
	}
}
