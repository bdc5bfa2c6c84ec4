package model

// Decorator is a decorator expression attached to a class or function.
//
// The set of variants is closed: NameDecorator, AttributeDecorator,
// CallDecorator and ExprDecorator.
type Decorator interface {
	decorator()
	String() string
}

// NameDecorator is a bare name reference, e.g. @property.
type NameDecorator struct {
	Name string
}

// AttributeDecorator is an attribute access, e.g. @prop.setter.
type AttributeDecorator struct {
	Object    Decorator
	Attribute string
}

// CallDecorator is a call expression, e.g. @lru_cache(maxsize=1).
type CallDecorator struct {
	Func Decorator
}

// ExprDecorator is any other expression, kept as source text.
type ExprDecorator struct {
	Text string
}

func (NameDecorator) decorator()      {}
func (AttributeDecorator) decorator() {}
func (CallDecorator) decorator()      {}
func (ExprDecorator) decorator()      {}

func (d NameDecorator) String() string { return d.Name }

func (d AttributeDecorator) String() string {
	if d.Object == nil {
		return d.Attribute
	}

	return d.Object.String() + "." + d.Attribute
}

func (d CallDecorator) String() string {
	if d.Func == nil {
		return "()"
	}

	return d.Func.String() + "(...)"
}

func (d ExprDecorator) String() string { return d.Text }
