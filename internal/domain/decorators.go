package domain

import (
	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	propertyMarker = "property"
	setterMarker   = "setter"
	deleterMarker  = "deleter"
	overloadMarker = "overload"
	typingModule   = "typing"
)

// isPropertyDecorator matches @property, @x.setter and @x.deleter.
func isPropertyDecorator(d m.Decorator) bool {
	switch dec := d.(type) {
	case m.NameDecorator:
		return dec.Name == propertyMarker
	case m.AttributeDecorator:
		return dec.Attribute == setterMarker || dec.Attribute == deleterMarker
	}

	return false
}

// isSetterDecorator matches @x.setter.
func isSetterDecorator(d m.Decorator) bool {
	dec, ok := d.(m.AttributeDecorator)

	return ok && dec.Attribute == setterMarker
}

// isOverloadDecorator matches @overload and @typing.overload.
func isOverloadDecorator(d m.Decorator) bool {
	switch dec := d.(type) {
	case m.NameDecorator:
		return dec.Name == overloadMarker
	case m.AttributeDecorator:
		obj, ok := dec.Object.(m.NameDecorator)
		return ok && obj.Name == typingModule && dec.Attribute == overloadMarker
	}

	return false
}

func anyDecorator(decorators []m.Decorator, match func(m.Decorator) bool) bool {
	for _, d := range decorators {
		if match(d) {
			return true
		}
	}

	return false
}
