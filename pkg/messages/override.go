package messages

// DefaultLabel is used when a caller supplies an empty label.
const DefaultLabel = "This field"

// Override replaces built-in message text. It is either Uniform or PerClass;
// a nil Override keeps every default.
type Override interface {
	override()
}

// Uniform is applied verbatim to every failure class.
type Uniform string

// PerClass overrides individual failure classes. Empty entries keep the default.
type PerClass struct {
	Required   string
	Invalid    string
	Validation string
}

func (Uniform) override()  {}
func (PerClass) override() {}

// lookup is the single place where overrides are interpreted.
func lookup(o Override, class FailureClass) (string, bool) {
	switch o := o.(type) {
	case Uniform:
		return string(o), o != ""
	case PerClass:
		var text string
		switch class {
		case Required:
			text = o.Required
		case InvalidType:
			text = o.Invalid
		case Validation:
			text = o.Validation
		}
		return text, text != ""
	case *PerClass:
		if o == nil {
			return "", false
		}
		return lookup(*o, class)
	default:
		return "", false
	}
}

// IsOverridden reports whether o supplies its own text for class.
func IsOverridden(o Override, class FailureClass) bool {
	_, ok := lookup(o, class)
	return ok
}

// Resolve produces the message for one failure class:
// the override text when o covers class, otherwise "<label> <suffix>".
// The result is never empty; an empty label becomes DefaultLabel and an
// empty suffix falls back to the class default.
func Resolve(label string, class FailureClass, o Override, suffix string) string {
	if text, ok := lookup(o, class); ok {
		return text
	}
	if label == "" {
		label = DefaultLabel
	}
	if suffix == "" {
		suffix = class.suffix()
	}
	return label + " " + suffix
}
