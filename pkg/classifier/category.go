package classifier

// Category is one concern bucket of the analysis report.
type Category string

// Categories in report order.
const (
	NotEvaluated         Category = "Not evaluated"
	RequiredNotInstalled Category = "Required but not installed"
	DesiredNotInstalled  Category = "Desired but not installed"
	NotDesiredInstalled  Category = "Not desired but installed"
	NotRequiredInstalled Category = "Not required but installed"
)

// Categories returns every category in report order.
func Categories() []Category {
	return []Category{
		NotEvaluated,
		RequiredNotInstalled,
		DesiredNotInstalled,
		NotDesiredInstalled,
		NotRequiredInstalled,
	}
}

// String returns the category heading.
func (c Category) String() string {
	return string(c)
}
