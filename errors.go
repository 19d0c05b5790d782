package xmlight

// A NotElementError reports an element-only accessor applied to a text node.
type NotElementError struct {
	Node Node
}

func (e *NotElementError) Error() string { return "xmlight: node is not an element" }

// A NotPCDataError reports a text-only accessor applied to an element.
type NotPCDataError struct {
	Node Node
}

func (e *NotPCDataError) Error() string { return "xmlight: node is not character data" }

// A NoAttributeError reports a lookup of an attribute the element does not
// carry.
type NoAttributeError struct {
	Name string
}

func (e *NoAttributeError) Error() string { return `xmlight: no attribute "` + e.Name + `"` }
