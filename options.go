package xmlight

// An Option configures parsing.
type Option func(*options)

type options struct {
	preserveWhitespace bool
}

// PreserveWhitespace returns an Option that keeps whitespace-only character
// data between elements. By default such runs are dropped, so that indented
// documents and their compact renderings parse to the same tree.
func PreserveWhitespace() Option {
	return func(o *options) { o.preserveWhitespace = true }
}
