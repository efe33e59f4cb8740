package kanjiwall

// Option configures renderer and generator creation.
// Use functional options to customize behavior beyond Config.
//
// Example:
//
//	// Default font discovery
//	gen, err := kanjiwall.NewGenerator(cfg)
//
//	// Font bytes supplied by the caller (dependency injection)
//	gen, err := kanjiwall.NewGenerator(cfg, kanjiwall.WithFontData(data))
type Option func(*options)

// options holds optional configuration applied at creation time.
type options struct {
	fontData []byte
	renderer *Renderer
}

// defaultOptions returns the default creation options.
func defaultOptions() options {
	return options{}
}

// WithFontData supplies raw font bytes (TTF or TTC), bypassing the
// filesystem font discovery. The slice is not retained beyond parsing.
func WithFontData(data []byte) Option {
	return func(o *options) {
		o.fontData = data
	}
}

// WithRenderer injects a pre-built renderer into a Generator.
// The generator takes ownership: Close releases the renderer.
func WithRenderer(r *Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}
