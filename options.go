package cam

// GeneratorOption configures a Generator during creation.
// Use functional options to inject alternative capability implementations.
//
// Example:
//
//	// Default Clipper-backed engine
//	g := cam.NewGenerator()
//
//	// Custom boolean/offset backend (dependency injection)
//	g := cam.NewGenerator(cam.WithEngine(myEngine))
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	engine      Engine
	partitioner Partitioner
}

// defaultGeneratorOptions returns the default generator options.
func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		engine:      NewClipperEngine(),
		partitioner: defaultPartitioner{},
	}
}

// WithEngine sets a custom boolean/offset engine for the Generator.
// Use this to substitute a different polygon clipping backend without
// touching generator logic.
func WithEngine(e Engine) GeneratorOption {
	return func(o *generatorOptions) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithPartitioner sets a custom convex-partition capability for the
// Generator, used by the raster pocket strategies.
func WithPartitioner(p Partitioner) GeneratorOption {
	return func(o *generatorOptions) {
		if p != nil {
			o.partitioner = p
		}
	}
}
