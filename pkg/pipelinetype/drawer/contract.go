package drawer

import "io"

// Drawer is an interface that defines the methods for drawing the pipeline type taxonomy.
type Drawer interface {
	// AddStep adds a vertex to the drawer.
	AddStep(name, label string) error
	// AddLink adds a link between parent and child vertices.
	AddLink(parentName, childName string) error
	// AddRegistry adds every domain and pipeline type of the registry.
	AddRegistry() error
	// Draw writes the graph in DOT format.
	Draw(w io.Writer) error
}
