package drawer

import (
	"io"
	"os"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/worldlight425/huggingface-hub/internal/store"
	"github.com/worldlight425/huggingface-hub/pkg/pipelinetype"
)

// RootName is the vertex every domain hangs off when drawing the registry.
const RootName = "pipeline-types"

// DOTDrawer draws the pipeline type taxonomy as a Graphviz digraph.
// Vertices and edges are written in the order they were added.
type DOTDrawer struct {
	store      *store.OrderedStore[string, string]
	graph      graph.Graph[string, string]
	attributes map[string]string
}

// Option configures a DOTDrawer.
type Option func(d *DOTDrawer)

// GraphAttribute sets a graph-level DOT attribute.
func GraphAttribute(key, value string) Option {
	return func(d *DOTDrawer) {
		d.attributes[key] = value
	}
}

// NewDOTDrawer creates a new DOT drawer. The graph is laid out left to right unless overridden.
func NewDOTDrawer(options ...Option) *DOTDrawer {
	s := store.NewOrderedStore[string, string]()
	d := &DOTDrawer{
		store:      s,
		graph:      graph.NewWithStore(graph.StringHash, graph.Store[string, string](s), graph.Directed()),
		attributes: map[string]string{"rankdir": "LR"},
	}

	for _, option := range options {
		option(d)
	}

	return d
}

// AddStep adds a vertex with a display label.
func (d *DOTDrawer) AddStep(name, label string) error {
	return d.addStep(name, graph.VertexAttribute("label", label))
}

func (d *DOTDrawer) addStep(name string, options ...func(*graph.VertexProperties)) error {
	err := d.graph.AddVertex(name, options...)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and child vertices.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// AddRegistry adds the root, every domain below it and, below each domain, its pipeline types chained by decreasing
// specificity.
func (d *DOTDrawer) AddRegistry() error {
	err := d.AddStep(RootName, "Pipeline Types")
	if err != nil {
		return err
	}

	for _, domain := range pipelinetype.Domains() {
		err = d.AddStep(domain.String(), domain.PrettyName())
		if err != nil {
			return err
		}

		err = d.AddLink(RootName, domain.String())
		if err != nil {
			return err
		}

		types := domain.Types()
		parent := domain.String()

		for i, typ := range types {
			color, err := specificityColor(i, len(types))
			if err != nil {
				return errors.Wrapf(err, "unable to get colour for %s", typ)
			}

			err = d.addStep(typ.String(),
				graph.VertexAttribute("label", typ.PrettyName()),
				graph.VertexAttribute("color", color),
			)
			if err != nil {
				return err
			}

			err = d.AddLink(parent, typ.String())
			if err != nil {
				return err
			}

			parent = typ.String()
		}
	}

	return nil
}

const maxRGB = 240

// specificityColor maps a position within a domain onto a red (most specific) to blue (least specific) gradient.
func specificityColor(position, total int) (string, error) {
	fraction := 0.0
	if total > 1 {
		fraction = float64(position) / float64(total-1)
	}

	red := maxRGB * (1 - fraction)
	blue := maxRGB * fraction

	rgb, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return rgb.ToHEX().String(), nil
}

// Draw writes the graph in DOT format.
func (d *DOTDrawer) Draw(w io.Writer) error {
	desc, err := d.generateDOT()
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(w, desc)
}

// DrawFile creates name and writes the graph to it.
func (d *DOTDrawer) DrawFile(name string) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", name)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "unable to close file %s", name)
		}
	}()

	return d.Draw(file)
}

// Taxonomy draws the whole registry to w.
func Taxonomy(w io.Writer, options ...Option) error {
	d := NewDOTDrawer(options...)

	err := d.AddRegistry()
	if err != nil {
		return errors.Wrap(err, "unable to add registry")
	}

	return d.Draw(w)
}

const dotTemplate = `strict digraph {
{{- range $k, $v := .Attributes}}
	{{$k}}={{printf "%q" $v}};
{{- end}}
{{- range .Statements}}
	{{printf "%q" .Source}}{{if .Target}} -> {{printf "%q" .Target}}{{end}} [ {{range $k, $v := .Attributes}}{{$k}}={{printf "%q" $v}}, {{end}}weight={{.Weight}} ];
{{- end}}
}
`

type description struct {
	Attributes map[string]string
	Statements []statement
}

type statement struct {
	Source     string
	Target     string
	Attributes map[string]string
	Weight     int
}

func (d *DOTDrawer) generateDOT() (description, error) {
	desc := description{
		Attributes: d.attributes,
		Statements: make([]statement, 0),
	}

	vertices, err := d.store.ListVertices()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list vertices")
	}

	edges, err := d.store.ListEdges()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list edges")
	}

	outEdges := make(map[string][]graph.Edge[string])
	for _, edge := range edges {
		outEdges[edge.Source] = append(outEdges[edge.Source], edge)
	}

	for _, vertex := range vertices {
		_, properties, err := d.graph.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrapf(err, "unable to get vertex %s properties", vertex)
		}

		desc.Statements = append(desc.Statements, statement{
			Source:     vertex,
			Attributes: properties.Attributes,
			Weight:     properties.Weight,
		})

		for _, edge := range outEdges[vertex] {
			desc.Statements = append(desc.Statements, statement{
				Source:     edge.Source,
				Target:     edge.Target,
				Attributes: edge.Properties.Attributes,
				Weight:     edge.Properties.Weight,
			})
		}
	}

	return desc, nil
}

func renderDOT(w io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(w, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
