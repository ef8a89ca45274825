package curriculum

import "fmt"

// Question is a single word-bank exercise. Immutable, authored content.
type Question struct {
	ID             string
	Sentence       string
	Instruction    string
	AvailableWords []string
	CorrectAnswer  []string
}

// Node is the smallest unit of practice content: an ordered set of
// questions and an XP reward for completing them all.
type Node struct {
	ID        string
	Title     string
	XPReward  int
	Questions []Question
}

// Section is an ordered group of nodes within a unit.
type Section struct {
	ID          string
	Title       string
	Description string
	Nodes       []Node
}

// Unit is the top-level curriculum grouping.
type Unit struct {
	Number   int
	Title    string
	Sections []Section
}

// Curriculum holds the ordered unit/section/node tree with precomputed
// lookup indices. Ordering is significant: it is the sole source of
// unlock sequencing. The tree is immutable once constructed.
type Curriculum struct {
	units     []Unit
	nodeByID  map[string]*Node
	sectionOf map[string]string // node ID -> owning section ID
}

// New builds a Curriculum from ordered units, validating the structure.
func New(units []Unit) (*Curriculum, error) {
	if err := validateUnits(units); err != nil {
		return nil, err
	}

	c := &Curriculum{
		units:     units,
		nodeByID:  make(map[string]*Node),
		sectionOf: make(map[string]string),
	}
	for ui := range c.units {
		for si := range c.units[ui].Sections {
			sec := &c.units[ui].Sections[si]
			for ni := range sec.Nodes {
				n := &sec.Nodes[ni]
				c.nodeByID[n.ID] = n
				c.sectionOf[n.ID] = sec.ID
			}
		}
	}
	return c, nil
}

// Units returns the ordered units.
func (c *Curriculum) Units() []Unit {
	return c.units
}

// Node returns the node with the given ID.
func (c *Curriculum) Node(id string) (*Node, error) {
	n, ok := c.nodeByID[id]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", id)
	}
	return n, nil
}

// SectionID returns the ID of the section owning the given node.
func (c *Curriculum) SectionID(nodeID string) (string, error) {
	id, ok := c.sectionOf[nodeID]
	if !ok {
		return "", fmt.Errorf("unknown node %q", nodeID)
	}
	return id, nil
}

// Questions returns the ordered questions for a node.
func (c *Curriculum) Questions(nodeID string) ([]Question, error) {
	n, err := c.Node(nodeID)
	if err != nil {
		return nil, err
	}
	return n.Questions, nil
}

// NodeCount returns the total number of nodes across all units.
func (c *Curriculum) NodeCount() int {
	return len(c.nodeByID)
}
