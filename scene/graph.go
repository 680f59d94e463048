package scene

import (
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/arenakit/vectree"
)

// Node is the per-entity payload stored in the graph: a unique name, the
// pose relative to the parent, and the derived world pose from the last
// UpdateWorld pass.
type Node struct {
	Name  string `json:"name"`
	Local Pose   `json:"local"`
	World Pose   `json:"world"`
}

// String renders the node as its name, which keeps tree dumps to one
// readable token per node.
func (n Node) String() string {
	return n.Name
}

// Graph is a named scene hierarchy over a flat vectree forest. Nodes are
// addressed by name; names are normalized to NFC on every entry point, so
// importer-supplied strings with mixed Unicode normalization still land on
// the same node. Like the underlying tree, a Graph is not synchronized.
type Graph struct {
	tree *vectree.Tree[Node]
}

func nodeEq(a, b Node) bool { return a.Name == b.Name }

func byName(name string) Node { return Node{Name: name} }

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{tree: vectree.NewFunc(nodeEq)}
}

// AddRoot adds a top-level node with an identity local pose.
func (g *Graph) AddRoot(name string) error {
	name = norm.NFC.String(name)
	if g.tree.Contains(byName(name)) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	g.tree.InsertAsRoot(Node{Name: name, Local: Identity(), World: Identity()})
	return nil
}

// Add adds a node under parent with an identity local pose.
func (g *Graph) Add(name, parent string) error {
	name = norm.NFC.String(name)
	parent = norm.NFC.String(parent)
	if g.tree.Contains(byName(name)) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if !g.tree.Insert(Node{Name: name, Local: Identity(), World: Identity()}, byName(parent)) {
		return fmt.Errorf("%w: %q", ErrUnknownParent, parent)
	}
	return nil
}

// Remove deletes the node and its whole subtree.
func (g *Graph) Remove(name string) error {
	name = norm.NFC.String(name)
	if !g.tree.EraseBranch(byName(name)) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return nil
}

// Move reattaches the node's subtree under newParent. Moving a node under
// itself or one of its descendants is refused.
func (g *Graph) Move(name, newParent string) error {
	name = norm.NFC.String(name)
	newParent = norm.NFC.String(newParent)
	return g.tree.Reparent(byName(name), byName(newParent))
}

// Detach makes the node's subtree a new root, keeping its local poses.
func (g *Graph) Detach(name string) error {
	name = norm.NFC.String(name)
	return g.tree.Unparent(byName(name))
}

// Contains reports whether the graph holds a node with this name.
func (g *Graph) Contains(name string) bool {
	return g.tree.Contains(byName(norm.NFC.String(name)))
}

// Parent returns the name of the node's parent, or "" for roots and unknown
// names (use Contains to distinguish).
func (g *Graph) Parent(name string) string {
	p, ok := g.tree.Parent(byName(norm.NFC.String(name)))
	if !ok {
		return ""
	}
	return p.Name
}

// SetLocal replaces the node's local pose. The world pose is refreshed on
// the next UpdateWorld.
func (g *Graph) SetLocal(name string, pose Pose) error {
	name = norm.NFC.String(name)
	i := g.tree.Find(byName(name))
	if i == vectree.NullIndex {
		return fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	g.tree.PayloadAt(i).Local = pose
	return nil
}

// Local returns the node's local pose.
func (g *Graph) Local(name string) (Pose, bool) {
	i := g.tree.Find(byName(norm.NFC.String(name)))
	if i == vectree.NullIndex {
		return Pose{}, false
	}
	return g.tree.PayloadAt(i).Local, true
}

// World returns the node's world pose as of the last UpdateWorld pass.
func (g *Graph) World(name string) (Pose, bool) {
	i := g.tree.Find(byName(norm.NFC.String(name)))
	if i == vectree.NullIndex {
		return Pose{}, false
	}
	return g.tree.PayloadAt(i).World, true
}

// UpdateWorld recomputes every node's world pose in one progressive pass:
// roots take their local pose, children compose onto the parent's already
// computed world pose.
func (g *Graph) UpdateWorld() {
	g.tree.Progressive(func(n, parent *Node, _, _ int) {
		if parent == nil {
			n.World = n.Local
			return
		}
		n.World = parent.World.Compose(n.Local)
	})
}

// Names returns all node names in pre-order.
func (g *Graph) Names() []string {
	out := make([]string, 0, g.tree.Len())
	g.tree.DepthFirst(func(n *Node, _ int) {
		out = append(out, n.Name)
	})
	return out
}

// Len returns the node count.
func (g *Graph) Len() int {
	return g.tree.Len()
}

// Tree exposes the underlying forest for inspection tooling (dumps, stats,
// browsers). Mutating payloads through it bypasses name normalization, so
// edits should go through the Graph methods.
func (g *Graph) Tree() *vectree.Tree[Node] {
	return g.tree
}

// Index returns the node's position in the underlying forest, or
// vectree.NullIndex when the name is unknown.
func (g *Graph) Index(name string) int {
	return g.tree.Find(byName(norm.NFC.String(name)))
}

// Validate checks the structural invariants of the underlying tree.
func (g *Graph) Validate() error {
	return g.tree.Validate()
}

// Dump writes an indented rendering of the hierarchy.
func (g *Graph) Dump(w io.Writer, opts vectree.DumpOptions) error {
	return g.tree.Dump(w, opts)
}

// Save writes the graph to w as JSON.
func (g *Graph) Save(w io.Writer) error {
	return g.tree.SaveJSON(w)
}

// Load reads a graph written by Save. Names are re-normalized, checked for
// duplicates, and world poses are recomputed, so a loaded graph behaves
// exactly like one built through the API.
func Load(r io.Reader) (*Graph, error) {
	tree, err := vectree.LoadJSONFunc(r, nodeEq)
	if err != nil {
		return nil, err
	}
	g := &Graph{tree: tree}

	seen := make(map[string]bool, tree.Len())
	var dup string
	tree.DepthFirst(func(n *Node, _ int) {
		n.Name = norm.NFC.String(n.Name)
		if seen[n.Name] && dup == "" {
			dup = n.Name
		}
		seen[n.Name] = true
	})
	if dup != "" {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, dup)
	}
	g.UpdateWorld()
	return g, nil
}
