// Package scene builds named transform hierarchies on top of vectree.
//
// Nodes carry a name, a local Pose, and a derived world Pose. The graph is
// the canonical consumer of the flat tree layout: structural edits go
// through the name-based API, and UpdateWorld refreshes every world pose in
// a single progressive pass over the contiguous node storage.
//
// Names identify nodes, so they are unique and NFC-normalized at every
// entry point. Asset pipelines emit both composed and decomposed Unicode
// forms for the same visual name; without normalization the equality-based
// parent lookup would treat those as different nodes.
package scene
