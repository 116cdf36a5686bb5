// Package prototype illustrates the Prototype pattern: new objects are made by
// copying an existing one instead of constructing them from scratch.
//
// Two copy depths are shown:
//
//   - Sheep.Clone is a shallow copy. Sheep only holds a string, so the copy is
//     already fully independent of its source.
//   - Trophy.Clone is a deep copy. A Trophy owns a *Human; the clone gets its
//     own Human so renaming one trophy never renames the other.
//
// RoundTrip shows the older technique of deep-copying by serializing the whole
// object graph to a scratch file and decoding it back. It is kept for
// illustration; Trophy.Clone is the structural copy callers should use.
//
// Registry keeps named prototypes and hands out clones of them.
package prototype
