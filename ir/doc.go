// Package ir defines the in-memory representation of a JSON document: a
// tree of Nodes, each holding exactly one of the six JSON variants.
//
// Trees are single-owner: inserting a Node into an object or array with
// Set, SetAt or Append transfers ownership to the container, and the
// caller must only reach it through the container afterwards. Nodes have
// no internal synchronization; concurrent mutation of a tree must be
// serialized by the caller.
package ir
