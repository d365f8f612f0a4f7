// Package similarity computes Dice similarity between two subtrees'
// descendant sets, intersected through a mapping store — the candidate-
// ranking metric the bottom-up matcher uses to pick a destination node
// for each unmapped source node.
package similarity
