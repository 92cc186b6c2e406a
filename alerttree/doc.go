// Package alerttree traverses alert escalation trees.
//
// A tree is decoded from YAML or JSON documents of the form
//
//	{root: firewall, children: [{node: ids, children: [...]}, {node: waf}]}
//
// where the top-level name may be given as "root" or "node" (node wins when
// both are present) and "children" is optional.
//
// Walk lists node names in one of four orders:
//
//   - InOrder:      first child subtree, the node, then the remaining children
//   - PreOrder:     the node, then every child subtree
//   - PostOrder:    every child subtree, then the node
//   - BreadthFirst: level by level, children in document order
//
// Analyze returns all four at once. Options mirror packages bfs and dfs:
// WithContext, WithOnVisit (error aborts) and WithMaxDepth (0 means no limit).
package alerttree
