// Package diagnose provides introspection that is not part of dispatch
// itself: measuring how far a method implementation sits from an
// object, in inheritance/mixin hops. It repurposes the teacher's
// shortest-path machinery (graph/algorithms/Dijkstra) onto the class
// graph, treating every superclass and mixin edge as unit weight —
// with every edge weight equal, Dijkstra's relaxation loop degenerates
// into a uniform-cost breadth-first search, which is how ResolutionDistance
// is actually implemented here.
package diagnose
