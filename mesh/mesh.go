// Package mesh holds plain value types for triangle meshes. There is no
// renderer here; the types describe geometry for callers that rasterize
// themselves.
package mesh

import "github.com/pthm-cable/catbox/vec"

// Vertex is a single mesh vertex.
type Vertex struct {
	Pos     vec.Vec3
	Normal  vec.Vec3
	Texture vec.Vec2
	Color   uint32
	Lit     float32
}

// NewVertex creates a vertex from its attributes.
func NewVertex(pos, normal vec.Vec3, texture vec.Vec2, color uint32, lit float32) Vertex {
	return Vertex{Pos: pos, Normal: normal, Texture: texture, Color: color, Lit: lit}
}

// Triangle is three vertices in winding order.
type Triangle struct {
	V [3]Vertex
}

// NewTriangle creates a triangle from its corners.
func NewTriangle(p1, p2, p3 Vertex) Triangle {
	return Triangle{V: [3]Vertex{p1, p2, p3}}
}

// Mesh is a bag of triangles.
type Mesh struct {
	Triangles []Triangle
}
