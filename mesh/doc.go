// Package mesh defines the geometry hand-off boundary of lvlsurf.
//
// lvlsurf models incidence, not geometry: vertex coordinates are an
// external concern. When a caller does have an embedding, every surface
// and complex can export a Mesh — a plain (vertices, faces) descriptor —
// and any rendering or plotting library can take it from there. The
// descriptor is the entire contract; lvlsurf never depends on a renderer.
package mesh
