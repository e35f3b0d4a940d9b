// Package stlconv converts triangle meshes between the binary and ASCII
// STL representations. Both directions go through the same canonical Mesh:
// Parse turns raw file bytes into a Mesh plus the encoding it detected, and
// Serialize renders a Mesh into either target form. The package performs no
// I/O and keeps no state; validation or repair of mesh geometry is out of
// scope.
package stlconv
