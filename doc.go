// Package fieldsample is the field-sampling core for a Lagrangian
// particle-tracking engine. It interpolates gridded scalar fields
// defined on structured rectilinear or curvilinear meshes, with fixed
// (Z) or terrain-following (S) vertical coordinates, at a continuous
// query point (x, y, z, t), while maintaining per-particle hint
// indices so that repeated nearby queries run in near-constant time.
//
// The package consumes already-materialized grid and field arrays; it
// performs no file or network I/O. See the gridio package for a
// companion NetCDF loader that builds Grid and Field values for this
// package to sample.
package fieldsample

// Version is the package version string, reported by cmd/fieldsample's
// version subcommand.
const Version = "0.1.0"
