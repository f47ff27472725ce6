// Package naming parses texture file names into structured identities and
// builds the output names written for them.
//
// The naming convention is:
//
//	<name>_<role>.<ext>   classified channel (role: albedo, parameter, normal)
//	<name>.<ext>          anything else (Unclassified)
//
// Matching is case-insensitive and the parsed name and extension are always
// lower case. [Parse] and [Format] are inverses for every value [Parse] can
// produce.
//
// Files:
//   - parser.go: Role, ParsedName, Parse, Format
//   - outputpath.go: output file names and paths
//   - collision.go: per-run registry of claimed output paths
package naming
