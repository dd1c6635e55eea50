// Package staffdir provides a best-effort staff-directory extraction
// pipeline. It fetches web pages whose HTML structure is unknown in advance,
// falling back from a lightweight HTTP request to a browser-rendered fetch,
// and runs an ordered chain of structural-pattern recognizers that map
// ambiguous markup onto normalized staff records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package staffdir
