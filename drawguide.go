// Package drawguide exposes drawing tutorials from a single tutorial website
// as three tool operations: search, get_guide and list_categories.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, rod/).
package drawguide
