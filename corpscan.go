// Package corpscan discovers the legal company name and contact/privacy
// URL behind an internet domain. It fetches the domain's homepage (and
// conventional policy pages), reduces the markup to text, and applies an
// ordered set of pattern rules to locate legal-entity mentions, picking
// the most frequently repeated candidate.
//
// The heuristic is best-effort: it may return nothing, and it
// may return false positives. There is no JavaScript rendering and no
// NLP-based entity recognition.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or technique
// (e.g., http/, goquery/, extract/).
package corpscan
