// Package matching scores similarity between show names and holds the
// operator-maintained link/unlink override table.
//
// Scores are integers in [0,100]. Manual overrides always win over the
// automatic heuristics: a linked pair scores 100 and an unlinked pair scores
// 0 before any normalization happens. The automatic path normalizes both
// names, tries the substring and prefix shortcuts, and only then pays for a
// diff-style sequence ratio.
package matching
