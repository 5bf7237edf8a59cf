// Package episode defines the scraped episode record and extracts episode
// numbers from free-form release titles.
//
// Release titles arrive in wildly inconsistent formats and mixed scripts:
// "第12話", "[08 v2]", "全13集", "[在下坂本,有何贵干][12][GB][720P]". The
// extractor runs an ordered list of matcher rules over the title and returns
// the first hit, falling back to a token-by-token scan. Extraction is total:
// malformed input degrades to episode 0, which is the sentinel for "no
// discernible single-episode number" (batch and range releases included, by
// policy rather than by failure).
package episode
