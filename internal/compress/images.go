package compress

import (
	"regexp"
	"strings"
)

// macOS sample and crash reports end with a "Binary Images:" section
// listing every loaded library. System libraries dominate the section and
// carry no debugging value, so they collapse into a single omitted-count
// line while application images flow through the normal pipeline.

const binaryImagesHeader = "Binary Images:"

// systemLibPrefixes is the fixed allow-list of system install locations.
var systemLibPrefixes = []string{
	"/System/Library/",
	"/usr/lib/",
}

// imageLinePattern matches the load-address range that opens an image
// line, e.g. "0x104fc4000 - 0x105f7ffff +Live ...".
var imageLinePattern = regexp.MustCompile(`^0x[0-9a-fA-F]+\s+-\s+0x[0-9a-fA-F]+\s+`)

// splitImages routes input lines around Binary Images sections. Lines
// outside a section, and application-image lines inside one, come back as
// regular pipeline input in their original order. System-image lines are
// only counted. A section ends at a blank line, at another section header,
// or at end of input; the blank terminator is consumed, any other
// terminator is re-routed.
func splitImages(lines []string) (regular []string, sections []ImageSection) {
	inSection := false
	var current ImageSection
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inSection {
			if trimmed == binaryImagesHeader {
				inSection = true
				current = ImageSection{}
				continue
			}
			regular = append(regular, line)
			continue
		}
		if ends, consume := sectionEnds(trimmed); ends {
			sections = append(sections, current)
			inSection = false
			switch {
			case trimmed == binaryImagesHeader:
				inSection = true
				current = ImageSection{}
			case !consume:
				regular = append(regular, line)
			}
			continue
		}
		if isSystemImage(trimmed) {
			current.SystemOmitted++
		} else {
			regular = append(regular, line)
		}
	}
	if inSection {
		sections = append(sections, current)
	}
	return regular, sections
}

// sectionEnds reports whether a line terminates the current section, and
// whether the terminator is consumed rather than re-routed. Header-like
// lines (ending with a colon) open the next report section; image lines
// never do.
func sectionEnds(trimmed string) (ends, consume bool) {
	if trimmed == "" {
		return true, true
	}
	if strings.HasSuffix(trimmed, ":") && !imageLinePattern.MatchString(trimmed) {
		return true, false
	}
	return false, false
}

func isSystemImage(line string) bool {
	for _, prefix := range systemLibPrefixes {
		if strings.Contains(line, prefix) {
			return true
		}
	}
	return false
}
