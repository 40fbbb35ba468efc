package changelog

// Blank returns the text of a fresh changelog: the standard Keep a Changelog
// header followed by an empty Unreleased section. The Semantic Versioning
// adherence sentence is included unless disabled.
func Blank(includeSemVer bool) string {
	header := "# Changelog\n\n" +
		"All notable changes to this project will be documented in this file.\n\n" +
		"The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.0.0/)"
	if includeSemVer {
		header += ",\nand this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html)."
	} else {
		header += "."
	}

	doc := &Document{
		Header:     header,
		Unreleased: Section{Raw: "## [Unreleased]"},
	}
	return Render(doc, RenderOptions{Format: FormatFull})
}
