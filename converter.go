package htmlstore

// Converter converts raw HTML into plain text suitable for full-text
// indexing. The conversion algorithm itself is delegated to an
// off-the-shelf library; implementations live in subpackages.
type Converter interface {
	// Convert transforms HTML content into plain text.
	// Returns EINVALID for blank input.
	Convert(html string) (string, error)
}
