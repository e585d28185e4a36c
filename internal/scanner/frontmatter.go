package scanner

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// StripFrontMatter removes a leading YAML or TOML front matter block so
// metadata keys are not counted as prose. Estimation is best-effort over any
// input: when the block is malformed or absent the source is returned
// unchanged rather than surfacing an error.
func StripFrontMatter(source []byte) []byte {
	var meta map[string]any

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return source
	}
	return body
}
