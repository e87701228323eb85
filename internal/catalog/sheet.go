package catalog

import (
	"fmt"
	"strings"
)

// Sheet renders an entry as a markdown fact sheet. The CLI feeds it to
// glamour and the dashboard copies it to the clipboard.
func Sheet(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "*%s* · `%s`\n\n", e.Category.Title(), e.ID)
	fmt.Fprintf(&b, "- **Dimensions:** %s\n", e.Dimensions)
	fmt.Fprintf(&b, "- **%s:** %s\n\n", e.LabelKind, e.Label)
	fmt.Fprintf(&b, "## Overview\n\n%s\n\n", e.Overview)
	fmt.Fprintf(&b, "## Specifications\n\n%s\n\n", e.Specs)
	fmt.Fprintf(&b, "## Details\n\n%s\n", e.Details)
	return b.String()
}
