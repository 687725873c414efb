package sea

import (
	"fmt"
	"os"
	"strings"
)

// substitution is one fixed string replacement applied to the bundle.
type substitution struct {
	old string
	new string
}

// bundleSubstitutions adapt bundler output to the SEA runtime, where
// there is no script file on disk: import.meta.url and __filename point
// nowhere, and createRequire cannot resolve relative to the bundle.
// Order matters: the createRequire form must be rewritten before the
// bare import.meta.url rule touches its argument.
var bundleSubstitutions = []substitution{
	{
		old: `createRequire(import.meta.url)`,
		new: `createRequire(process.execPath)`,
	},
	{
		old: `import.meta.url`,
		new: `require("node:url").pathToFileURL(process.execPath)`,
	},
	{
		old: `__filename`,
		new: `process.execPath`,
	},
	{
		old: `__dirname`,
		new: `require("node:path").dirname(process.execPath)`,
	},
}

// PatchBundle copies the bundle from src to dst with the fixed SEA
// compatibility substitutions applied, returning how many substitution
// rules matched. dst is overwritten wholesale.
func PatchBundle(src, dst string) (int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return 0, fmt.Errorf("reading bundle: %w", err)
	}

	content := string(data)
	applied := 0
	for _, sub := range bundleSubstitutions {
		if !strings.Contains(content, sub.old) {
			continue
		}
		content = strings.ReplaceAll(content, sub.old, sub.new)
		applied++
	}

	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return 0, fmt.Errorf("writing patched bundle: %w", err)
	}
	return applied, nil
}
