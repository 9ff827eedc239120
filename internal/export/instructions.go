// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteInstructions writes the upload how-to next to the output tree and
// returns its path. animationsFilename is the bundle's base filename, e.g.
// "Goblin_Animations.json".
func WriteInstructions(rootDir, animationsFilename string) (string, error) {
	path := filepath.Join(rootDir, "instructions.txt")
	text := fmt.Sprintf(`PartsBundle Output

Upload to your worlds platform:
1) Open the platform's creator portal.
2) Upload everything under '%s/%s'.
   - '%s' contains all model parts and textures.
   - '%s' is a Text Asset; import it into your world.
`, outputDirName, assetsDirName, modelsDirName, animationsFilename)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing instructions: %w", err)
	}
	return path, nil
}
