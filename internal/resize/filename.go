package resize

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vatsal3003/image-resize/pkg/models"
)

// TargetPath returns target when set, otherwise a name derived from source
// carrying the source dimensions, e.g. photo.jpg -> photo__200x100.jpg.
func TargetPath(source, target string, src models.Dimensions) string {
	if target != "" {
		return target
	}

	root, ext := splitExt(source)
	return fmt.Sprintf("%s__%dx%d%s", root, src.Width, src.Height, ext)
}

// splitExt splits off the extension of the last path element. Leading dots
// of that element never start an extension, so ".profile" has none.
func splitExt(path string) (root, ext string) {
	base := path[strings.LastIndexFunc(path, isPathSeparator)+1:]
	name := strings.TrimLeft(base, ".")

	i := strings.LastIndex(name, ".")
	if i < 0 {
		return path, ""
	}

	ext = name[i:]
	return path[:len(path)-len(ext)], ext
}

func isPathSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
