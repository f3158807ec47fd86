// Package descriptor writes the sidecar files a WD TV media player reads
// next to each media file: an XML details document, a thumbnail and a
// season folder poster.
package descriptor

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	xmlExt      = ".xml"
	thumbExt    = ".metathumb"
	posterName  = "folder.jpg"
	filePerm    = 0o644
	userAgent   = "wdtvmd/1.0"
	maxImageLen = 32 << 20
)

// Paths holds the sidecar locations for one media file.
type Paths struct {
	XML    string
	Thumb  string
	Poster string
}

// PathsFor derives the sidecar paths of a media file: X.ext gets X.xml and
// X.metathumb, and its directory gets folder.jpg.
func PathsFor(mediaPath string) Paths {
	base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	return Paths{
		XML:    base + xmlExt,
		Thumb:  base + thumbExt,
		Poster: filepath.Join(filepath.Dir(mediaPath), posterName),
	}
}

// Exist reports whether both the XML descriptor and the thumbnail are
// present. The folder poster is shared and not considered.
func (p Paths) Exist() bool {
	return exists(p.XML) && exists(p.Thumb)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
