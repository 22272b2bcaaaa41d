package uploads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed(t *testing.T) {
	cases := []struct {
		filename string
		allowed  bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"animation.gif", true},
		{"malware.exe", false},
		{"noext", false},
		{"", false},
		{"archive.tar.gz", false},
		{"photo.png.exe", false},
		{"double.ext.jpeg", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, IsAllowed(tc.filename), "fichier: %q", tc.filename)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\windows\\system32.png", "system32.png"},
		{"ma photo d'été.png", "ma_photo_d__t_.png"},
		{"nom;rm -rf.gif", "nom_rm_-rf.gif"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "entrée: %q", tc.in)
	}
}
