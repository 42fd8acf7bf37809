package backport

import "strings"

// The canonical data tree coexists with the integer text-number coordinates:
// directories and files are addressed by Sanskrit section names. These maps
// are the resolver between the two schemes for the sections that exist in
// the source text.

// kandaIDs maps kanda names to the numeric prefix of their directory.
var kandaIDs = map[string]string{
	"प्रथमकाण्डः":  "1",
	"द्वितीयकाण्डः": "2",
	"तृतीयकाण्डः":  "3",
}

// adhikaarFiles maps gana (adhikaar) names to the numeric prefix of their
// sub-varga file.
var adhikaarFiles = map[string]string{
	"भ्वादिगणः":     "1",
	"अदादिगणः":     "2",
	"जुहोत्यादिगणः": "3",
	"दिवादिगणः":    "4",
	"स्वादिगणः":     "5",
	"तुदादिगणः":    "6",
	"रुधादिगणः":    "7",
	"तनादिगणः":     "8",
	"क्रयादिगणः":    "9",
	"चुरादिगणः":    "10",
	"नामधातवः":     "11",
	"कण्ड्वादयः":    "12",
}

// nanarthaVarga names the section whose files use an incompatible layout and
// are therefore never touched by the backporter.
const nanarthaVarga = "नानार्थवर्गः"

// KandaID resolves a kanda name to its directory number prefix.
func KandaID(name string) (string, bool) {
	id, ok := kandaIDs[name]
	return id, ok
}

// AdhikaarFile resolves an adhikaar name to its file number prefix.
func AdhikaarFile(name string) (string, bool) {
	n, ok := adhikaarFiles[name]
	return n, ok
}

// IsNanartha reports whether a varga name belongs to the nanartha section.
func IsNanartha(varga string) bool {
	return strings.Contains(varga, nanarthaVarga)
}
