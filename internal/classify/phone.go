package classify

import "regexp"

// Phone number patterns found in SBP transfer descriptions, optionally
// preceded by "на"/"от". Full numbers come first; masked numbers keep a run
// of '+' in place of the middle digits.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`\+7(\d{10})`),
	regexp.MustCompile(`\+7\d{3}\+{3}(\d{4})`),
	regexp.MustCompile(`на\s+\+7(\d{10})`),
	regexp.MustCompile(`от\s+\+7(\d{10})`),
	regexp.MustCompile(`на\s+\+7\d{3}\+{3}(\d{4})`),
	regexp.MustCompile(`от\s+\+7\d{3}\+{3}(\d{4})`),
}

// ExtractPhone finds a Russian mobile number in a peer-transfer description.
// Full numbers normalize to +7 plus ten digits. Masked numbers keep the mask
// marker ("+7***" plus the visible suffix) so downstream contact matching
// can tell partial numbers apart from full ones; masked numbers are
// informational only and must never be exact-matched against a directory.
// Returns "" when no phone is present.
func ExtractPhone(description string) string {
	if description == "" {
		return ""
	}

	for _, re := range phoneRes {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		digits := m[1]
		if len(digits) < 4 {
			continue
		}
		if len(digits) == 10 {
			return "+7" + digits
		}
		return "+7***" + digits
	}

	return ""
}
