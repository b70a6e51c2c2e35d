package sanitizer

import "strings"

// NormalizePhone strips formatting to enable consistent database storage and comparison.
// Full-width digits are folded first so "０１０-１２３４-５６７８" keeps its digits.
func NormalizePhone(phone string) string {
	return normalizePhone(phone)
}

var normalizePhone = Compose(FoldWidth, KeepDigits)

// FormatPhoneKR groups an 11-digit Korean mobile number as 3-4-4
// ("010-1234-5678"). Input that does not normalize to exactly 11 digits is
// returned unchanged to avoid data loss.
func FormatPhoneKR(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) != 11 {
		return phone
	}

	return digits[0:3] + "-" + digits[3:7] + "-" + digits[7:11]
}

// MaskPhone follows PCI compliance pattern of showing last 4 digits for user recognition.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskEmail preserves full domain for user recognition while hiding personal info.
func MaskEmail(email string) string {
	email = Trim(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") || local == "" {
		return email
	}

	runes := []rune(local)
	if len(runes) == 1 {
		return "*@" + domain
	}

	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// MaskName keeps the first syllable of a personal name and masks the rest,
// the customary way Korean names are shown in lists ("김민수" -> "김**").
func MaskName(name string) string {
	runes := []rune(Trim(name))
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return "*"
	default:
		return string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
}
